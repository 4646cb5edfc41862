package pricing

import "github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/domain/entities"

const (
	// DefaultBaseRatePerSqm applies to service types without their own rate.
	DefaultBaseRatePerSqm = 500.0
	// LaborRatePerSqm is the labor base rate, independent of service and coating.
	LaborRatePerSqm = 400.0
)

var baseRatesPerSqm = map[entities.ServiceType]float64{
	entities.ServiceTypeChimneyPainting: 600,
	entities.ServiceTypeAntiCorrosion:   550,
	entities.ServiceTypeMSProQuad:       800,
}

var materialMultipliers = map[entities.ServiceType]map[entities.CoatingType]float64{
	entities.ServiceTypeChimneyPainting: {
		entities.CoatingTypePremium:   1.5,
		entities.CoatingTypeFireproof: 2.0,
	},
	entities.ServiceTypeAntiCorrosion: {
		entities.CoatingTypePremium: 1.6,
		entities.CoatingTypeEpoxy:   1.8,
	},
}

// mspro-quad uses a flat multiplier whatever the coating.
const msproQuadMaterialMultiplier = 1.3

// complexityTiers are checked top-down with strict greater-than; first match wins.
var complexityTiers = []struct {
	above      float64
	multiplier float64
}{
	{above: 50, multiplier: 1.3},
	{above: 30, multiplier: 1.2},
	{above: 15, multiplier: 1.1},
}

// Result groups the full estimate, including the ordered display breakdown.
type Result struct {
	BasePrice    float64                  `json:"basePrice"`
	MaterialCost float64                  `json:"materialCost"`
	LaborCost    float64                  `json:"laborCost"`
	TotalCost    float64                  `json:"totalCost"`
	Breakdown    []entities.BreakdownItem `json:"breakdown"`
}

// BaseRate returns the per-square-meter material base rate for a service type.
func BaseRate(service entities.ServiceType) float64 {
	if rate, ok := baseRatesPerSqm[service]; ok {
		return rate
	}
	return DefaultBaseRatePerSqm
}

// MaterialMultiplier resolves the coating multiplier for a (service, coating) pair.
// Unknown combinations yield 1.
func MaterialMultiplier(service entities.ServiceType, coating entities.CoatingType) float64 {
	if service == entities.ServiceTypeMSProQuad {
		return msproQuadMaterialMultiplier
	}
	if m, ok := materialMultipliers[service][coating]; ok {
		return m
	}
	return 1
}

// ComplexityMultiplier scales labor by structure height in meters.
func ComplexityMultiplier(height float64) float64 {
	for _, tier := range complexityTiers {
		if height > tier.above {
			return tier.multiplier
		}
	}
	return 1
}

// Calculate computes the cost estimate for a project.
//
// Input is expected to be validated (positive height and area). No rounding is applied.
func Calculate(input entities.ProjectInput) Result {
	baseRate := BaseRate(input.ServiceType)
	materialCost := input.SurfaceArea * baseRate * MaterialMultiplier(input.ServiceType, input.CoatingType)
	laborCost := input.SurfaceArea * LaborRatePerSqm * ComplexityMultiplier(input.Height)

	return Result{
		BasePrice:    baseRate,
		MaterialCost: materialCost,
		LaborCost:    laborCost,
		TotalCost:    materialCost + laborCost,
		Breakdown: []entities.BreakdownItem{
			{Label: entities.BreakdownLabelMaterials, Amount: materialCost},
			{Label: entities.BreakdownLabelLabor, Amount: laborCost},
		},
	}
}
