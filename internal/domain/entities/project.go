package entities

// ServiceType selects the base rate and the coating multiplier table.
//
// The set is open: values outside the known constants are accepted and priced
// with the default base rate and a neutral multiplier.
type ServiceType string

const (
	ServiceTypeChimneyPainting ServiceType = "chimney-painting"
	ServiceTypeAntiCorrosion   ServiceType = "anti-corrosion"
	ServiceTypeMSProQuad       ServiceType = "mspro-quad"
	ServiceTypeOther           ServiceType = "other"
)

// CoatingType modifies the material multiplier. Its meaning depends on the ServiceType.
type CoatingType string

const (
	CoatingTypeStandard  CoatingType = "standard"
	CoatingTypePremium   CoatingType = "premium"
	CoatingTypeFireproof CoatingType = "fireproof"
	CoatingTypeEpoxy     CoatingType = "epoxy"
)

// IsKnown reports whether the service type has its own rate table.
func (s ServiceType) IsKnown() bool {
	switch s {
	case ServiceTypeChimneyPainting, ServiceTypeAntiCorrosion, ServiceTypeMSProQuad:
		return true
	}
	return false
}

// ProjectInput describes the structure to be coated.
//
// Height and SurfaceArea are in meters / square meters and must be positive.
// Diameter is collected from the form and persisted, the pricing formula does not read it.
type ProjectInput struct {
	ServiceType ServiceType `json:"serviceType"`
	Height      float64     `json:"height"`
	Diameter    *float64    `json:"diameter,omitempty"`
	SurfaceArea float64     `json:"surfaceArea"`
	CoatingType CoatingType `json:"coatingType"`
}

const (
	BreakdownLabelMaterials = "Материалы"
	BreakdownLabelLabor     = "Работа"
)

// BreakdownItem is one display line of a cost estimate.
type BreakdownItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}
