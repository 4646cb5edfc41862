package response

import (
	"time"

	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/domain/entities"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/domain/pricing"
)

type BreakdownItemResponse struct {
	Label  string  `json:"label" example:"Материалы"`
	Amount float64 `json:"amount" example:"135000"`
}

// EstimateResponse is the engine output without persistence.
type EstimateResponse struct {
	BasePrice    float64                 `json:"basePrice" example:"600"`
	MaterialCost float64                 `json:"materialCost" example:"135000"`
	LaborCost    float64                 `json:"laborCost" example:"66000"`
	TotalCost    float64                 `json:"totalCost" example:"201000"`
	Breakdown    []BreakdownItemResponse `json:"breakdown"`
}

type CalculationResponse struct {
	ID          string   `json:"id"`
	ServiceType string   `json:"serviceType"`
	Height      float64  `json:"height"`
	Diameter    *float64 `json:"diameter"`
	SurfaceArea float64  `json:"surfaceArea"`
	CoatingType string   `json:"coatingType"`
	EstimateResponse
	CreatedAt time.Time `json:"createdAt"`
}

func FromEstimate(r pricing.Result) EstimateResponse {
	return EstimateResponse{
		BasePrice:    r.BasePrice,
		MaterialCost: r.MaterialCost,
		LaborCost:    r.LaborCost,
		TotalCost:    r.TotalCost,
		Breakdown:    fromBreakdown(r.Breakdown),
	}
}

func FromCalculation(c entities.Calculation) CalculationResponse {
	return CalculationResponse{
		ID:          c.ID,
		ServiceType: string(c.ServiceType),
		Height:      c.Height,
		Diameter:    c.Diameter,
		SurfaceArea: c.SurfaceArea,
		CoatingType: string(c.CoatingType),
		EstimateResponse: EstimateResponse{
			BasePrice:    c.BasePrice,
			MaterialCost: c.MaterialCost,
			LaborCost:    c.LaborCost,
			TotalCost:    c.TotalCost,
			Breakdown:    fromBreakdown(c.Breakdown()),
		},
		CreatedAt: c.CreatedAt,
	}
}

func fromBreakdown(items []entities.BreakdownItem) []BreakdownItemResponse {
	out := make([]BreakdownItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, BreakdownItemResponse{Label: it.Label, Amount: it.Amount})
	}
	return out
}
