package request

import (
	"strings"

	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/domain/entities"
)

// CalculationRequest is the calculator form payload, shared by POST /api/calculations
// and POST /api/estimates.
//
// Cost fields sent by the client (totalCost etc.) are not part of the payload;
// amounts are always computed on the server.
type CalculationRequest struct {
	ServiceType string `json:"serviceType" validate:"notblank" example:"chimney-painting"`
	Height      Number `json:"height" validate:"required,positive_number" swaggertype:"number" example:"30"`
	Diameter    Number `json:"diameter" validate:"omitempty,positive_number" swaggertype:"number" example:"2.5"`
	SurfaceArea Number `json:"surfaceArea" validate:"required,positive_number" swaggertype:"number" example:"150"`
	CoatingType string `json:"coatingType" validate:"notblank" example:"premium"`
}

// Validate returns *FieldErrors when a field is missing or malformed.
func (r *CalculationRequest) Validate() error {
	r.ServiceType = strings.TrimSpace(r.ServiceType)
	r.CoatingType = strings.TrimSpace(r.CoatingType)
	return validateStruct(r)
}

func (r CalculationRequest) ToProjectInput() entities.ProjectInput {
	height, _ := r.Height.Float64()
	area, _ := r.SurfaceArea.Float64()

	in := entities.ProjectInput{
		ServiceType: entities.ServiceType(r.ServiceType),
		Height:      height,
		SurfaceArea: area,
		CoatingType: entities.CoatingType(r.CoatingType),
	}
	if d, ok := r.Diameter.Float64(); ok {
		in.Diameter = &d
	}
	return in
}
