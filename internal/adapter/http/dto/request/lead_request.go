package request

import (
	"strings"

	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/domain/entities"
)

// LeadRequest is the contact form payload for POST /api/leads.
type LeadRequest struct {
	Name        string `json:"name" validate:"notblank" example:"Иван"`
	Phone       string `json:"phone" validate:"notblank" example:"+7 900 000-00-00"`
	Email       string `json:"email" validate:"notblank,email" example:"ivan@example.com"`
	ServiceType string `json:"serviceType" validate:"notblank" example:"chimney-painting"`
	Message     string `json:"message"`
	Source      string `json:"source" example:"contact-form"`
}

// Validate trims the text fields and checks them. It returns *FieldErrors on failure.
func (r *LeadRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
	r.ServiceType = strings.TrimSpace(r.ServiceType)
	r.Source = strings.TrimSpace(r.Source)
	return validateStruct(r)
}

func (r LeadRequest) ToEntity() entities.Lead {
	return entities.Lead{
		Name:        r.Name,
		Phone:       r.Phone,
		Email:       r.Email,
		ServiceType: entities.ServiceType(r.ServiceType),
		Message:     r.Message,
		Source:      r.Source,
	}
}
