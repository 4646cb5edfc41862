package response

import (
	"time"

	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/domain/entities"
)

type LeadResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	ServiceType string    `json:"serviceType"`
	Message     string    `json:"message"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:          l.ID,
		Name:        l.Name,
		Phone:       l.Phone,
		Email:       l.Email,
		ServiceType: string(l.ServiceType),
		Message:     l.Message,
		Source:      l.Source,
		CreatedAt:   l.CreatedAt,
	}
}

// FromLeads never returns nil so an empty store encodes as [].
func FromLeads(leads []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, FromLead(l))
	}
	return out
}
