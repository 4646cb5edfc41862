package entities

import "time"

// DefaultLeadSource tags leads submitted without an explicit origin channel.
const DefaultLeadSource = "website"

// Lead is a contact-form submission from a prospective customer.
//
// Leads are created once and never updated or deleted.
type Lead struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	Email       string      `json:"email"`
	ServiceType ServiceType `json:"serviceType"`
	Message     string      `json:"message"`
	Source      string      `json:"source"`
	CreatedAt   time.Time   `json:"createdAt"`
}
