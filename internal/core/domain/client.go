package domain

import "time"

// Client is a customer of the shop, scoped to one organization.
type Client struct {
	ClientID       string  `json:"clientID"` // Primary Key (UUID)
	OrganizationID string  `json:"organizationID"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Email          *string `json:"email,omitempty"`
	Document       *string `json:"document,omitempty"` // CPF/CNPJ
	Notes          *string `json:"notes,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
