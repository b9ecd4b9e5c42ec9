package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceItem is a catalog entry (service or part) with a default price.
type ServiceItem struct {
	ServiceItemID  string          `json:"serviceItemID"` // Primary Key (UUID)
	OrganizationID string          `json:"organizationID"`
	Name           string          `json:"name"`
	Description    *string         `json:"description,omitempty"`
	DefaultPrice   decimal.Decimal `json:"defaultPrice"`
	Active         bool            `json:"active"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
