package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a quote issued to a client, numbered ORC-YYYYMMDD-XXXX.
type Budget struct {
	BudgetID       string          `json:"budgetID"` // Primary Key (UUID)
	OrganizationID string          `json:"organizationID"`
	Number         string          `json:"number"`
	ClientID       string          `json:"clientID"`
	ServiceOrderID *string         `json:"serviceOrderID,omitempty"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Notes          *string         `json:"notes,omitempty"`
	IssuedAt       time.Time       `json:"issuedAt"`
	Items          []BudgetItem    `json:"items,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// BudgetItem is a single line of a budget. TotalPrice is always
// Quantity * UnitPrice, computed at creation time.
type BudgetItem struct {
	BudgetItemID  string          `json:"budgetItemID"` // Primary Key (UUID)
	BudgetID      string          `json:"budgetID"`
	ItemOrder     int             `json:"itemOrder"` // position within the budget
	Description   string          `json:"description"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	ServiceItemID *string         `json:"serviceItemID,omitempty"` // optional catalog link
}
