package dto

import (
	"time"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetItemRequest is one line of a budget being created. TotalPrice is
// computed server-side as Quantity * UnitPrice.
type BudgetItemRequest struct {
	ServiceItemID *string         `json:"serviceItemId" binding:"omitempty,uuid"`
	Description   string          `json:"description" binding:"required,min=1"`
	Quantity      int64           `json:"quantity" binding:"required,min=1"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
}

// CreateBudgetRequest issues a new budget for a client.
type CreateBudgetRequest struct {
	ClientID       string              `json:"clientId" binding:"required,uuid"`
	Items          []BudgetItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes          *string             `json:"notes"`
	ServiceOrderID *string             `json:"serviceOrderId" binding:"omitempty,uuid"`
}

// BudgetItemResponse is the wire form of a budget line.
type BudgetItemResponse struct {
	BudgetItemID  string          `json:"id"`
	ItemOrder     int             `json:"order"`
	Description   string          `json:"description"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	ServiceItemID *string         `json:"serviceItemId,omitempty"`
}

// BudgetResponse is the wire form of a budget.
type BudgetResponse struct {
	BudgetID       string               `json:"id"`
	Number         string               `json:"number"`
	ClientID       string               `json:"clientId"`
	ServiceOrderID *string              `json:"serviceOrderId,omitempty"`
	TotalAmount    decimal.Decimal      `json:"totalAmount"`
	Notes          *string              `json:"notes,omitempty"`
	IssuedAt       time.Time            `json:"issuedAt"`
	Items          []BudgetItemResponse `json:"items,omitempty"`
}

// ToBudgetResponse converts a domain budget (with or without items).
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	resp := BudgetResponse{
		BudgetID:       b.BudgetID,
		Number:         b.Number,
		ClientID:       b.ClientID,
		ServiceOrderID: b.ServiceOrderID,
		TotalAmount:    b.TotalAmount,
		Notes:          b.Notes,
		IssuedAt:       b.IssuedAt,
	}
	for _, item := range b.Items {
		resp.Items = append(resp.Items, BudgetItemResponse{
			BudgetItemID:  item.BudgetItemID,
			ItemOrder:     item.ItemOrder,
			Description:   item.Description,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			TotalPrice:    item.TotalPrice,
			ServiceItemID: item.ServiceItemID,
		})
	}
	return resp
}

// ToBudgetResponses converts a slice of domain budgets.
func ToBudgetResponses(budgets []domain.Budget) []BudgetResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		responses[i] = ToBudgetResponse(&budgets[i])
	}
	return responses
}
