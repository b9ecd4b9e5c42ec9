package dto

import (
	"time"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateServiceOrderRequest opens a new service order for a client.
type CreateServiceOrderRequest struct {
	ClientID           string           `json:"clientId" binding:"required,uuid"`
	ProblemDescription string           `json:"problemDescription" binding:"required,min=1"`
	EstimatedValue     *decimal.Decimal `json:"estimatedValue"`
}

// UpdateServiceOrderRequest updates the supplied fields of a service order.
// Status moves are validated against the OPEN -> IN_PROGRESS -> FINISHED
// machine.
type UpdateServiceOrderRequest struct {
	ServicesPerformed *string          `json:"servicesPerformed"`
	PartsUsed         *string          `json:"partsUsed"`
	EstimatedValue    *decimal.Decimal `json:"estimatedValue"`
	FinalValue        *decimal.Decimal `json:"finalValue"`
	Status            *string          `json:"status" binding:"omitempty,oneof=OPEN IN_PROGRESS FINISHED"`
}

// ListServiceOrdersRequest optionally filters by status.
type ListServiceOrdersRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=OPEN IN_PROGRESS FINISHED"`
}

// ServiceOrderResponse is the wire form of a service order.
type ServiceOrderResponse struct {
	ServiceOrderID     string           `json:"id"`
	ClientID           string           `json:"clientId"`
	ProblemDescription string           `json:"problemDescription"`
	ServicesPerformed  string           `json:"servicesPerformed"`
	PartsUsed          string           `json:"partsUsed"`
	EstimatedValue     *decimal.Decimal `json:"estimatedValue,omitempty"`
	FinalValue         *decimal.Decimal `json:"finalValue,omitempty"`
	Status             string           `json:"status"`
	OpenedAt           time.Time        `json:"openedAt"`
	ClosedAt           *time.Time       `json:"closedAt,omitempty"`
}

// ToServiceOrderResponse converts a domain service order to its wire form.
func ToServiceOrderResponse(o *domain.ServiceOrder) ServiceOrderResponse {
	return ServiceOrderResponse{
		ServiceOrderID:     o.ServiceOrderID,
		ClientID:           o.ClientID,
		ProblemDescription: o.ProblemDescription,
		ServicesPerformed:  o.ServicesPerformed,
		PartsUsed:          o.PartsUsed,
		EstimatedValue:     o.EstimatedValue,
		FinalValue:         o.FinalValue,
		Status:             string(o.Status),
		OpenedAt:           o.OpenedAt,
		ClosedAt:           o.ClosedAt,
	}
}

// ToServiceOrderResponses converts a slice of domain service orders.
func ToServiceOrderResponses(orders []domain.ServiceOrder) []ServiceOrderResponse {
	responses := make([]ServiceOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToServiceOrderResponse(&orders[i])
	}
	return responses
}
