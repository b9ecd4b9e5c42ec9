package dto

import (
	"github.com/oficinadev/oficina_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateServiceItemRequest adds an item to the catalog.
type CreateServiceItemRequest struct {
	Name         string          `json:"name" binding:"required,min=1"`
	Description  *string         `json:"description"`
	DefaultPrice decimal.Decimal `json:"defaultPrice"`
}

// UpdateServiceItemRequest updates the supplied fields of a catalog item.
type UpdateServiceItemRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1"`
	Description  *string          `json:"description"`
	DefaultPrice *decimal.Decimal `json:"defaultPrice"`
	Active       *bool            `json:"active"`
}

// ServiceItemResponse is the wire form of a catalog item.
type ServiceItemResponse struct {
	ServiceItemID string          `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description,omitempty"`
	DefaultPrice  decimal.Decimal `json:"defaultPrice"`
	Active        bool            `json:"active"`
}

// ToServiceItemResponse converts a domain catalog item to its wire form.
func ToServiceItemResponse(i *domain.ServiceItem) ServiceItemResponse {
	return ServiceItemResponse{
		ServiceItemID: i.ServiceItemID,
		Name:          i.Name,
		Description:   i.Description,
		DefaultPrice:  i.DefaultPrice,
		Active:        i.Active,
	}
}

// ToServiceItemResponses converts a slice of domain catalog items.
func ToServiceItemResponses(items []domain.ServiceItem) []ServiceItemResponse {
	responses := make([]ServiceItemResponse, len(items))
	for i := range items {
		responses[i] = ToServiceItemResponse(&items[i])
	}
	return responses
}
