package dto

import (
	"time"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
)

// CreateClientRequest creates a client in the caller's organization.
type CreateClientRequest struct {
	Name     string  `json:"name" binding:"required,min=1"`
	Phone    string  `json:"phone" binding:"required,min=1"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Document *string `json:"document"`
	Notes    *string `json:"notes"`
}

// UpdateClientRequest updates the supplied fields of a client.
type UpdateClientRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Phone    *string `json:"phone" binding:"omitempty,min=1"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Document *string `json:"document"`
	Notes    *string `json:"notes"`
}

// ClientResponse is the wire form of a client.
type ClientResponse struct {
	ClientID  string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	Document  *string   `json:"document,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToClientResponse converts a domain client to its wire form.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:  c.ClientID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Document:  c.Document,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

// ToClientResponses converts a slice of domain clients.
func ToClientResponses(clients []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses
}
