package dto

import (
	"time"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
)

// CreateOrganizationRequest creates a tenant (global admin only).
type CreateOrganizationRequest struct {
	Name string `json:"name" binding:"required,min=1"`
	Slug string `json:"slug" binding:"required,min=1,slug"`
}

// UpdateOrganizationRequest renames an organization.
type UpdateOrganizationRequest struct {
	Name string `json:"name" binding:"required,min=1"`
}

// AddMemberRequest adds a user to an organization.
type AddMemberRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
	Role   string `json:"role" binding:"required,oneof=owner admin member"`
}

// UpdateMemberRequest changes a member's base role and/or extra roles.
type UpdateMemberRequest struct {
	Role       *string  `json:"role" binding:"omitempty,oneof=owner admin member"`
	ExtraRoles []string `json:"extraRoles" binding:"omitempty,dive,oneof=financeiro"`
}

// MemberResponse is the wire form of a membership.
type MemberResponse struct {
	MemberID   string    `json:"id"`
	UserID     string    `json:"userId"`
	Role       string    `json:"role"`
	ExtraRoles []string  `json:"extraRoles"`
	JoinedAt   time.Time `json:"joinedAt"`
}

// OrganizationResponse is the wire form of an organization.
type OrganizationResponse struct {
	OrganizationID string           `json:"id"`
	Name           string           `json:"name"`
	Slug           string           `json:"slug"`
	CreatedAt      time.Time        `json:"createdAt"`
	Members        []MemberResponse `json:"members,omitempty"`
}

// ToMemberResponse converts a domain membership to its wire form.
func ToMemberResponse(m *domain.Member) MemberResponse {
	extra := m.ExtraRoles
	if extra == nil {
		extra = []string{}
	}
	return MemberResponse{
		MemberID:   m.MemberID,
		UserID:     m.UserID,
		Role:       string(m.Role),
		ExtraRoles: extra,
		JoinedAt:   m.JoinedAt,
	}
}

// ToOrganizationResponse converts a domain organization and optional members.
func ToOrganizationResponse(org *domain.Organization, members []domain.Member) OrganizationResponse {
	resp := OrganizationResponse{
		OrganizationID: org.OrganizationID,
		Name:           org.Name,
		Slug:           org.Slug,
		CreatedAt:      org.CreatedAt,
	}
	for i := range members {
		resp.Members = append(resp.Members, ToMemberResponse(&members[i]))
	}
	return resp
}

// ToOrganizationResponses converts a slice of domain organizations.
func ToOrganizationResponses(orgs []domain.Organization) []OrganizationResponse {
	responses := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		responses[i] = ToOrganizationResponse(&orgs[i], nil)
	}
	return responses
}
