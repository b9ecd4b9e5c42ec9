package domain

import "time"

// MemberRole is the base role of a user within an organization.
type MemberRole string

const (
	MemberRoleOwner  MemberRole = "owner"
	MemberRoleAdmin  MemberRole = "admin"
	MemberRoleMember MemberRole = "member"
)

// ExtraRoleFinanceiro grants access to the cash-flow module to members whose
// base role would not otherwise allow it.
const ExtraRoleFinanceiro = "financeiro"

// Member represents the membership of a User in an Organization.
// At most one membership exists per (UserID, OrganizationID) pair.
type Member struct {
	MemberID       string     `json:"memberID"` // Primary Key (UUID)
	UserID         string     `json:"userID"`
	OrganizationID string     `json:"organizationID"`
	Role           MemberRole `json:"role"`
	ExtraRoles     []string   `json:"extraRoles"` // additive permission tags, e.g. "financeiro"
	JoinedAt       time.Time  `json:"joinedAt"`
}

// HasExtraRole reports whether the membership carries the given extra role.
func (m *Member) HasExtraRole(role string) bool {
	for _, r := range m.ExtraRoles {
		if r == role {
			return true
		}
	}
	return false
}
