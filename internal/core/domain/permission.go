package domain

// Caller bundles the identity and tenant context of an authenticated request:
// who is calling, their global role, and the organization the session is
// currently scoped to.
type Caller struct {
	UserID               string
	Role                 UserRole
	ActiveOrganizationID *string
}

// IsAdmin reports whether the caller holds the global admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == UserRoleAdmin
}

// CanAccessCashFlow decides whether a caller may use the cash-flow module.
// Global admins are always permitted. Otherwise the caller's membership in the
// active organization decides: owner and admin base roles imply access, and
// the "financeiro" extra role grants it to regular members. A nil membership
// (no active organization, or not a member of it) denies.
func CanAccessCashFlow(globalRole UserRole, membership *Member) bool {
	if globalRole == UserRoleAdmin {
		return true
	}
	if membership == nil {
		return false
	}
	if membership.Role == MemberRoleOwner || membership.Role == MemberRoleAdmin {
		return true
	}
	return membership.HasExtraRole(ExtraRoleFinanceiro)
}
