package services

import (
	"context"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
)

// PermissionSource yields the membership (base role + extra roles) of a user
// in an organization. Two historical permission models exist upstream of this
// system; this port is the seam where a different backing model would plug
// in. The adapter in use is selected by configuration.
type PermissionSource interface {
	// MembershipFor returns the user's membership in the organization, or
	// apperrors.ErrNotFound when the user is not a member.
	MembershipFor(ctx context.Context, userID, organizationID string) (*domain.Member, error)
}

// PermissionSvc gates access to protected modules. Checks are read-only and
// must run before the guarded operation's side effects.
type PermissionSvc interface {
	// CanAccessCashFlow returns nil when the caller may use the cash-flow
	// module, apperrors.ErrForbidden otherwise.
	CanAccessCashFlow(ctx context.Context, caller domain.Caller) error
}
