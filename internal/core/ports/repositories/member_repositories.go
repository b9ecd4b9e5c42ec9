package repositories

import (
	"context"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
)

// MemberReader defines read operations for organization memberships.
type MemberReader interface {
	// FindMember returns the membership of a user in an organization,
	// including extra roles, or apperrors.ErrNotFound when none exists.
	FindMember(ctx context.Context, userID, organizationID string) (*domain.Member, error)

	// ListMembersByOrganization returns all memberships of an organization,
	// oldest first.
	ListMembersByOrganization(ctx context.Context, organizationID string) ([]domain.Member, error)

	// ListMembershipsByUser returns all memberships of a user, oldest first.
	ListMembershipsByUser(ctx context.Context, userID string) ([]domain.Member, error)
}

// MemberWriter defines write operations for organization memberships.
type MemberWriter interface {
	AddMember(ctx context.Context, member domain.Member) error
	UpdateMemberRole(ctx context.Context, memberID string, role domain.MemberRole) error

	// SetExtraRoles replaces the full extra-role set of a membership.
	SetExtraRoles(ctx context.Context, memberID string, roles []string) error

	RemoveMember(ctx context.Context, memberID string) error
}

// MemberRepositoryFacade combines all membership repository operations.
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
}
