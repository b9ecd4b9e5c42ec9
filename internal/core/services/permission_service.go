package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oficinadev/oficina_backend/internal/apperrors"
	"github.com/oficinadev/oficina_backend/internal/core/domain"
	portsrepo "github.com/oficinadev/oficina_backend/internal/core/ports/repositories"
	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
	"github.com/oficinadev/oficina_backend/internal/platform/config"
)

// memberPermissionSource backs the permission evaluator with the Member
// table and its extra-role associations.
type memberPermissionSource struct {
	memberRepo portsrepo.MemberReader
}

func (s *memberPermissionSource) MembershipFor(ctx context.Context, userID, organizationID string) (*domain.Member, error) {
	return s.memberRepo.FindMember(ctx, userID, organizationID)
}

// NewPermissionSource builds the permission source named by configuration.
// Only the member-table adapter is currently shipped.
func NewPermissionSource(cfg *config.Config, memberRepo portsrepo.MemberReader) (portssvc.PermissionSource, error) {
	switch cfg.PermissionSource {
	case "", "member":
		return &memberPermissionSource{memberRepo: memberRepo}, nil
	default:
		return nil, fmt.Errorf("unknown permission source %q", cfg.PermissionSource)
	}
}

// permissionService implements the PermissionSvc interface.
type permissionService struct {
	BaseService
	source portssvc.PermissionSource
}

// NewPermissionService creates the permission evaluator over the given source.
func NewPermissionService(source portssvc.PermissionSource) portssvc.PermissionSvc {
	return &permissionService{source: source}
}

var _ portssvc.PermissionSvc = (*permissionService)(nil)

// CanAccessCashFlow gates the cash-flow module. It is read-only and runs
// before the guarded operation; a denial maps to ErrForbidden with no side
// effects.
func (s *permissionService) CanAccessCashFlow(ctx context.Context, caller domain.Caller) error {
	if caller.IsAdmin() {
		return nil
	}
	if caller.ActiveOrganizationID == nil || *caller.ActiveOrganizationID == "" {
		s.LogDebug(ctx, "Cash-flow access denied: no active organization",
			slog.String("user_id", caller.UserID))
		return apperrors.ErrForbidden
	}

	membership, err := s.source.MembershipFor(ctx, caller.UserID, *caller.ActiveOrganizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Cash-flow access denied: not a member",
				slog.String("user_id", caller.UserID),
				slog.String("organization_id", *caller.ActiveOrganizationID))
			return apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to load membership for permission check",
			slog.String("user_id", caller.UserID))
		return err
	}

	if !domain.CanAccessCashFlow(caller.Role, membership) {
		s.LogDebug(ctx, "Cash-flow access denied: insufficient role",
			slog.String("user_id", caller.UserID),
			slog.String("member_role", string(membership.Role)))
		return apperrors.ErrForbidden
	}
	return nil
}
