package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oficinadev/oficina_backend/internal/apperrors"
	"github.com/oficinadev/oficina_backend/internal/core/domain"
	portsrepo "github.com/oficinadev/oficina_backend/internal/core/ports/repositories"
	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
	"github.com/oficinadev/oficina_backend/internal/dto"
)

// organizationService implements the OrganizationSvcFacade interface.
type organizationService struct {
	BaseService
	orgRepo    portsrepo.OrganizationRepositoryFacade
	memberRepo portsrepo.MemberRepositoryFacade
	userRepo   portsrepo.UserReader
}

// NewOrganizationService creates the tenant-management service.
func NewOrganizationService(
	orgRepo portsrepo.OrganizationRepositoryFacade,
	memberRepo portsrepo.MemberRepositoryFacade,
	userRepo portsrepo.UserReader,
) portssvc.OrganizationSvcFacade {
	return &organizationService{orgRepo: orgRepo, memberRepo: memberRepo, userRepo: userRepo}
}

var _ portssvc.OrganizationSvcFacade = (*organizationService)(nil)

// ListOrganizations returns every organization for admins and the caller's
// own organizations otherwise.
func (s *organizationService) ListOrganizations(ctx context.Context, caller domain.Caller) ([]domain.Organization, error) {
	if caller.IsAdmin() {
		orgs, err := s.orgRepo.ListOrganizations(ctx)
		if err != nil {
			return nil, err
		}
		if orgs == nil {
			orgs = []domain.Organization{}
		}
		return orgs, nil
	}

	memberships, err := s.memberRepo.ListMembershipsByUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return []domain.Organization{}, nil
	}
	ids := make([]string, len(memberships))
	for i, m := range memberships {
		ids[i] = m.OrganizationID
	}
	orgs, err := s.orgRepo.ListOrganizationsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if orgs == nil {
		orgs = []domain.Organization{}
	}
	return orgs, nil
}

func (s *organizationService) GetOrganizationByID(ctx context.Context, caller domain.Caller, organizationID string) (*domain.Organization, []domain.Member, error) {
	if err := s.requireOrgAccess(ctx, caller, organizationID); err != nil {
		return nil, nil, err
	}
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, nil, err
	}
	members, err := s.memberRepo.ListMembersByOrganization(ctx, organizationID)
	if err != nil {
		return nil, nil, err
	}
	return org, members, nil
}

// CreateOrganization creates a tenant. Global admin only; the slug must be
// unused.
func (s *organizationService) CreateOrganization(ctx context.Context, caller domain.Caller, req dto.CreateOrganizationRequest) (*domain.Organization, error) {
	if !caller.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	if _, err := s.orgRepo.FindOrganizationBySlug(ctx, req.Slug); err == nil {
		return nil, fmt.Errorf("%w: slug %q is already in use", apperrors.ErrDuplicate, req.Slug)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	org := domain.Organization{
		OrganizationID: uuid.NewString(),
		Name:           req.Name,
		Slug:           req.Slug,
		AuditFields:    domain.NewAuditFields(caller.UserID, time.Now()),
	}
	if err := s.orgRepo.SaveOrganization(ctx, org); err != nil {
		s.LogError(ctx, err, "Failed to save organization", slog.String("slug", req.Slug))
		return nil, err
	}
	s.LogInfo(ctx, "Organization created",
		slog.String("organization_id", org.OrganizationID),
		slog.String("slug", org.Slug))
	return &org, nil
}

func (s *organizationService) UpdateOrganization(ctx context.Context, caller domain.Caller, organizationID string, req dto.UpdateOrganizationRequest) (*domain.Organization, error) {
	if err := s.requireOrgManage(ctx, caller, organizationID); err != nil {
		return nil, err
	}
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	org.Name = req.Name
	org.Touch(caller.UserID, time.Now())
	if err := s.orgRepo.UpdateOrganization(ctx, *org); err != nil {
		s.LogError(ctx, err, "Failed to update organization", slog.String("organization_id", organizationID))
		return nil, err
	}
	return org, nil
}

// DeleteOrganization removes a tenant. Admin only, and refused while the
// caller's own session is still scoped to it.
func (s *organizationService) DeleteOrganization(ctx context.Context, caller domain.Caller, organizationID string) error {
	if !caller.IsAdmin() {
		return apperrors.ErrForbidden
	}
	if caller.ActiveOrganizationID != nil && *caller.ActiveOrganizationID == organizationID {
		return fmt.Errorf("%w: cannot delete the active organization; switch context first", apperrors.ErrBusinessRule)
	}
	if err := s.orgRepo.DeleteOrganization(ctx, organizationID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Organization deleted", slog.String("organization_id", organizationID))
	return nil
}

// AddMember adds a user to an organization with a base role.
func (s *organizationService) AddMember(ctx context.Context, caller domain.Caller, organizationID string, req dto.AddMemberRequest) (*domain.Member, error) {
	if err := s.requireOrgManage(ctx, caller, organizationID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindUserByID(ctx, req.UserID); err != nil {
		return nil, err
	}
	if _, err := s.memberRepo.FindMember(ctx, req.UserID, organizationID); err == nil {
		return nil, fmt.Errorf("%w: user is already a member", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	member := domain.Member{
		MemberID:       uuid.NewString(),
		UserID:         req.UserID,
		OrganizationID: organizationID,
		Role:           domain.MemberRole(req.Role),
		JoinedAt:       time.Now(),
	}
	if err := s.memberRepo.AddMember(ctx, member); err != nil {
		s.LogError(ctx, err, "Failed to add member",
			slog.String("organization_id", organizationID), slog.String("user_id", req.UserID))
		return nil, err
	}
	s.LogInfo(ctx, "Member added",
		slog.String("organization_id", organizationID),
		slog.String("user_id", req.UserID),
		slog.String("role", req.Role))
	return &member, nil
}

// UpdateMember changes a member's base role and/or replaces its extra roles.
func (s *organizationService) UpdateMember(ctx context.Context, caller domain.Caller, organizationID, memberID string, req dto.UpdateMemberRequest) error {
	if err := s.requireOrgManage(ctx, caller, organizationID); err != nil {
		return err
	}
	member, err := s.findMemberInOrg(ctx, organizationID, memberID)
	if err != nil {
		return err
	}

	if req.Role != nil {
		if err := s.memberRepo.UpdateMemberRole(ctx, member.MemberID, domain.MemberRole(*req.Role)); err != nil {
			return err
		}
	}
	if req.ExtraRoles != nil {
		if err := s.memberRepo.SetExtraRoles(ctx, member.MemberID, req.ExtraRoles); err != nil {
			return err
		}
	}
	s.LogInfo(ctx, "Member updated", slog.String("member_id", memberID))
	return nil
}

func (s *organizationService) RemoveMember(ctx context.Context, caller domain.Caller, organizationID, memberID string) error {
	if err := s.requireOrgManage(ctx, caller, organizationID); err != nil {
		return err
	}
	member, err := s.findMemberInOrg(ctx, organizationID, memberID)
	if err != nil {
		return err
	}
	if err := s.memberRepo.RemoveMember(ctx, member.MemberID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Member removed", slog.String("member_id", memberID))
	return nil
}

// findMemberInOrg resolves a member ID within one organization; an ID from a
// foreign organization reads as not found.
func (s *organizationService) findMemberInOrg(ctx context.Context, organizationID, memberID string) (*domain.Member, error) {
	members, err := s.memberRepo.ListMembersByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].MemberID == memberID {
			return &members[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// requireOrgAccess allows admins and any member of the organization.
func (s *organizationService) requireOrgAccess(ctx context.Context, caller domain.Caller, organizationID string) error {
	if caller.IsAdmin() {
		return nil
	}
	if _, err := s.memberRepo.FindMember(ctx, caller.UserID, organizationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrForbidden
		}
		return err
	}
	return nil
}

// requireOrgManage allows admins and members holding the owner or admin role.
func (s *organizationService) requireOrgManage(ctx context.Context, caller domain.Caller, organizationID string) error {
	if caller.IsAdmin() {
		return nil
	}
	member, err := s.memberRepo.FindMember(ctx, caller.UserID, organizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrForbidden
		}
		return err
	}
	if member.Role != domain.MemberRoleOwner && member.Role != domain.MemberRoleAdmin {
		return apperrors.ErrForbidden
	}
	return nil
}
