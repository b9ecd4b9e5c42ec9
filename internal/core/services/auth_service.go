package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/oficinadev/oficina_backend/internal/apperrors"
	"github.com/oficinadev/oficina_backend/internal/core/domain"
	portsrepo "github.com/oficinadev/oficina_backend/internal/core/ports/repositories"
	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
	"github.com/oficinadev/oficina_backend/internal/dto"
	"github.com/oficinadev/oficina_backend/internal/platform/config"
	"github.com/oficinadev/oficina_backend/internal/utils"
)

// authService implements the AuthSvcFacade interface.
type authService struct {
	BaseService
	userRepo    portsrepo.UserReader
	memberRepo  portsrepo.MemberReader
	sessionRepo portsrepo.SessionRepositoryFacade
	cfg         *config.Config
}

// NewAuthService creates the authentication/session service.
func NewAuthService(
	userRepo portsrepo.UserReader,
	memberRepo portsrepo.MemberReader,
	sessionRepo portsrepo.SessionRepositoryFacade,
	cfg *config.Config,
) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:    userRepo,
		memberRepo:  memberRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies credentials and opens a session. The session's active
// organization defaults to the user's oldest membership.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}
	if user.Banned {
		return nil, fmt.Errorf("%w: account is banned", apperrors.ErrForbidden)
	}

	var activeOrgID *string
	memberships, err := s.memberRepo.ListMembershipsByUser(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	if len(memberships) > 0 {
		// memberships are ordered oldest first
		activeOrgID = &memberships[0].OrganizationID
	}

	now := time.Now()
	session := domain.Session{
		SessionID:            uuid.NewString(),
		UserID:               user.UserID,
		ActiveOrganizationID: activeOrgID,
		ExpiresAt:            now.Add(s.cfg.JWTExpiryDuration),
		CreatedAt:            now,
	}
	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		s.LogError(ctx, err, "Failed to save session", slog.String("user_id", user.UserID))
		return nil, err
	}

	token, err := s.signToken(user.UserID, session.SessionID, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token", slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return &dto.LoginResponse{
		Token:                token,
		UserID:               user.UserID,
		Name:                 user.Name,
		Role:                 string(user.Role),
		ActiveOrganizationID: activeOrgID,
	}, nil
}

func (s *authService) signToken(userID, sessionID string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ID:        sessionID,
		Issuer:    s.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiryDuration)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ResolveCaller rebuilds the caller context for an authenticated request.
func (s *authService) ResolveCaller(ctx context.Context, userID, sessionID string) (domain.Caller, error) {
	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return domain.Caller{}, err
	}
	if session.UserID != userID || session.Expired(time.Now()) {
		return domain.Caller{}, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return domain.Caller{}, err
	}
	if user.Banned {
		return domain.Caller{}, fmt.Errorf("%w: account is banned", apperrors.ErrUnauthorized)
	}

	return domain.Caller{
		UserID:               user.UserID,
		Role:                 user.Role,
		ActiveOrganizationID: session.ActiveOrganizationID,
	}, nil
}

// SetActiveOrganization switches the session's tenant context. Non-admin
// callers must be members of the target organization.
func (s *authService) SetActiveOrganization(ctx context.Context, caller domain.Caller, sessionID, organizationID string) error {
	if !caller.IsAdmin() {
		if _, err := s.memberRepo.FindMember(ctx, caller.UserID, organizationID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.ErrForbidden
			}
			return err
		}
	}
	if err := s.sessionRepo.SetActiveOrganization(ctx, sessionID, &organizationID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Active organization switched",
		slog.String("user_id", caller.UserID),
		slog.String("organization_id", organizationID))
	return nil
}

// Logout discards the session.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.DeleteSession(ctx, sessionID)
}
