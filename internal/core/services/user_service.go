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
	"github.com/oficinadev/oficina_backend/internal/utils"
)

// userService implements the UserSvcFacade interface.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the user-management service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) ListUsers(ctx context.Context, caller domain.Caller) ([]domain.User, error) {
	if !caller.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// GetUserByID allows admins to read anyone and users to read themselves.
func (s *userService) GetUserByID(ctx context.Context, caller domain.Caller, userID string) (*domain.User, error) {
	if !caller.IsAdmin() && caller.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return s.userRepo.FindUserByID(ctx, userID)
}

// CreateUser registers a new identity. Global admin only; the email must be
// unused.
func (s *userService) CreateUser(ctx context.Context, caller domain.Caller, req dto.CreateUserRequest) (*domain.User, error) {
	if !caller.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email is already registered", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	role := domain.UserRoleUser
	if req.Role != "" {
		role = domain.UserRole(req.Role)
	}
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		AuditFields:  domain.NewAuditFields(caller.UserID, time.Now()),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", req.Email))
		return nil, err
	}
	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID))
	return &user, nil
}

// UpdateUser updates profile fields. Admins may edit anyone; users may edit
// their own name, email and password but never their role.
func (s *userService) UpdateUser(ctx context.Context, caller domain.Caller, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if !caller.IsAdmin() {
		if caller.UserID != userID {
			return nil, apperrors.ErrForbidden
		}
		if req.Role != nil {
			return nil, fmt.Errorf("%w: cannot change own role", apperrors.ErrForbidden)
		}
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.userRepo.FindUserByEmail(ctx, *req.Email); err == nil {
			return nil, fmt.Errorf("%w: email is already registered", apperrors.ErrDuplicate)
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.LogError(ctx, err, "Failed to hash password")
			return nil, err
		}
		user.PasswordHash = hash
	}
	if req.Role != nil {
		user.Role = domain.UserRole(*req.Role)
	}
	user.Touch(caller.UserID, time.Now())

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

// SetBanned toggles the banned flag. Admin only; self-banning is refused.
func (s *userService) SetBanned(ctx context.Context, caller domain.Caller, userID string, banned bool) error {
	if !caller.IsAdmin() {
		return apperrors.ErrForbidden
	}
	if caller.UserID == userID {
		return fmt.Errorf("%w: cannot ban own account", apperrors.ErrBusinessRule)
	}
	if err := s.userRepo.SetBanned(ctx, userID, banned, caller.UserID, time.Now()); err != nil {
		return err
	}
	s.LogInfo(ctx, "User ban flag updated",
		slog.String("user_id", userID), slog.Bool("banned", banned))
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, caller domain.Caller, userID string) error {
	if !caller.IsAdmin() {
		return apperrors.ErrForbidden
	}
	if caller.UserID == userID {
		return fmt.Errorf("%w: cannot delete own account", apperrors.ErrBusinessRule)
	}
	if err := s.userRepo.DeleteUser(ctx, userID, caller.UserID, time.Now()); err != nil {
		return err
	}
	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}
