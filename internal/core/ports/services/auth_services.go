package services

import (
	"context"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
	"github.com/oficinadev/oficina_backend/internal/dto"
)

// AuthSvcFacade authenticates users and maintains their session tenant
// context.
type AuthSvcFacade interface {
	// Login verifies credentials, creates a session whose active
	// organization defaults to the user's oldest membership, and issues a
	// bearer token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// ResolveCaller rebuilds the caller context (identity, global role,
	// active organization) for an authenticated request.
	ResolveCaller(ctx context.Context, userID, sessionID string) (domain.Caller, error)

	// SetActiveOrganization switches the session to another organization the
	// caller belongs to (global admins may switch to any organization).
	SetActiveOrganization(ctx context.Context, caller domain.Caller, sessionID, organizationID string) error

	// Logout discards the session.
	Logout(ctx context.Context, sessionID string) error
}
