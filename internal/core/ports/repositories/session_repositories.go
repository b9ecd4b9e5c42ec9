package repositories

import (
	"context"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
)

// SessionRepositoryFacade persists authenticated sessions and their active
// organization (the tenant context of every request).
type SessionRepositoryFacade interface {
	SaveSession(ctx context.Context, session domain.Session) error
	FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error)
	SetActiveOrganization(ctx context.Context, sessionID string, organizationID *string) error
	DeleteSession(ctx context.Context, sessionID string) error
}
