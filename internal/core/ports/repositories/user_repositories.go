package repositories

import (
	"context"
	"time"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
	UpdateUser(ctx context.Context, user domain.User) error

	// SetBanned toggles the banned flag.
	SetBanned(ctx context.Context, userID string, banned bool, updatedBy string, now time.Time) error

	// DeleteUser soft-deletes a user.
	DeleteUser(ctx context.Context, userID string, deletedBy string, now time.Time) error
}

// UserRepositoryFacade combines all user repository operations.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
