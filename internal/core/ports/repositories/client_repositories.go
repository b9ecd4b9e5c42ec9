package repositories

import (
	"context"
	"time"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
)

// ClientReader defines read operations for client data. All lookups are
// organization-scoped: a client outside the organization is ErrNotFound.
type ClientReader interface {
	FindClientByID(ctx context.Context, organizationID, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, organizationID string) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data.
type ClientWriter interface {
	SaveClient(ctx context.Context, client domain.Client) error
	UpdateClient(ctx context.Context, client domain.Client) error
	DeleteClient(ctx context.Context, organizationID, clientID, deletedBy string, now time.Time) error
}

// ClientRepositoryFacade combines all client repository operations.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
