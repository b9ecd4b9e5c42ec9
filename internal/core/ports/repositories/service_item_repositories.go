package repositories

import (
	"context"
	"time"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
)

// ServiceItemReader defines read operations for the service catalog,
// organization-scoped.
type ServiceItemReader interface {
	FindServiceItemByID(ctx context.Context, organizationID, serviceItemID string) (*domain.ServiceItem, error)

	// ListServiceItems returns catalog items ordered by name. When activeOnly
	// is true, inactive items are excluded.
	ListServiceItems(ctx context.Context, organizationID string, activeOnly bool) ([]domain.ServiceItem, error)
}

// ServiceItemWriter defines write operations for the service catalog.
type ServiceItemWriter interface {
	SaveServiceItem(ctx context.Context, item domain.ServiceItem) error
	UpdateServiceItem(ctx context.Context, item domain.ServiceItem) error
	DeleteServiceItem(ctx context.Context, organizationID, serviceItemID, deletedBy string, now time.Time) error
}

// ServiceItemRepositoryFacade combines all catalog repository operations.
type ServiceItemRepositoryFacade interface {
	ServiceItemReader
	ServiceItemWriter
}
