package repositories

import (
	"context"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
)

// ServiceOrderReader defines read operations for service orders,
// organization-scoped.
type ServiceOrderReader interface {
	FindServiceOrderByID(ctx context.Context, organizationID, serviceOrderID string) (*domain.ServiceOrder, error)

	// ListServiceOrders returns orders newest-opened first, optionally
	// filtered by status.
	ListServiceOrders(ctx context.Context, organizationID string, status *domain.ServiceOrderStatus) ([]domain.ServiceOrder, error)
}

// ServiceOrderWriter defines write operations for service orders.
type ServiceOrderWriter interface {
	SaveServiceOrder(ctx context.Context, order domain.ServiceOrder) error
	UpdateServiceOrder(ctx context.Context, order domain.ServiceOrder) error
}

// ServiceOrderRepositoryFacade combines all service-order repository operations.
type ServiceOrderRepositoryFacade interface {
	ServiceOrderReader
	ServiceOrderWriter
}
