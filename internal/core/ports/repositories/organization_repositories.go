package repositories

import (
	"context"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
)

// OrganizationReader defines read operations for organization data.
type OrganizationReader interface {
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)
	FindOrganizationBySlug(ctx context.Context, slug string) (*domain.Organization, error)
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
	ListOrganizationsByIDs(ctx context.Context, organizationIDs []string) ([]domain.Organization, error)
}

// OrganizationWriter defines write operations for organization data.
type OrganizationWriter interface {
	SaveOrganization(ctx context.Context, org domain.Organization) error
	UpdateOrganization(ctx context.Context, org domain.Organization) error
	DeleteOrganization(ctx context.Context, organizationID string) error
}

// OrganizationRepositoryFacade combines all organization repository operations.
type OrganizationRepositoryFacade interface {
	OrganizationReader
	OrganizationWriter
}
