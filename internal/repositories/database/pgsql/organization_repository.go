package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oficinadev/oficina_backend/internal/apperrors"
	"github.com/oficinadev/oficina_backend/internal/core/domain"
	portsrepo "github.com/oficinadev/oficina_backend/internal/core/ports/repositories"
)

type PgxOrganizationRepository struct {
	BaseRepository
}

func newPgxOrganizationRepository(pool *pgxpool.Pool) portsrepo.OrganizationRepositoryFacade {
	return &PgxOrganizationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OrganizationRepositoryFacade = (*PgxOrganizationRepository)(nil)

const organizationColumns = `organization_id, name, slug, created_at, created_by, last_updated_at, last_updated_by`

func scanOrganization(row pgx.Row) (*domain.Organization, error) {
	var o domain.Organization
	err := row.Scan(
		&o.OrganizationID,
		&o.Name,
		&o.Slug,
		&o.CreatedAt,
		&o.CreatedBy,
		&o.LastUpdatedAt,
		&o.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *PgxOrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) error {
	query := `
		INSERT INTO organizations (organization_id, name, slug, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		org.OrganizationID,
		org.Name,
		org.Slug,
		org.CreatedAt,
		org.CreatedBy,
		org.LastUpdatedAt,
		org.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save organization: %w", err)
	}
	return nil
}

func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE organization_id = $1;`
	org, err := scanOrganization(r.Pool.QueryRow(ctx, query, organizationID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find organization %s: %w", organizationID, err)
	}
	return org, nil
}

func (r *PgxOrganizationRepository) FindOrganizationBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE slug = $1;`
	org, err := scanOrganization(r.Pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find organization by slug %s: %w", slug, err)
	}
	return org, nil
}

func (r *PgxOrganizationRepository) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query organizations: %w", err)
	}
	defer rows.Close()
	return collectOrganizations(rows)
}

func (r *PgxOrganizationRepository) ListOrganizationsByIDs(ctx context.Context, organizationIDs []string) ([]domain.Organization, error) {
	if len(organizationIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE organization_id = ANY($1) ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query, organizationIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query organizations by IDs: %w", err)
	}
	defer rows.Close()
	return collectOrganizations(rows)
}

func collectOrganizations(rows pgx.Rows) ([]domain.Organization, error) {
	var orgs []domain.Organization
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan organization row: %w", err)
		}
		orgs = append(orgs, *o)
	}
	return orgs, rows.Err()
}

func (r *PgxOrganizationRepository) UpdateOrganization(ctx context.Context, org domain.Organization) error {
	query := `
		UPDATE organizations
		SET name = $2, last_updated_at = $3, last_updated_by = $4
		WHERE organization_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, org.OrganizationID, org.Name, org.LastUpdatedAt, org.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update organization %s: %w", org.OrganizationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOrganizationRepository) DeleteOrganization(ctx context.Context, organizationID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM organizations WHERE organization_id = $1;`, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete organization %s: %w", organizationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
