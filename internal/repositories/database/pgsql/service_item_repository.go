package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oficinadev/oficina_backend/internal/apperrors"
	"github.com/oficinadev/oficina_backend/internal/core/domain"
	portsrepo "github.com/oficinadev/oficina_backend/internal/core/ports/repositories"
)

type PgxServiceItemRepository struct {
	BaseRepository
}

func newPgxServiceItemRepository(pool *pgxpool.Pool) portsrepo.ServiceItemRepositoryFacade {
	return &PgxServiceItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ServiceItemRepositoryFacade = (*PgxServiceItemRepository)(nil)

const serviceItemColumns = `service_item_id, organization_id, name, description, default_price, active, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanServiceItem(row pgx.Row) (*domain.ServiceItem, error) {
	var i domain.ServiceItem
	err := row.Scan(
		&i.ServiceItemID,
		&i.OrganizationID,
		&i.Name,
		&i.Description,
		&i.DefaultPrice,
		&i.Active,
		&i.CreatedAt,
		&i.CreatedBy,
		&i.LastUpdatedAt,
		&i.LastUpdatedBy,
		&i.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}

func (r *PgxServiceItemRepository) SaveServiceItem(ctx context.Context, item domain.ServiceItem) error {
	query := `
		INSERT INTO service_items (service_item_id, organization_id, name, description, default_price, active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		item.ServiceItemID,
		item.OrganizationID,
		item.Name,
		item.Description,
		item.DefaultPrice,
		item.Active,
		item.CreatedAt,
		item.CreatedBy,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save catalog item: %w", err)
	}
	return nil
}

func (r *PgxServiceItemRepository) FindServiceItemByID(ctx context.Context, organizationID, serviceItemID string) (*domain.ServiceItem, error) {
	query := `SELECT ` + serviceItemColumns + ` FROM service_items WHERE service_item_id = $1 AND organization_id = $2 AND deleted_at IS NULL;`
	item, err := scanServiceItem(r.Pool.QueryRow(ctx, query, serviceItemID, organizationID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find catalog item %s: %w", serviceItemID, err)
	}
	return item, nil
}

func (r *PgxServiceItemRepository) ListServiceItems(ctx context.Context, organizationID string, activeOnly bool) ([]domain.ServiceItem, error) {
	query := `SELECT ` + serviceItemColumns + ` FROM service_items WHERE organization_id = $1 AND deleted_at IS NULL`
	if activeOnly {
		query += ` AND active`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog items: %w", err)
	}
	defer rows.Close()

	var items []domain.ServiceItem
	for rows.Next() {
		i, err := scanServiceItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog item row: %w", err)
		}
		items = append(items, *i)
	}
	return items, rows.Err()
}

func (r *PgxServiceItemRepository) UpdateServiceItem(ctx context.Context, item domain.ServiceItem) error {
	query := `
		UPDATE service_items
		SET name = $3, description = $4, default_price = $5, active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE service_item_id = $1 AND organization_id = $2 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		item.ServiceItemID,
		item.OrganizationID,
		item.Name,
		item.Description,
		item.DefaultPrice,
		item.Active,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update catalog item %s: %w", item.ServiceItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxServiceItemRepository) DeleteServiceItem(ctx context.Context, organizationID, serviceItemID, deletedBy string, now time.Time) error {
	query := `
		UPDATE service_items
		SET deleted_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE service_item_id = $1 AND organization_id = $2 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, serviceItemID, organizationID, now, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete catalog item %s: %w", serviceItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
