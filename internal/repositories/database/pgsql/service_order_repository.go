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

type PgxServiceOrderRepository struct {
	BaseRepository
}

func newPgxServiceOrderRepository(pool *pgxpool.Pool) portsrepo.ServiceOrderRepositoryFacade {
	return &PgxServiceOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ServiceOrderRepositoryFacade = (*PgxServiceOrderRepository)(nil)

const serviceOrderColumns = `service_order_id, organization_id, client_id, problem_description, services_performed, parts_used, estimated_value, final_value, status, opened_at, closed_at, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanServiceOrder(row pgx.Row) (*domain.ServiceOrder, error) {
	var o domain.ServiceOrder
	err := row.Scan(
		&o.ServiceOrderID,
		&o.OrganizationID,
		&o.ClientID,
		&o.ProblemDescription,
		&o.ServicesPerformed,
		&o.PartsUsed,
		&o.EstimatedValue,
		&o.FinalValue,
		&o.Status,
		&o.OpenedAt,
		&o.ClosedAt,
		&o.CreatedAt,
		&o.CreatedBy,
		&o.LastUpdatedAt,
		&o.LastUpdatedBy,
		&o.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *PgxServiceOrderRepository) SaveServiceOrder(ctx context.Context, order domain.ServiceOrder) error {
	query := `
		INSERT INTO service_orders (
			service_order_id, organization_id, client_id, problem_description,
			services_performed, parts_used, estimated_value, final_value, status,
			opened_at, closed_at, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		order.ServiceOrderID,
		order.OrganizationID,
		order.ClientID,
		order.ProblemDescription,
		order.ServicesPerformed,
		order.PartsUsed,
		order.EstimatedValue,
		order.FinalValue,
		order.Status,
		order.OpenedAt,
		order.ClosedAt,
		order.CreatedAt,
		order.CreatedBy,
		order.LastUpdatedAt,
		order.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save service order: %w", err)
	}
	return nil
}

func (r *PgxServiceOrderRepository) FindServiceOrderByID(ctx context.Context, organizationID, serviceOrderID string) (*domain.ServiceOrder, error) {
	query := `SELECT ` + serviceOrderColumns + ` FROM service_orders WHERE service_order_id = $1 AND organization_id = $2 AND deleted_at IS NULL;`
	order, err := scanServiceOrder(r.Pool.QueryRow(ctx, query, serviceOrderID, organizationID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find service order %s: %w", serviceOrderID, err)
	}
	return order, nil
}

func (r *PgxServiceOrderRepository) ListServiceOrders(ctx context.Context, organizationID string, status *domain.ServiceOrderStatus) ([]domain.ServiceOrder, error) {
	query := `SELECT ` + serviceOrderColumns + ` FROM service_orders WHERE organization_id = $1 AND deleted_at IS NULL`
	args := []any{organizationID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY opened_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query service orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.ServiceOrder
	for rows.Next() {
		o, err := scanServiceOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service order row: %w", err)
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (r *PgxServiceOrderRepository) UpdateServiceOrder(ctx context.Context, order domain.ServiceOrder) error {
	query := `
		UPDATE service_orders
		SET services_performed = $3, parts_used = $4, estimated_value = $5, final_value = $6,
		    status = $7, closed_at = $8, last_updated_at = $9, last_updated_by = $10
		WHERE service_order_id = $1 AND organization_id = $2 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		order.ServiceOrderID,
		order.OrganizationID,
		order.ServicesPerformed,
		order.PartsUsed,
		order.EstimatedValue,
		order.FinalValue,
		order.Status,
		order.ClosedAt,
		order.LastUpdatedAt,
		order.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update service order %s: %w", order.ServiceOrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
