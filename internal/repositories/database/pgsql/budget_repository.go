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

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

const budgetColumns = `budget_id, organization_id, number, client_id, service_order_id, total_amount, notes, issued_at, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanBudget(row pgx.Row) (*domain.Budget, error) {
	var b domain.Budget
	err := row.Scan(
		&b.BudgetID,
		&b.OrganizationID,
		&b.Number,
		&b.ClientID,
		&b.ServiceOrderID,
		&b.TotalAmount,
		&b.Notes,
		&b.IssuedAt,
		&b.CreatedAt,
		&b.CreatedBy,
		&b.LastUpdatedAt,
		&b.LastUpdatedBy,
		&b.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// SaveBudget persists the budget header and all its items in one transaction.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		INSERT INTO budgets (budget_id, organization_id, number, client_id, service_order_id, total_amount, notes, issued_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, headerQuery,
		budget.BudgetID,
		budget.OrganizationID,
		budget.Number,
		budget.ClientID,
		budget.ServiceOrderID,
		budget.TotalAmount,
		budget.Notes,
		budget.IssuedAt,
		budget.CreatedAt,
		budget.CreatedBy,
		budget.LastUpdatedAt,
		budget.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert budget %s: %w", budget.BudgetID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO budget_items (budget_item_id, budget_id, item_order, description, quantity, unit_price, total_price, service_item_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, item := range budget.Items {
		batch.Queue(itemQuery,
			item.BudgetItemID,
			item.BudgetID,
			item.ItemOrder,
			item.Description,
			item.Quantity,
			item.UnitPrice,
			item.TotalPrice,
			item.ServiceItemID,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range budget.Items {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert budget item: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close budget item batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, organizationID, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1 AND organization_id = $2 AND deleted_at IS NULL;`
	budget, err := scanBudget(r.Pool.QueryRow(ctx, query, budgetID, organizationID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find budget %s: %w", budgetID, err)
	}

	itemsQuery := `
		SELECT budget_item_id, budget_id, item_order, description, quantity, unit_price, total_price, service_item_id
		FROM budget_items
		WHERE budget_id = $1
		ORDER BY item_order;
	`
	rows, err := r.Pool.Query(ctx, itemsQuery, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.BudgetItem
		err := rows.Scan(
			&item.BudgetItemID,
			&item.BudgetID,
			&item.ItemOrder,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
			&item.TotalPrice,
			&item.ServiceItemID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget item row: %w", err)
		}
		budget.Items = append(budget.Items, item)
	}
	return budget, rows.Err()
}

func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, organizationID string) ([]domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE organization_id = $1 AND deleted_at IS NULL ORDER BY issued_at DESC;`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	var budgets []domain.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, *b)
	}
	return budgets, rows.Err()
}

func (r *PgxBudgetRepository) CountBudgetsWithNumberPrefix(ctx context.Context, organizationID, prefix string) (int, error) {
	query := `SELECT count(*) FROM budgets WHERE organization_id = $1 AND number LIKE $2 || '%';`
	var count int
	if err := r.Pool.QueryRow(ctx, query, organizationID, prefix).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count budgets by prefix: %w", err)
	}
	return count, nil
}
