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

type PgxCashFlowRepository struct {
	BaseRepository
}

func newPgxCashFlowRepository(pool *pgxpool.Pool) portsrepo.CashFlowRepositoryFacade {
	return &PgxCashFlowRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CashFlowRepositoryFacade = (*PgxCashFlowRepository)(nil)

const cashFlowColumns = `e.entry_id, e.organization_id, e.type, e.description, e.amount, e.date, e.paid_at, e.service_order_id, e.group_id, e.installment_index, e.created_at, e.created_by, e.last_updated_at, e.last_updated_by, e.deleted_at`

func scanCashFlowEntry(row pgx.Row) (*domain.CashFlowEntry, error) {
	var e domain.CashFlowEntry
	err := row.Scan(
		&e.EntryID,
		&e.OrganizationID,
		&e.Type,
		&e.Description,
		&e.Amount,
		&e.Date,
		&e.PaidAt,
		&e.ServiceOrderID,
		&e.GroupID,
		&e.InstallmentIndex,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
		&e.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// dateColumn maps a domain date field to its SQL column.
func dateColumn(field domain.DateField) string {
	if field == domain.ByPaidDate {
		return "e.paid_at"
	}
	return "e.date"
}

// SaveEntries inserts the whole batch in one transaction; a failure leaves no
// partial installment group behind.
func (r *PgxCashFlowRepository) SaveEntries(ctx context.Context, entries []domain.CashFlowEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	query := `
		INSERT INTO cash_flow_entries (
			entry_id, organization_id, type, description, amount, date, paid_at,
			service_order_id, group_id, installment_index,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	for _, e := range entries {
		batch.Queue(query,
			e.EntryID,
			e.OrganizationID,
			e.Type,
			e.Description,
			e.Amount,
			e.Date,
			e.PaidAt,
			e.ServiceOrderID,
			e.GroupID,
			e.InstallmentIndex,
			e.CreatedAt,
			e.CreatedBy,
			e.LastUpdatedAt,
			e.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range entries {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert cash-flow entry: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close cash-flow batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxCashFlowRepository) FindEntryByID(ctx context.Context, organizationID, entryID string) (*domain.CashFlowEntry, error) {
	query := `SELECT ` + cashFlowColumns + ` FROM cash_flow_entries e WHERE e.entry_id = $1 AND e.organization_id = $2 AND e.deleted_at IS NULL;`
	entry, err := scanCashFlowEntry(r.Pool.QueryRow(ctx, query, entryID, organizationID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find cash-flow entry %s: %w", entryID, err)
	}
	return entry, nil
}

// ListEntries translates the structured filter into SQL. Range bounds apply
// to the filter's date field; the client filter goes through the linked
// service order, so unlinked entries never match it.
func (r *PgxCashFlowRepository) ListEntries(ctx context.Context, organizationID string, filter domain.EntryFilter, query portsrepo.ListEntriesQuery) ([]domain.CashFlowEntry, error) {
	sql := `SELECT ` + cashFlowColumns + ` FROM cash_flow_entries e`
	if query.ClientID != nil {
		sql += ` JOIN service_orders so ON so.service_order_id = e.service_order_id`
	}
	sql += ` WHERE e.organization_id = $1 AND e.deleted_at IS NULL`
	args := []any{organizationID}

	next := func(arg any) string {
		args = append(args, arg)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Type != nil {
		sql += ` AND e.type = ` + next(*filter.Type)
	}
	switch filter.Paid {
	case domain.PaidOnly:
		sql += ` AND e.paid_at IS NOT NULL`
	case domain.UnpaidOnly:
		sql += ` AND e.paid_at IS NULL`
	}

	column := dateColumn(filter.DateField)
	if filter.MinDate != nil {
		sql += ` AND e.date >= ` + next(*filter.MinDate)
	}
	if query.DateFrom != nil {
		sql += ` AND ` + column + ` >= ` + next(*query.DateFrom)
	}
	if query.DateTo != nil {
		sql += ` AND ` + column + ` <= ` + next(*query.DateTo)
	}
	if query.ClientID != nil {
		sql += ` AND so.client_id = ` + next(*query.ClientID)
	}

	sql += ` ORDER BY ` + column + ` DESC NULLS LAST, e.created_at DESC;`

	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash-flow entries: %w", err)
	}
	defer rows.Close()
	return collectCashFlowEntries(rows)
}

// ListEntriesByDateRange feeds the pivot summaries. With ByPaidDate, unpaid
// entries fall out through the null comparison.
func (r *PgxCashFlowRepository) ListEntriesByDateRange(ctx context.Context, organizationID string, field domain.DateField, from, to time.Time) ([]domain.CashFlowEntry, error) {
	column := dateColumn(field)
	query := `SELECT ` + cashFlowColumns + ` FROM cash_flow_entries e
		WHERE e.organization_id = $1 AND e.deleted_at IS NULL
		AND ` + column + ` >= $2 AND ` + column + ` <= $3
		ORDER BY ` + column + `;`

	rows, err := r.Pool.Query(ctx, query, organizationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash-flow entries by date range: %w", err)
	}
	defer rows.Close()
	return collectCashFlowEntries(rows)
}

func collectCashFlowEntries(rows pgx.Rows) ([]domain.CashFlowEntry, error) {
	var entries []domain.CashFlowEntry
	for rows.Next() {
		e, err := scanCashFlowEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cash-flow entry row: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func (r *PgxCashFlowRepository) SetPaidAt(ctx context.Context, organizationID, entryID string, paidAt *time.Time, updatedBy string, now time.Time) error {
	query := `
		UPDATE cash_flow_entries
		SET paid_at = $3, last_updated_at = $4, last_updated_by = $5
		WHERE entry_id = $1 AND organization_id = $2 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, entryID, organizationID, paidAt, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to set payment date on entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCashFlowRepository) DeleteEntry(ctx context.Context, organizationID, entryID, deletedBy string, now time.Time) error {
	query := `
		UPDATE cash_flow_entries
		SET deleted_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE entry_id = $1 AND organization_id = $2 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, entryID, organizationID, now, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete cash-flow entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
