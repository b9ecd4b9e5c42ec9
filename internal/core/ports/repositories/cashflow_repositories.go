package repositories

import (
	"context"
	"time"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
)

// ListEntriesQuery narrows a ledger listing beyond the tab-derived filter.
// DateFrom/DateTo intersect with any tab-implied bound and apply to the
// filter's date field. ClientID restricts to entries whose linked service
// order belongs to that client; entries with no linked order are excluded.
type ListEntriesQuery struct {
	DateFrom *time.Time
	DateTo   *time.Time
	ClientID *string
}

// CashFlowReader defines read operations over the ledger, organization-scoped.
type CashFlowReader interface {
	FindEntryByID(ctx context.Context, organizationID, entryID string) (*domain.CashFlowEntry, error)

	// ListEntries returns non-deleted entries matching the filter and query,
	// sorted descending by the filter's date field (null paid dates last).
	ListEntries(ctx context.Context, organizationID string, filter domain.EntryFilter, query ListEntriesQuery) ([]domain.CashFlowEntry, error)

	// ListEntriesByDateRange returns non-deleted entries whose field date
	// falls within [from, to] inclusive. With ByPaidDate, unpaid entries are
	// excluded. Used by the pivot summaries.
	ListEntriesByDateRange(ctx context.Context, organizationID string, field domain.DateField, from, to time.Time) ([]domain.CashFlowEntry, error)
}

// CashFlowWriter defines write operations over the ledger.
type CashFlowWriter interface {
	// SaveEntries persists a batch of entries atomically; a failure leaves
	// no partial installment group behind.
	SaveEntries(ctx context.Context, entries []domain.CashFlowEntry) error

	// SetPaidAt sets (or clears, with nil) the payment date of one entry.
	SetPaidAt(ctx context.Context, organizationID, entryID string, paidAt *time.Time, updatedBy string, now time.Time) error

	// DeleteEntry soft-deletes one entry.
	DeleteEntry(ctx context.Context, organizationID, entryID, deletedBy string, now time.Time) error
}

// CashFlowRepositoryFacade combines all ledger repository operations.
type CashFlowRepositoryFacade interface {
	CashFlowReader
	CashFlowWriter
}
