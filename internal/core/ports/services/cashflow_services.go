package services

import (
	"context"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
	"github.com/oficinadev/oficina_backend/internal/dto"
)

// CashFlowReaderSvc defines read operations over the ledger.
type CashFlowReaderSvc interface {
	// ListEntries answers a dashboard tab query for the caller's active
	// organization.
	ListEntries(ctx context.Context, caller domain.Caller, req dto.ListCashFlowRequest) ([]domain.CashFlowEntry, error)
}

// CashFlowWriterSvc defines write operations over the ledger.
type CashFlowWriterSvc interface {
	// CreateEntries expands a creation request into one entry or an
	// installment batch and persists it atomically. Returns the created
	// entries in installment order.
	CreateEntries(ctx context.Context, caller domain.Caller, req dto.CreateCashFlowRequest) ([]domain.CashFlowEntry, error)

	// SetPaidAt sets or clears (empty string) the payment date of an entry.
	SetPaidAt(ctx context.Context, caller domain.Caller, entryID string, paidAt string) error

	// DeleteEntry soft-deletes an entry.
	DeleteEntry(ctx context.Context, caller domain.Caller, entryID string) error
}

// CashFlowSvcFacade combines all ledger service operations.
type CashFlowSvcFacade interface {
	CashFlowReaderSvc
	CashFlowWriterSvc
}
