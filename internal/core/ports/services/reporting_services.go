package services

import (
	"context"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
)

// ReportingSvcFacade produces the per-period pivot summaries of the ledger.
type ReportingSvcFacade interface {
	// SummaryByMonth aggregates by calendar month over an inclusive
	// YYYY-MM range.
	SummaryByMonth(ctx context.Context, caller domain.Caller, dateFrom, dateTo string, mode domain.SummaryMode) (*domain.CashFlowSummary, error)

	// SummaryByDay aggregates by day over an inclusive YYYY-MM-DD range.
	SummaryByDay(ctx context.Context, caller domain.Caller, dateFrom, dateTo string, mode domain.SummaryMode) (*domain.CashFlowSummary, error)
}
