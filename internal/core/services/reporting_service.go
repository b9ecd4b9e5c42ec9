package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oficinadev/oficina_backend/internal/apperrors"
	"github.com/oficinadev/oficina_backend/internal/core/domain"
	portsrepo "github.com/oficinadev/oficina_backend/internal/core/ports/repositories"
	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
	"github.com/oficinadev/oficina_backend/internal/utils/dateutil"
)

// reportingService implements the ReportingSvcFacade interface.
type reportingService struct {
	BaseService
	cashFlowRepo portsrepo.CashFlowReader
	permissions  portssvc.PermissionSvc
}

// NewReportingService creates the pivot-summary service.
func NewReportingService(cashFlowRepo portsrepo.CashFlowReader, permissions portssvc.PermissionSvc) portssvc.ReportingSvcFacade {
	return &reportingService{cashFlowRepo: cashFlowRepo, permissions: permissions}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// SummaryByMonth aggregates the ledger by calendar month over an inclusive
// YYYY-MM range.
func (s *reportingService) SummaryByMonth(ctx context.Context, caller domain.Caller, dateFrom, dateTo string, mode domain.SummaryMode) (*domain.CashFlowSummary, error) {
	from, err := dateutil.ParseMonth(dateFrom)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	to, err := dateutil.ParseMonth(dateTo)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return s.summarize(ctx, caller, from, dateutil.EndOfMonth(to), mode, dateutil.Monthly)
}

// SummaryByDay aggregates the ledger by day over an inclusive YYYY-MM-DD
// range.
func (s *reportingService) SummaryByDay(ctx context.Context, caller domain.Caller, dateFrom, dateTo string, mode domain.SummaryMode) (*domain.CashFlowSummary, error) {
	from, err := dateutil.ParseDay(dateFrom)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	to, err := dateutil.ParseDay(dateTo)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return s.summarize(ctx, caller, from, to, mode, dateutil.Daily)
}

// summarize buckets the organization's entries by period key over the
// reference date of the mode, zero-fills the whole span and derives the
// running balances in one left-to-right scan.
func (s *reportingService) summarize(ctx context.Context, caller domain.Caller, from, to time.Time, mode domain.SummaryMode, granularity dateutil.Granularity) (*domain.CashFlowSummary, error) {
	if err := s.permissions.CanAccessCashFlow(ctx, caller); err != nil {
		return nil, err
	}
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: date range end precedes start", apperrors.ErrValidation)
	}

	field := mode.DateField()
	entries, err := s.cashFlowRepo.ListEntriesByDateRange(ctx, orgID, field, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for summary",
			slog.String("organization_id", orgID), slog.String("mode", string(mode)))
		return nil, err
	}

	periods := dateutil.PeriodKeys(from, to, granularity)
	index := make(map[string]int, len(periods))
	for i, p := range periods {
		index[p] = i
	}

	receipts := zeroFilled(len(periods))
	payments := zeroFilled(len(periods))

	for i := range entries {
		e := &entries[i]
		ref := e.Date
		if field == domain.ByPaidDate {
			if e.PaidAt == nil {
				continue // realized mode only counts entries that actually moved
			}
			ref = *e.PaidAt
		}
		bucket, ok := index[granularity.Key(ref)]
		if !ok {
			continue
		}
		if e.Type == domain.EntryIn {
			receipts[bucket] = receipts[bucket].Add(e.Amount)
		} else {
			payments[bucket] = payments[bucket].Add(e.Amount)
		}
	}

	generation := zeroFilled(len(periods))
	opening := zeroFilled(len(periods))
	closing := zeroFilled(len(periods))
	balance := decimal.Zero
	for i := range periods {
		generation[i] = receipts[i].Sub(payments[i])
		opening[i] = balance
		balance = balance.Add(generation[i])
		closing[i] = balance
	}

	return &domain.CashFlowSummary{
		Periods:        periods,
		Receipts:       receipts,
		Payments:       payments,
		CashGeneration: generation,
		OpeningBalance: opening,
		ClosingBalance: closing,
	}, nil
}

func zeroFilled(n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = decimal.Zero
	}
	return out
}
