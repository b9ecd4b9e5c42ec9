package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oficinadev/oficina_backend/internal/apperrors"
	"github.com/oficinadev/oficina_backend/internal/core/domain"
	portsrepo "github.com/oficinadev/oficina_backend/internal/core/ports/repositories"
	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
	"github.com/oficinadev/oficina_backend/internal/dto"
	"github.com/oficinadev/oficina_backend/internal/utils/accounting"
	"github.com/oficinadev/oficina_backend/internal/utils/dateutil"
)

const maxInstallments = 24

// cashFlowService implements the CashFlowSvcFacade interface.
type cashFlowService struct {
	BaseService
	cashFlowRepo     portsrepo.CashFlowRepositoryFacade
	serviceOrderRepo portsrepo.ServiceOrderReader
	permissions      portssvc.PermissionSvc
	exactSplit       bool
}

// CashFlowServiceOption is a functional option for the cash-flow service.
type CashFlowServiceOption func(*cashFlowService)

// WithExactSplit makes installment amounts reconcile exactly to the requested
// total, the last installment absorbing the rounding residual.
func WithExactSplit(exact bool) CashFlowServiceOption {
	return func(s *cashFlowService) {
		s.exactSplit = exact
	}
}

// NewCashFlowService creates the ledger service. Every operation is gated by
// the permission evaluator before touching the repository.
func NewCashFlowService(
	cashFlowRepo portsrepo.CashFlowRepositoryFacade,
	serviceOrderRepo portsrepo.ServiceOrderReader,
	permissions portssvc.PermissionSvc,
	options ...CashFlowServiceOption,
) portssvc.CashFlowSvcFacade {
	svc := &cashFlowService{
		cashFlowRepo:     cashFlowRepo,
		serviceOrderRepo: serviceOrderRepo,
		permissions:      permissions,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CashFlowSvcFacade = (*cashFlowService)(nil)

// ListEntries answers a dashboard tab query for the caller's organization.
func (s *cashFlowService) ListEntries(ctx context.Context, caller domain.Caller, req dto.ListCashFlowRequest) ([]domain.CashFlowEntry, error) {
	if err := s.permissions.CanAccessCashFlow(ctx, caller); err != nil {
		return nil, err
	}
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return nil, err
	}

	tab := domain.TabAll
	if req.Tab != "" {
		if tab, err = domain.ParseViewTab(req.Tab); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}
	filter := tab.Filter(dateutil.Today())

	var query portsrepo.ListEntriesQuery
	if req.DateFrom != "" {
		from, err := dateutil.ParseDay(req.DateFrom)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query.DateFrom = &from
	}
	if req.DateTo != "" {
		to, err := dateutil.ParseDay(req.DateTo)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query.DateTo = &to
	}
	if req.ClientID != "" {
		query.ClientID = &req.ClientID
	}

	entries, err := s.cashFlowRepo.ListEntries(ctx, orgID, filter, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash-flow entries",
			slog.String("organization_id", orgID), slog.String("tab", string(tab)))
		return nil, err
	}
	if entries == nil {
		entries = []domain.CashFlowEntry{}
	}
	return entries, nil
}

// CreateEntries expands a creation request into one dated entry or an
// installment batch and persists it atomically.
func (s *cashFlowService) CreateEntries(ctx context.Context, caller domain.Caller, req dto.CreateCashFlowRequest) ([]domain.CashFlowEntry, error) {
	if err := s.permissions.CanAccessCashFlow(ctx, caller); err != nil {
		return nil, err
	}
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return nil, err
	}

	entryType, err := domain.ParseEntryType(req.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if !req.Value.IsPositive() {
		return nil, fmt.Errorf("%w: value must be positive", apperrors.ErrValidation)
	}
	count := req.InstallmentsCount
	if count == 0 {
		count = 1
	}
	if count < 1 || count > maxInstallments {
		return nil, fmt.Errorf("%w: installments count must be between 1 and %d", apperrors.ErrValidation, maxInstallments)
	}

	// Linking to a service order requires it to exist in this organization
	// and to have reached its terminal state.
	if req.ServiceOrderID != nil {
		order, err := s.serviceOrderRepo.FindServiceOrderByID(ctx, orgID, *req.ServiceOrderID)
		if err != nil {
			return nil, err
		}
		if !order.Finished() {
			return nil, fmt.Errorf("%w: only finished service orders may be linked to a cash-flow entry", apperrors.ErrBusinessRule)
		}
	}

	firstDueDate, err := s.resolveFirstDueDate(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	amounts := accounting.SplitInstallments(req.Value, count, s.exactSplit)
	entries := make([]domain.CashFlowEntry, count)

	var groupID *string
	if count > 1 {
		id := uuid.NewString()
		groupID = &id
	}

	for i := 0; i < count; i++ {
		entry := domain.CashFlowEntry{
			EntryID:        uuid.NewString(),
			OrganizationID: orgID,
			Type:           entryType,
			Description:    req.Description,
			Amount:         amounts[i],
			Date:           dateutil.AddMonths(firstDueDate, i),
			ServiceOrderID: req.ServiceOrderID,
			AuditFields:    domain.NewAuditFields(caller.UserID, now),
		}
		if groupID != nil {
			index := i + 1
			entry.GroupID = groupID
			entry.InstallmentIndex = &index
			entry.Description = fmt.Sprintf("%s (%d/%d)", req.Description, index, count)
		}
		entries[i] = entry
	}

	if err := s.cashFlowRepo.SaveEntries(ctx, entries); err != nil {
		s.LogError(ctx, err, "Failed to save cash-flow entries",
			slog.String("organization_id", orgID), slog.Int("count", count))
		return nil, err
	}

	s.LogInfo(ctx, "Cash-flow entries created",
		slog.String("organization_id", orgID),
		slog.String("type", string(entryType)),
		slog.Int("installments", count))
	return entries, nil
}

// resolveFirstDueDate picks the schedule anchor: the explicit date for single
// entries, then the first due date, then today.
func (s *cashFlowService) resolveFirstDueDate(req dto.CreateCashFlowRequest) (time.Time, error) {
	if req.Date != "" {
		d, err := dateutil.ParseDay(req.Date)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		return d, nil
	}
	if req.FirstDueDate != "" {
		d, err := dateutil.ParseDay(req.FirstDueDate)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		return d, nil
	}
	return dateutil.Today(), nil
}

// SetPaidAt sets or clears the payment date of one entry in the caller's
// organization.
func (s *cashFlowService) SetPaidAt(ctx context.Context, caller domain.Caller, entryID string, paidAt string) error {
	if err := s.permissions.CanAccessCashFlow(ctx, caller); err != nil {
		return err
	}
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return err
	}

	var paidDate *time.Time
	if paidAt != "" {
		d, err := dateutil.ParseDay(paidAt)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		paidDate = &d
	}

	if err := s.cashFlowRepo.SetPaidAt(ctx, orgID, entryID, paidDate, caller.UserID, time.Now()); err != nil {
		return err
	}
	s.LogInfo(ctx, "Cash-flow entry payment date updated",
		slog.String("entry_id", entryID), slog.Bool("cleared", paidDate == nil))
	return nil
}

// DeleteEntry soft-deletes one entry in the caller's organization.
func (s *cashFlowService) DeleteEntry(ctx context.Context, caller domain.Caller, entryID string) error {
	if err := s.permissions.CanAccessCashFlow(ctx, caller); err != nil {
		return err
	}
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return err
	}
	if err := s.cashFlowRepo.DeleteEntry(ctx, orgID, entryID, caller.UserID, time.Now()); err != nil {
		return err
	}
	s.LogInfo(ctx, "Cash-flow entry deleted", slog.String("entry_id", entryID))
	return nil
}
