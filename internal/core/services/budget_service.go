package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oficinadev/oficina_backend/internal/apperrors"
	"github.com/oficinadev/oficina_backend/internal/core/domain"
	portsrepo "github.com/oficinadev/oficina_backend/internal/core/ports/repositories"
	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
	"github.com/oficinadev/oficina_backend/internal/dto"
	"github.com/oficinadev/oficina_backend/internal/utils/dateutil"
)

// budgetService implements the BudgetSvcFacade interface.
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
	clientRepo portsrepo.ClientReader
}

// NewBudgetService creates the budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, clientRepo portsrepo.ClientReader) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: budgetRepo, clientRepo: clientRepo}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) ListBudgets(ctx context.Context, caller domain.Caller) ([]domain.Budget, error) {
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return nil, err
	}
	budgets, err := s.budgetRepo.ListBudgets(ctx, orgID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets", slog.String("organization_id", orgID))
		return nil, err
	}
	if budgets == nil {
		budgets = []domain.Budget{}
	}
	return budgets, nil
}

func (s *budgetService) GetBudgetByID(ctx context.Context, caller domain.Caller, budgetID string) (*domain.Budget, error) {
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return nil, err
	}
	return s.budgetRepo.FindBudgetByID(ctx, orgID, budgetID)
}

// CreateBudget issues a numbered budget. Line totals and the grand total are
// computed server-side from quantity and unit price.
func (s *budgetService) CreateBudget(ctx context.Context, caller domain.Caller, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	orgID, err := s.RequireOrganization(caller)
	if err != nil {
		return nil, err
	}

	if _, err := s.clientRepo.FindClientByID(ctx, orgID, req.ClientID); err != nil {
		return nil, err
	}
	for _, item := range req.Items {
		if item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit price cannot be negative", apperrors.ErrValidation)
		}
	}

	now := time.Now()
	number, err := s.nextNumber(ctx, orgID, now)
	if err != nil {
		return nil, err
	}

	budget := domain.Budget{
		BudgetID:       uuid.NewString(),
		OrganizationID: orgID,
		Number:         number,
		ClientID:       req.ClientID,
		ServiceOrderID: req.ServiceOrderID,
		Notes:          req.Notes,
		IssuedAt:       now,
		TotalAmount:    decimal.Zero,
		AuditFields:    domain.NewAuditFields(caller.UserID, now),
	}
	for i, item := range req.Items {
		total := item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)).Round(2)
		budget.Items = append(budget.Items, domain.BudgetItem{
			BudgetItemID:  uuid.NewString(),
			BudgetID:      budget.BudgetID,
			ItemOrder:     i + 1,
			Description:   item.Description,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			TotalPrice:    total,
			ServiceItemID: item.ServiceItemID,
		})
		budget.TotalAmount = budget.TotalAmount.Add(total)
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget", slog.String("organization_id", orgID))
		return nil, err
	}
	s.LogInfo(ctx, "Budget issued",
		slog.String("budget_id", budget.BudgetID),
		slog.String("number", budget.Number))
	return &budget, nil
}

// nextNumber derives the ORC-YYYYMMDD-XXXX number, XXXX being a per-day
// sequence within the organization.
func (s *budgetService) nextNumber(ctx context.Context, orgID string, now time.Time) (string, error) {
	prefix := fmt.Sprintf("ORC-%s-", dateutil.Truncate(now).Format("20060102"))
	count, err := s.budgetRepo.CountBudgetsWithNumberPrefix(ctx, orgID, prefix)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%04d", prefix, count+1), nil
}
