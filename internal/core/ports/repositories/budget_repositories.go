package repositories

import (
	"context"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
)

// BudgetReader defines read operations for budgets, organization-scoped.
type BudgetReader interface {
	// FindBudgetByID returns a budget with its items ordered by item_order.
	FindBudgetByID(ctx context.Context, organizationID, budgetID string) (*domain.Budget, error)

	// ListBudgets returns budgets newest-issued first, without items.
	ListBudgets(ctx context.Context, organizationID string) ([]domain.Budget, error)

	// CountBudgetsWithNumberPrefix counts budgets whose number starts with
	// prefix, used to derive the next per-day sequence number.
	CountBudgetsWithNumberPrefix(ctx context.Context, organizationID, prefix string) (int, error)
}

// BudgetWriter defines write operations for budgets.
type BudgetWriter interface {
	// SaveBudget persists the budget and all its items atomically.
	SaveBudget(ctx context.Context, budget domain.Budget) error
}

// BudgetRepositoryFacade combines all budget repository operations.
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
