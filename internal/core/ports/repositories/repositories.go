// Package repositories defines the persistence ports of the application core.
package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines operations for managing database transactions.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// RepositoryProvider bundles all repository facades for service wiring.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	OrganizationRepo OrganizationRepositoryFacade
	MemberRepo       MemberRepositoryFacade
	SessionRepo      SessionRepositoryFacade
	ClientRepo       ClientRepositoryFacade
	ServiceOrderRepo ServiceOrderRepositoryFacade
	ServiceItemRepo  ServiceItemRepositoryFacade
	BudgetRepo       BudgetRepositoryFacade
	CashFlowRepo     CashFlowRepositoryFacade
}
