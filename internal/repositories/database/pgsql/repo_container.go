package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/oficinadev/oficina_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every pgx-backed repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		OrganizationRepo: newPgxOrganizationRepository(dbPool),
		MemberRepo:       newPgxMemberRepository(dbPool),
		SessionRepo:      newPgxSessionRepository(dbPool),
		ClientRepo:       newPgxClientRepository(dbPool),
		ServiceOrderRepo: newPgxServiceOrderRepository(dbPool),
		ServiceItemRepo:  newPgxServiceItemRepository(dbPool),
		BudgetRepo:       newPgxBudgetRepository(dbPool),
		CashFlowRepo:     newPgxCashFlowRepository(dbPool),
	}
}
