// Package services implements the application services behind the ports in
// internal/core/ports/services.
package services

import (
	portsrepo "github.com/oficinadev/oficina_backend/internal/core/ports/repositories"
	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
	"github.com/oficinadev/oficina_backend/internal/platform/config"
)

// NewServiceContainer wires every application service over the repository
// provider.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	permissionSource, err := NewPermissionSource(cfg, repos.MemberRepo)
	if err != nil {
		return nil, err
	}
	permissionSvc := NewPermissionService(permissionSource)

	return &portssvc.ServiceContainer{
		Auth:         NewAuthService(repos.UserRepo, repos.MemberRepo, repos.SessionRepo, cfg),
		User:         NewUserService(repos.UserRepo),
		Organization: NewOrganizationService(repos.OrganizationRepo, repos.MemberRepo, repos.UserRepo),
		Client:       NewClientService(repos.ClientRepo),
		ServiceOrder: NewServiceOrderService(repos.ServiceOrderRepo, repos.ClientRepo),
		ServiceItem:  NewServiceItemService(repos.ServiceItemRepo),
		Budget:       NewBudgetService(repos.BudgetRepo, repos.ClientRepo),
		CashFlow: NewCashFlowService(repos.CashFlowRepo, repos.ServiceOrderRepo, permissionSvc,
			WithExactSplit(cfg.CashFlowExactSplit)),
		Reporting:  NewReportingService(repos.CashFlowRepo, permissionSvc),
		Permission: permissionSvc,
	}, nil
}
