// Package services defines the application-service ports consumed by the
// HTTP handlers.
package services

// ServiceContainer holds instances of all the application services. It is the
// entry point used by the handlers.
type ServiceContainer struct {
	Auth         AuthSvcFacade
	User         UserSvcFacade
	Organization OrganizationSvcFacade
	Client       ClientSvcFacade
	ServiceOrder ServiceOrderSvcFacade
	ServiceItem  ServiceItemSvcFacade
	Budget       BudgetSvcFacade
	CashFlow     CashFlowSvcFacade
	Reporting    ReportingSvcFacade
	Permission   PermissionSvc
}
