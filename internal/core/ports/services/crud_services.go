package services

import (
	"context"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
	"github.com/oficinadev/oficina_backend/internal/dto"
)

// ClientSvcFacade manages the client records of an organization.
type ClientSvcFacade interface {
	ListClients(ctx context.Context, caller domain.Caller) ([]domain.Client, error)
	GetClientByID(ctx context.Context, caller domain.Caller, clientID string) (*domain.Client, error)
	CreateClient(ctx context.Context, caller domain.Caller, req dto.CreateClientRequest) (*domain.Client, error)
	UpdateClient(ctx context.Context, caller domain.Caller, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)
	DeleteClient(ctx context.Context, caller domain.Caller, clientID string) error
}

// ServiceOrderSvcFacade manages service orders and their status machine.
type ServiceOrderSvcFacade interface {
	ListServiceOrders(ctx context.Context, caller domain.Caller, status *domain.ServiceOrderStatus) ([]domain.ServiceOrder, error)
	GetServiceOrderByID(ctx context.Context, caller domain.Caller, serviceOrderID string) (*domain.ServiceOrder, error)
	CreateServiceOrder(ctx context.Context, caller domain.Caller, req dto.CreateServiceOrderRequest) (*domain.ServiceOrder, error)
	UpdateServiceOrder(ctx context.Context, caller domain.Caller, serviceOrderID string, req dto.UpdateServiceOrderRequest) (*domain.ServiceOrder, error)
}

// ServiceItemSvcFacade manages the service/part catalog.
type ServiceItemSvcFacade interface {
	ListServiceItems(ctx context.Context, caller domain.Caller, activeOnly bool) ([]domain.ServiceItem, error)
	GetServiceItemByID(ctx context.Context, caller domain.Caller, serviceItemID string) (*domain.ServiceItem, error)
	CreateServiceItem(ctx context.Context, caller domain.Caller, req dto.CreateServiceItemRequest) (*domain.ServiceItem, error)
	UpdateServiceItem(ctx context.Context, caller domain.Caller, serviceItemID string, req dto.UpdateServiceItemRequest) (*domain.ServiceItem, error)
	DeleteServiceItem(ctx context.Context, caller domain.Caller, serviceItemID string) error
}

// BudgetSvcFacade manages budgets/quotes.
type BudgetSvcFacade interface {
	ListBudgets(ctx context.Context, caller domain.Caller) ([]domain.Budget, error)
	GetBudgetByID(ctx context.Context, caller domain.Caller, budgetID string) (*domain.Budget, error)
	CreateBudget(ctx context.Context, caller domain.Caller, req dto.CreateBudgetRequest) (*domain.Budget, error)
}

// OrganizationSvcFacade manages tenants and their memberships.
type OrganizationSvcFacade interface {
	ListOrganizations(ctx context.Context, caller domain.Caller) ([]domain.Organization, error)
	GetOrganizationByID(ctx context.Context, caller domain.Caller, organizationID string) (*domain.Organization, []domain.Member, error)
	CreateOrganization(ctx context.Context, caller domain.Caller, req dto.CreateOrganizationRequest) (*domain.Organization, error)
	UpdateOrganization(ctx context.Context, caller domain.Caller, organizationID string, req dto.UpdateOrganizationRequest) (*domain.Organization, error)
	DeleteOrganization(ctx context.Context, caller domain.Caller, organizationID string) error
	AddMember(ctx context.Context, caller domain.Caller, organizationID string, req dto.AddMemberRequest) (*domain.Member, error)
	UpdateMember(ctx context.Context, caller domain.Caller, organizationID, memberID string, req dto.UpdateMemberRequest) error
	RemoveMember(ctx context.Context, caller domain.Caller, organizationID, memberID string) error
}

// UserSvcFacade manages global user identities.
type UserSvcFacade interface {
	ListUsers(ctx context.Context, caller domain.Caller) ([]domain.User, error)
	GetUserByID(ctx context.Context, caller domain.Caller, userID string) (*domain.User, error)
	CreateUser(ctx context.Context, caller domain.Caller, req dto.CreateUserRequest) (*domain.User, error)
	UpdateUser(ctx context.Context, caller domain.Caller, userID string, req dto.UpdateUserRequest) (*domain.User, error)
	SetBanned(ctx context.Context, caller domain.Caller, userID string, banned bool) error
	DeleteUser(ctx context.Context, caller domain.Caller, userID string) error
}
