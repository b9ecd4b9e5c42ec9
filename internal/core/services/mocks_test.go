package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
	portsrepo "github.com/oficinadev/oficina_backend/internal/core/ports/repositories"
	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
)

// MockPermissionSvc mocks the permission evaluator.
type MockPermissionSvc struct {
	mock.Mock
}

var _ portssvc.PermissionSvc = (*MockPermissionSvc)(nil)

func (m *MockPermissionSvc) CanAccessCashFlow(ctx context.Context, caller domain.Caller) error {
	args := m.Called(ctx, caller)
	return args.Error(0)
}

// MockPermissionSource mocks the membership source behind the evaluator.
type MockPermissionSource struct {
	mock.Mock
}

var _ portssvc.PermissionSource = (*MockPermissionSource)(nil)

func (m *MockPermissionSource) MembershipFor(ctx context.Context, userID, organizationID string) (*domain.Member, error) {
	args := m.Called(ctx, userID, organizationID)
	if member, ok := args.Get(0).(*domain.Member); ok {
		return member, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockCashFlowRepository mocks the ledger repository.
type MockCashFlowRepository struct {
	mock.Mock
}

var _ portsrepo.CashFlowRepositoryFacade = (*MockCashFlowRepository)(nil)

func (m *MockCashFlowRepository) FindEntryByID(ctx context.Context, organizationID, entryID string) (*domain.CashFlowEntry, error) {
	args := m.Called(ctx, organizationID, entryID)
	if entry, ok := args.Get(0).(*domain.CashFlowEntry); ok {
		return entry, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCashFlowRepository) ListEntries(ctx context.Context, organizationID string, filter domain.EntryFilter, query portsrepo.ListEntriesQuery) ([]domain.CashFlowEntry, error) {
	args := m.Called(ctx, organizationID, filter, query)
	if entries, ok := args.Get(0).([]domain.CashFlowEntry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCashFlowRepository) ListEntriesByDateRange(ctx context.Context, organizationID string, field domain.DateField, from, to time.Time) ([]domain.CashFlowEntry, error) {
	args := m.Called(ctx, organizationID, field, from, to)
	if entries, ok := args.Get(0).([]domain.CashFlowEntry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCashFlowRepository) SaveEntries(ctx context.Context, entries []domain.CashFlowEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockCashFlowRepository) SetPaidAt(ctx context.Context, organizationID, entryID string, paidAt *time.Time, updatedBy string, now time.Time) error {
	args := m.Called(ctx, organizationID, entryID, paidAt, updatedBy, now)
	return args.Error(0)
}

func (m *MockCashFlowRepository) DeleteEntry(ctx context.Context, organizationID, entryID, deletedBy string, now time.Time) error {
	args := m.Called(ctx, organizationID, entryID, deletedBy, now)
	return args.Error(0)
}

// MockServiceOrderRepository mocks the service-order repository.
type MockServiceOrderRepository struct {
	mock.Mock
}

var _ portsrepo.ServiceOrderRepositoryFacade = (*MockServiceOrderRepository)(nil)

func (m *MockServiceOrderRepository) FindServiceOrderByID(ctx context.Context, organizationID, serviceOrderID string) (*domain.ServiceOrder, error) {
	args := m.Called(ctx, organizationID, serviceOrderID)
	if order, ok := args.Get(0).(*domain.ServiceOrder); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockServiceOrderRepository) ListServiceOrders(ctx context.Context, organizationID string, status *domain.ServiceOrderStatus) ([]domain.ServiceOrder, error) {
	args := m.Called(ctx, organizationID, status)
	if orders, ok := args.Get(0).([]domain.ServiceOrder); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockServiceOrderRepository) SaveServiceOrder(ctx context.Context, order domain.ServiceOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockServiceOrderRepository) UpdateServiceOrder(ctx context.Context, order domain.ServiceOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// MockUserRepository mocks the user repository.
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]domain.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetBanned(ctx context.Context, userID string, banned bool, updatedBy string, now time.Time) error {
	args := m.Called(ctx, userID, banned, updatedBy, now)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string, deletedBy string, now time.Time) error {
	args := m.Called(ctx, userID, deletedBy, now)
	return args.Error(0)
}

// MockMemberRepository mocks the membership repository.
type MockMemberRepository struct {
	mock.Mock
}

var _ portsrepo.MemberRepositoryFacade = (*MockMemberRepository)(nil)

func (m *MockMemberRepository) FindMember(ctx context.Context, userID, organizationID string) (*domain.Member, error) {
	args := m.Called(ctx, userID, organizationID)
	if member, ok := args.Get(0).(*domain.Member); ok {
		return member, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMemberRepository) ListMembersByOrganization(ctx context.Context, organizationID string) ([]domain.Member, error) {
	args := m.Called(ctx, organizationID)
	if members, ok := args.Get(0).([]domain.Member); ok {
		return members, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMemberRepository) ListMembershipsByUser(ctx context.Context, userID string) ([]domain.Member, error) {
	args := m.Called(ctx, userID)
	if members, ok := args.Get(0).([]domain.Member); ok {
		return members, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMemberRepository) AddMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) UpdateMemberRole(ctx context.Context, memberID string, role domain.MemberRole) error {
	args := m.Called(ctx, memberID, role)
	return args.Error(0)
}

func (m *MockMemberRepository) SetExtraRoles(ctx context.Context, memberID string, roles []string) error {
	args := m.Called(ctx, memberID, roles)
	return args.Error(0)
}

func (m *MockMemberRepository) RemoveMember(ctx context.Context, memberID string) error {
	args := m.Called(ctx, memberID)
	return args.Error(0)
}

// MockSessionRepository mocks the session repository.
type MockSessionRepository struct {
	mock.Mock
}

var _ portsrepo.SessionRepositoryFacade = (*MockSessionRepository)(nil)

func (m *MockSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if session, ok := args.Get(0).(*domain.Session); ok {
		return session, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionRepository) SetActiveOrganization(ctx context.Context, sessionID string, organizationID *string) error {
	args := m.Called(ctx, sessionID, organizationID)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// MockOrganizationRepository mocks the organization repository.
type MockOrganizationRepository struct {
	mock.Mock
}

var _ portsrepo.OrganizationRepositoryFacade = (*MockOrganizationRepository)(nil)

func (m *MockOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID)
	if org, ok := args.Get(0).(*domain.Organization); ok {
		return org, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrganizationRepository) FindOrganizationBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	args := m.Called(ctx, slug)
	if org, ok := args.Get(0).(*domain.Organization); ok {
		return org, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrganizationRepository) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	args := m.Called(ctx)
	if orgs, ok := args.Get(0).([]domain.Organization); ok {
		return orgs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrganizationRepository) ListOrganizationsByIDs(ctx context.Context, organizationIDs []string) ([]domain.Organization, error) {
	args := m.Called(ctx, organizationIDs)
	if orgs, ok := args.Get(0).([]domain.Organization); ok {
		return orgs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) UpdateOrganization(ctx context.Context, org domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) DeleteOrganization(ctx context.Context, organizationID string) error {
	args := m.Called(ctx, organizationID)
	return args.Error(0)
}

// MockClientRepository mocks the client repository.
type MockClientRepository struct {
	mock.Mock
}

var _ portsrepo.ClientRepositoryFacade = (*MockClientRepository)(nil)

func (m *MockClientRepository) FindClientByID(ctx context.Context, organizationID, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, organizationID, clientID)
	if client, ok := args.Get(0).(*domain.Client); ok {
		return client, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, organizationID string) ([]domain.Client, error) {
	args := m.Called(ctx, organizationID)
	if clients, ok := args.Get(0).([]domain.Client); ok {
		return clients, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, organizationID, clientID, deletedBy string, now time.Time) error {
	args := m.Called(ctx, organizationID, clientID, deletedBy, now)
	return args.Error(0)
}

// MockBudgetRepository mocks the budget repository.
type MockBudgetRepository struct {
	mock.Mock
}

var _ portsrepo.BudgetRepositoryFacade = (*MockBudgetRepository)(nil)

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, organizationID, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, organizationID, budgetID)
	if budget, ok := args.Get(0).(*domain.Budget); ok {
		return budget, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context, organizationID string) ([]domain.Budget, error) {
	args := m.Called(ctx, organizationID)
	if budgets, ok := args.Get(0).([]domain.Budget); ok {
		return budgets, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBudgetRepository) CountBudgetsWithNumberPrefix(ctx context.Context, organizationID, prefix string) (int, error) {
	args := m.Called(ctx, organizationID, prefix)
	return args.Int(0), args.Error(1)
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}
