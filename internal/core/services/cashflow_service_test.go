package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/oficinadev/oficina_backend/internal/apperrors"
	"github.com/oficinadev/oficina_backend/internal/core/domain"
	portsrepo "github.com/oficinadev/oficina_backend/internal/core/ports/repositories"
	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
	"github.com/oficinadev/oficina_backend/internal/core/services"
	"github.com/oficinadev/oficina_backend/internal/dto"
	"github.com/oficinadev/oficina_backend/internal/utils/dateutil"
)

const (
	testOrgID  = "11111111-1111-1111-1111-111111111111"
	testUserID = "22222222-2222-2222-2222-222222222222"
)

func memberCaller() domain.Caller {
	orgID := testOrgID
	return domain.Caller{
		UserID:               testUserID,
		Role:                 domain.UserRoleUser,
		ActiveOrganizationID: &orgID,
	}
}

func adminCaller() domain.Caller {
	return domain.Caller{UserID: testUserID, Role: domain.UserRoleAdmin}
}

func mustDay(s string) time.Time {
	d, err := dateutil.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

type CashFlowServiceTestSuite struct {
	suite.Suite
	mockCashFlowRepo     *MockCashFlowRepository
	mockServiceOrderRepo *MockServiceOrderRepository
	mockPermissions      *MockPermissionSvc
	service              portssvc.CashFlowSvcFacade
}

func (suite *CashFlowServiceTestSuite) SetupTest() {
	suite.mockCashFlowRepo = new(MockCashFlowRepository)
	suite.mockServiceOrderRepo = new(MockServiceOrderRepository)
	suite.mockPermissions = new(MockPermissionSvc)
	suite.service = services.NewCashFlowService(
		suite.mockCashFlowRepo,
		suite.mockServiceOrderRepo,
		suite.mockPermissions,
	)
}

func (suite *CashFlowServiceTestSuite) allowAccess(caller domain.Caller) {
	suite.mockPermissions.On("CanAccessCashFlow", mock.Anything, caller).Return(nil)
}

func (suite *CashFlowServiceTestSuite) TestCreateEntries_SinglePayment() {
	ctx := context.Background()
	caller := memberCaller()
	suite.allowAccess(caller)

	req := dto.CreateCashFlowRequest{
		Type:        "IN",
		Description: "Troca de oleo",
		Value:       decimal.RequireFromString("150.00"),
		Date:        "2024-05-10",
	}

	var saved []domain.CashFlowEntry
	suite.mockCashFlowRepo.On("SaveEntries", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]domain.CashFlowEntry)
		}).
		Return(nil).Once()

	entries, err := suite.service.CreateEntries(ctx, caller, req)

	suite.NoError(err)
	suite.Len(entries, 1)
	suite.Equal(saved, entries)

	e := entries[0]
	suite.Equal(testOrgID, e.OrganizationID)
	suite.Equal(domain.EntryIn, e.Type)
	suite.Equal("Troca de oleo", e.Description)
	suite.True(decimal.RequireFromString("150.00").Equal(e.Amount))
	suite.Equal(mustDay("2024-05-10"), e.Date)
	suite.Nil(e.GroupID, "single entries carry no group")
	suite.Nil(e.InstallmentIndex)
	suite.Nil(e.PaidAt)
	suite.Equal(testUserID, e.CreatedBy)
	suite.mockCashFlowRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestCreateEntries_InstallmentSchedule() {
	ctx := context.Background()
	caller := memberCaller()
	suite.allowAccess(caller)

	req := dto.CreateCashFlowRequest{
		Type:              "OUT",
		Description:       "Compressor",
		Value:             decimal.RequireFromString("300.00"),
		InstallmentsCount: 3,
		FirstDueDate:      "2024-01-31",
	}

	var saved []domain.CashFlowEntry
	suite.mockCashFlowRepo.On("SaveEntries", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]domain.CashFlowEntry)
		}).
		Return(nil).Once()

	entries, err := suite.service.CreateEntries(ctx, caller, req)

	suite.NoError(err)
	suite.Len(entries, 3)
	suite.Equal(saved, entries)

	// Month-end anchors clip to shorter months instead of spilling over.
	wantDates := []string{"2024-01-31", "2024-02-29", "2024-03-31"}
	wantDescriptions := []string{"Compressor (1/3)", "Compressor (2/3)", "Compressor (3/3)"}
	for i, e := range entries {
		suite.Equal(wantDates[i], dateutil.FormatDay(e.Date))
		suite.Equal(wantDescriptions[i], e.Description)
		suite.True(decimal.RequireFromString("100.00").Equal(e.Amount), "installment %d: got %s", i+1, e.Amount)
		suite.Require().NotNil(e.GroupID)
		suite.Require().NotNil(e.InstallmentIndex)
		suite.Equal(*entries[0].GroupID, *e.GroupID, "installments share one group")
		suite.Equal(i+1, *e.InstallmentIndex)
	}
	suite.mockCashFlowRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestCreateEntries_UnfinishedServiceOrder() {
	ctx := context.Background()
	caller := memberCaller()
	suite.allowAccess(caller)

	orderID := "33333333-3333-3333-3333-333333333333"
	suite.mockServiceOrderRepo.On("FindServiceOrderByID", ctx, testOrgID, orderID).
		Return(&domain.ServiceOrder{ServiceOrderID: orderID, Status: domain.ServiceOrderInProgress}, nil).Once()

	req := dto.CreateCashFlowRequest{
		Type:           "IN",
		Description:    "Servico completo",
		Value:          decimal.RequireFromString("500.00"),
		ServiceOrderID: &orderID,
	}

	_, err := suite.service.CreateEntries(ctx, caller, req)

	suite.ErrorIs(err, apperrors.ErrBusinessRule)
	suite.mockCashFlowRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything)
	suite.mockServiceOrderRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestCreateEntries_FinishedServiceOrderLinks() {
	ctx := context.Background()
	caller := memberCaller()
	suite.allowAccess(caller)

	orderID := "33333333-3333-3333-3333-333333333333"
	suite.mockServiceOrderRepo.On("FindServiceOrderByID", ctx, testOrgID, orderID).
		Return(&domain.ServiceOrder{ServiceOrderID: orderID, Status: domain.ServiceOrderFinished}, nil).Once()
	suite.mockCashFlowRepo.On("SaveEntries", ctx, mock.Anything).Return(nil).Once()

	req := dto.CreateCashFlowRequest{
		Type:           "IN",
		Description:    "Servico completo",
		Value:          decimal.RequireFromString("500.00"),
		ServiceOrderID: &orderID,
	}

	entries, err := suite.service.CreateEntries(ctx, caller, req)

	suite.NoError(err)
	suite.Require().Len(entries, 1)
	suite.Require().NotNil(entries[0].ServiceOrderID)
	suite.Equal(orderID, *entries[0].ServiceOrderID)
}

func (suite *CashFlowServiceTestSuite) TestCreateEntries_PermissionDenied() {
	ctx := context.Background()
	caller := memberCaller()
	suite.mockPermissions.On("CanAccessCashFlow", mock.Anything, caller).
		Return(apperrors.ErrForbidden).Once()

	req := dto.CreateCashFlowRequest{
		Type:        "IN",
		Description: "x",
		Value:       decimal.RequireFromString("10.00"),
	}

	_, err := suite.service.CreateEntries(ctx, caller, req)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCashFlowRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything)
}

func (suite *CashFlowServiceTestSuite) TestCreateEntries_Validation() {
	ctx := context.Background()
	caller := memberCaller()
	suite.allowAccess(caller)

	tests := []struct {
		name string
		req  dto.CreateCashFlowRequest
	}{
		{"non-positive value", dto.CreateCashFlowRequest{Type: "IN", Description: "x", Value: decimal.Zero}},
		{"negative value", dto.CreateCashFlowRequest{Type: "OUT", Description: "x", Value: decimal.RequireFromString("-5")}},
		{"too many installments", dto.CreateCashFlowRequest{Type: "IN", Description: "x", Value: decimal.RequireFromString("10"), InstallmentsCount: 25}},
		{"unknown type", dto.CreateCashFlowRequest{Type: "TRANSFER", Description: "x", Value: decimal.RequireFromString("10")}},
		{"bad date", dto.CreateCashFlowRequest{Type: "IN", Description: "x", Value: decimal.RequireFromString("10"), Date: "10/05/2024"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateEntries(ctx, caller, tt.req)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockCashFlowRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything)
}

func (suite *CashFlowServiceTestSuite) TestCreateEntries_NoActiveOrganization() {
	ctx := context.Background()
	caller := domain.Caller{UserID: testUserID, Role: domain.UserRoleAdmin}
	suite.allowAccess(caller)

	req := dto.CreateCashFlowRequest{Type: "IN", Description: "x", Value: decimal.RequireFromString("10")}

	_, err := suite.service.CreateEntries(ctx, caller, req)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *CashFlowServiceTestSuite) TestListEntries_TabAndQuery() {
	ctx := context.Background()
	caller := memberCaller()
	suite.allowAccess(caller)

	clientID := "44444444-4444-4444-4444-444444444444"
	expected := []domain.CashFlowEntry{{EntryID: "e1"}, {EntryID: "e2"}}

	var gotFilter domain.EntryFilter
	var gotQuery portsrepo.ListEntriesQuery
	suite.mockCashFlowRepo.On("ListEntries", ctx, testOrgID, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			gotFilter = args.Get(2).(domain.EntryFilter)
			gotQuery = args.Get(3).(portsrepo.ListEntriesQuery)
		}).
		Return(expected, nil).Once()

	entries, err := suite.service.ListEntries(ctx, caller, dto.ListCashFlowRequest{
		Tab:      "receivable",
		DateFrom: "2024-01-01",
		DateTo:   "2024-01-31",
		ClientID: clientID,
	})

	suite.NoError(err)
	suite.Equal(expected, entries)

	suite.Require().NotNil(gotFilter.Type)
	suite.Equal(domain.EntryIn, *gotFilter.Type)
	suite.Equal(domain.UnpaidOnly, gotFilter.Paid)
	suite.Equal(domain.ByDueDate, gotFilter.DateField)
	suite.Require().NotNil(gotQuery.DateFrom)
	suite.Require().NotNil(gotQuery.DateTo)
	suite.Equal(mustDay("2024-01-01"), *gotQuery.DateFrom)
	suite.Equal(mustDay("2024-01-31"), *gotQuery.DateTo)
	suite.Require().NotNil(gotQuery.ClientID)
	suite.Equal(clientID, *gotQuery.ClientID)
}

func (suite *CashFlowServiceTestSuite) TestListEntries_DefaultsToAllTab() {
	ctx := context.Background()
	caller := memberCaller()
	suite.allowAccess(caller)

	var gotFilter domain.EntryFilter
	suite.mockCashFlowRepo.On("ListEntries", ctx, testOrgID, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			gotFilter = args.Get(2).(domain.EntryFilter)
		}).
		Return(nil, nil).Once()

	entries, err := suite.service.ListEntries(ctx, caller, dto.ListCashFlowRequest{})

	suite.NoError(err)
	suite.NotNil(entries, "a nil repository result reads as an empty list")
	suite.Empty(entries)
	suite.Nil(gotFilter.Type)
	suite.Equal(domain.PaidAny, gotFilter.Paid)
	suite.Nil(gotFilter.MinDate)
}

func (suite *CashFlowServiceTestSuite) TestListEntries_InvalidTab() {
	ctx := context.Background()
	caller := memberCaller()
	suite.allowAccess(caller)

	_, err := suite.service.ListEntries(ctx, caller, dto.ListCashFlowRequest{Tab: "everything"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCashFlowRepo.AssertNotCalled(suite.T(), "ListEntries", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CashFlowServiceTestSuite) TestSetPaidAt_SetsDate() {
	ctx := context.Background()
	caller := memberCaller()
	suite.allowAccess(caller)

	entryID := "55555555-5555-5555-5555-555555555555"
	paidDate := mustDay("2024-06-01")
	suite.mockCashFlowRepo.On("SetPaidAt", ctx, testOrgID, entryID, &paidDate, testUserID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.SetPaidAt(ctx, caller, entryID, "2024-06-01")

	suite.NoError(err)
	suite.mockCashFlowRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestSetPaidAt_ClearsDate() {
	ctx := context.Background()
	caller := memberCaller()
	suite.allowAccess(caller)

	entryID := "55555555-5555-5555-5555-555555555555"
	suite.mockCashFlowRepo.On("SetPaidAt", ctx, testOrgID, entryID, (*time.Time)(nil), testUserID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.SetPaidAt(ctx, caller, entryID, "")

	suite.NoError(err)
	suite.mockCashFlowRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestSetPaidAt_UnknownEntry() {
	ctx := context.Background()
	caller := memberCaller()
	suite.allowAccess(caller)

	entryID := "55555555-5555-5555-5555-555555555555"
	suite.mockCashFlowRepo.On("SetPaidAt", ctx, testOrgID, entryID, (*time.Time)(nil), testUserID, mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.SetPaidAt(ctx, caller, entryID, "")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CashFlowServiceTestSuite) TestDeleteEntry() {
	ctx := context.Background()
	caller := memberCaller()
	suite.allowAccess(caller)

	entryID := "55555555-5555-5555-5555-555555555555"
	suite.mockCashFlowRepo.On("DeleteEntry", ctx, testOrgID, entryID, testUserID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.DeleteEntry(ctx, caller, entryID)

	suite.NoError(err)
	suite.mockCashFlowRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestDeleteEntry_PermissionDenied() {
	ctx := context.Background()
	caller := memberCaller()
	suite.mockPermissions.On("CanAccessCashFlow", mock.Anything, caller).
		Return(apperrors.ErrForbidden).Once()

	err := suite.service.DeleteEntry(ctx, caller, "55555555-5555-5555-5555-555555555555")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCashFlowRepo.AssertNotCalled(suite.T(), "DeleteEntry",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCashFlowServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashFlowServiceTestSuite))
}

func TestExactSplitOptionReconcilesTotal(t *testing.T) {
	mockRepo := new(MockCashFlowRepository)
	mockOrders := new(MockServiceOrderRepository)
	mockPerms := new(MockPermissionSvc)
	svc := services.NewCashFlowService(mockRepo, mockOrders, mockPerms, services.WithExactSplit(true))

	ctx := context.Background()
	caller := memberCaller()
	mockPerms.On("CanAccessCashFlow", mock.Anything, caller).Return(nil)
	mockRepo.On("SaveEntries", ctx, mock.Anything).Return(nil).Once()

	entries, err := svc.CreateEntries(ctx, caller, dto.CreateCashFlowRequest{
		Type:              "OUT",
		Description:       "Aluguel",
		Value:             decimal.RequireFromString("100.00"),
		InstallmentsCount: 3,
		FirstDueDate:      "2024-01-15",
	})

	if err != nil {
		t.Fatalf("CreateEntries: %v", err)
	}
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	if !total.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("exact split must reconcile to the total, got %s", total)
	}
	if !entries[2].Amount.Equal(decimal.RequireFromString("33.34")) {
		t.Errorf("last installment absorbs the residual, got %s", entries[2].Amount)
	}
}
