package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/oficinadev/oficina_backend/internal/apperrors"
	"github.com/oficinadev/oficina_backend/internal/core/domain"
	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
	"github.com/oficinadev/oficina_backend/internal/core/services"
	"github.com/oficinadev/oficina_backend/internal/dto"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo *MockBudgetRepository
	mockClientRepo *MockClientRepository
	service        portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockClientRepo)
}

const testClientID = "44444444-4444-4444-4444-444444444444"

func todayPrefix() string {
	return fmt.Sprintf("ORC-%s-", time.Now().UTC().Format("20060102"))
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_NumbersAndTotals() {
	ctx := context.Background()
	caller := memberCaller()
	prefix := todayPrefix()

	suite.mockClientRepo.On("FindClientByID", ctx, testOrgID, testClientID).
		Return(&domain.Client{ClientID: testClientID}, nil).Once()
	suite.mockBudgetRepo.On("CountBudgetsWithNumberPrefix", ctx, testOrgID, prefix).
		Return(2, nil).Once()

	var saved domain.Budget
	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Budget)
		}).
		Return(nil).Once()

	req := dto.CreateBudgetRequest{
		ClientID: testClientID,
		Items: []dto.BudgetItemRequest{
			{Description: "Pastilha de freio", Quantity: 2, UnitPrice: decimal.RequireFromString("89.90")},
			{Description: "Mao de obra", Quantity: 1, UnitPrice: decimal.RequireFromString("120.00")},
		},
	}

	budget, err := suite.service.CreateBudget(ctx, caller, req)

	suite.Require().NoError(err)
	suite.Equal(prefix+"0003", budget.Number, "sequence is count+1 within the day")
	suite.Equal(testOrgID, budget.OrganizationID)
	suite.Equal(testClientID, budget.ClientID)

	suite.Require().Len(budget.Items, 2)
	suite.Equal(1, budget.Items[0].ItemOrder)
	suite.Equal(2, budget.Items[1].ItemOrder)
	suite.True(decimal.RequireFromString("179.80").Equal(budget.Items[0].TotalPrice), "got %s", budget.Items[0].TotalPrice)
	suite.True(decimal.RequireFromString("120.00").Equal(budget.Items[1].TotalPrice), "got %s", budget.Items[1].TotalPrice)
	suite.True(decimal.RequireFromString("299.80").Equal(budget.TotalAmount), "got %s", budget.TotalAmount)

	suite.Equal(budget.Number, saved.Number)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_FirstOfTheDay() {
	ctx := context.Background()
	caller := memberCaller()
	prefix := todayPrefix()

	suite.mockClientRepo.On("FindClientByID", ctx, testOrgID, testClientID).
		Return(&domain.Client{ClientID: testClientID}, nil).Once()
	suite.mockBudgetRepo.On("CountBudgetsWithNumberPrefix", ctx, testOrgID, prefix).
		Return(0, nil).Once()
	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.Anything).Return(nil).Once()

	budget, err := suite.service.CreateBudget(ctx, caller, dto.CreateBudgetRequest{
		ClientID: testClientID,
		Items:    []dto.BudgetItemRequest{{Description: "Alinhamento", Quantity: 1, UnitPrice: decimal.RequireFromString("80.00")}},
	})

	suite.Require().NoError(err)
	suite.Equal(prefix+"0001", budget.Number)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_UnknownClient() {
	ctx := context.Background()
	caller := memberCaller()

	suite.mockClientRepo.On("FindClientByID", ctx, testOrgID, testClientID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateBudget(ctx, caller, dto.CreateBudgetRequest{
		ClientID: testClientID,
		Items:    []dto.BudgetItemRequest{{Description: "x", Quantity: 1, UnitPrice: decimal.RequireFromString("1.00")}},
	})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_NegativeUnitPrice() {
	ctx := context.Background()
	caller := memberCaller()

	suite.mockClientRepo.On("FindClientByID", ctx, testOrgID, testClientID).
		Return(&domain.Client{ClientID: testClientID}, nil).Once()

	_, err := suite.service.CreateBudget(ctx, caller, dto.CreateBudgetRequest{
		ClientID: testClientID,
		Items:    []dto.BudgetItemRequest{{Description: "x", Quantity: 1, UnitPrice: decimal.RequireFromString("-1.00")}},
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_NoActiveOrganization() {
	ctx := context.Background()

	_, err := suite.service.CreateBudget(ctx, adminCaller(), dto.CreateBudgetRequest{ClientID: testClientID})

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *BudgetServiceTestSuite) TestListBudgets() {
	ctx := context.Background()
	caller := memberCaller()
	expected := []domain.Budget{{BudgetID: "b1"}, {BudgetID: "b2"}}

	suite.mockBudgetRepo.On("ListBudgets", ctx, testOrgID).Return(expected, nil).Once()

	budgets, err := suite.service.ListBudgets(ctx, caller)

	suite.NoError(err)
	suite.Equal(expected, budgets)
}

func (suite *BudgetServiceTestSuite) TestListBudgets_EmptyLedger() {
	ctx := context.Background()
	caller := memberCaller()

	suite.mockBudgetRepo.On("ListBudgets", ctx, testOrgID).Return(nil, nil).Once()

	budgets, err := suite.service.ListBudgets(ctx, caller)

	suite.NoError(err)
	suite.NotNil(budgets)
	suite.Empty(budgets)
}

func (suite *BudgetServiceTestSuite) TestGetBudgetByID() {
	ctx := context.Background()
	caller := memberCaller()
	want := &domain.Budget{BudgetID: "b1", Items: []domain.BudgetItem{{BudgetItemID: "i1"}}}

	suite.mockBudgetRepo.On("FindBudgetByID", ctx, testOrgID, "b1").Return(want, nil).Once()

	got, err := suite.service.GetBudgetByID(ctx, caller, "b1")

	suite.NoError(err)
	suite.Equal(want, got)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
