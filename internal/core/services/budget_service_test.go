package services_test

import (
	"context"
	"testing"

	"github.com/expenseaudit/expense-audit-backend/internal/apperrors"
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/expenseaudit/expense-audit-backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo     *MockBudgetRepository
	mockDepartmentRepo *MockDepartmentRepository
	mockExpenseRepo    *MockExpenseRepository
	service            portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockDepartmentRepo = new(MockDepartmentRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockDepartmentRepo, suite.mockExpenseRepo)
}

func (suite *BudgetServiceTestSuite) TestWouldExceed_UnderCeiling() {
	ctx := context.Background()
	deptID := uuid.NewString()
	budget := &domain.Budget{
		BudgetID:     uuid.NewString(),
		DepartmentID: deptID,
		Month:        3,
		Year:         2025,
		Amount:       decimal.NewFromInt(100000),
	}

	suite.mockBudgetRepo.On("FindBudget", ctx, deptID, 3, 2025).Return(budget, nil).Once()
	suite.mockExpenseRepo.On("SumAmountByStatus", ctx, deptID, 3, 2025, []domain.ExpenseStatus{domain.StatusApproved, domain.StatusPaid}).
		Return(decimal.NewFromInt(60000), nil).Once()

	exceeded, err := suite.service.WouldExceed(ctx, deptID, 3, 2025, decimal.NewFromInt(40000))

	suite.Require().NoError(err)
	suite.False(exceeded)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestWouldExceed_OverCeiling() {
	ctx := context.Background()
	deptID := uuid.NewString()
	budget := &domain.Budget{Amount: decimal.NewFromInt(100000), Month: 3, Year: 2025, DepartmentID: deptID}

	suite.mockBudgetRepo.On("FindBudget", ctx, deptID, 3, 2025).Return(budget, nil).Once()
	suite.mockExpenseRepo.On("SumAmountByStatus", ctx, deptID, 3, 2025, mock.Anything).
		Return(decimal.NewFromInt(60000), nil).Once()

	exceeded, err := suite.service.WouldExceed(ctx, deptID, 3, 2025, decimal.NewFromInt(40001))

	suite.Require().NoError(err)
	suite.True(exceeded)
}

// Once an amount exceeds the ceiling, every larger amount does too.
func (suite *BudgetServiceTestSuite) TestWouldExceed_MonotonicInAmount() {
	ctx := context.Background()
	deptID := uuid.NewString()
	budget := &domain.Budget{Amount: decimal.NewFromInt(100000), Month: 3, Year: 2025, DepartmentID: deptID}

	amounts := []int64{40001, 40002, 75000, 1000000}
	suite.mockBudgetRepo.On("FindBudget", ctx, deptID, 3, 2025).Return(budget, nil).Times(len(amounts))
	suite.mockExpenseRepo.On("SumAmountByStatus", ctx, deptID, 3, 2025, mock.Anything).
		Return(decimal.NewFromInt(60000), nil).Times(len(amounts))

	for _, amount := range amounts {
		exceeded, err := suite.service.WouldExceed(ctx, deptID, 3, 2025, decimal.NewFromInt(amount))
		suite.Require().NoError(err)
		suite.True(exceeded, "amount %d should exceed once 40001 does", amount)
	}
}

func (suite *BudgetServiceTestSuite) TestWouldExceed_MissingBudget() {
	ctx := context.Background()
	deptID := uuid.NewString()

	suite.mockBudgetRepo.On("FindBudget", ctx, deptID, 3, 2025).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.WouldExceed(ctx, deptID, 3, 2025, decimal.NewFromInt(10))

	suite.Require().ErrorIs(err, apperrors.ErrBudgetMissing)
}

func (suite *BudgetServiceTestSuite) TestRollover_SkipsExistingPeriods() {
	ctx := context.Background()
	departments := []domain.Department{
		{DepartmentID: "d1", Name: "Engineering", DefaultBudget: decimal.NewFromInt(500000)},
		{DepartmentID: "d2", Name: "Finance", DefaultBudget: decimal.NewFromInt(300000)},
	}

	suite.mockDepartmentRepo.On("ListDepartments", ctx).Return(departments, nil).Once()
	suite.mockBudgetRepo.On("CreateBudgetIfAbsent", ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.DepartmentID == "d1" && b.Amount.Equal(decimal.NewFromInt(500000)) && b.Month == 4 && b.Year == 2025
	})).Return(true, nil).Once()
	suite.mockBudgetRepo.On("CreateBudgetIfAbsent", ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.DepartmentID == "d2"
	})).Return(false, nil).Once()

	result, err := suite.service.Rollover(ctx, 4, 2025, "scheduler")

	suite.Require().NoError(err)
	suite.Equal(1, result.Created)
	suite.Equal(1, result.Skipped)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestRollover_InvalidMonth() {
	_, err := suite.service.Rollover(context.Background(), 13, 2025, "scheduler")
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestSetAmount_RejectsNonPositive() {
	_, err := suite.service.SetAmount(context.Background(), "d1", 4, 2025, decimal.Zero, "finance-user")
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.SetAmount(context.Background(), "d1", 4, 2025, decimal.NewFromInt(-5), "finance-user")
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestSetAmount_UpsertsAndUpdatesDefault() {
	ctx := context.Background()
	deptID := uuid.NewString()
	amount := decimal.NewFromInt(750000)
	dept := &domain.Department{DepartmentID: deptID, Name: "Engineering"}

	suite.mockDepartmentRepo.On("FindDepartmentByID", ctx, deptID).Return(dept, nil).Once()
	suite.mockBudgetRepo.On("UpsertBudget", ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.DepartmentID == deptID && b.Amount.Equal(amount) && b.Month == 5 && b.Year == 2025
	})).Return(nil).Once()
	suite.mockDepartmentRepo.On("UpdateDefaultBudget", ctx, deptID, amount, "finance-user", mock.Anything).Return(nil).Once()

	budget, err := suite.service.SetAmount(ctx, deptID, 5, 2025, amount, "finance-user")

	suite.Require().NoError(err)
	suite.True(budget.Amount.Equal(amount))
	suite.mockBudgetRepo.AssertExpectations(suite.T())
	suite.mockDepartmentRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestSummaries_ManagerSeesOwnDepartmentOnly() {
	ctx := context.Background()
	manager := &domain.User{UserID: "u1", Role: domain.RoleManager, DepartmentID: "d1"}
	dept := &domain.Department{DepartmentID: "d1", Name: "Engineering"}
	budget := &domain.Budget{DepartmentID: "d1", Month: 4, Year: 2025, Amount: decimal.NewFromInt(100000)}

	suite.mockDepartmentRepo.On("FindDepartmentByID", ctx, "d1").Return(dept, nil).Once()
	suite.mockBudgetRepo.On("FindBudget", ctx, "d1", 4, 2025).Return(budget, nil).Once()
	suite.mockExpenseRepo.On("SumAmountByStatus", ctx, "d1", 4, 2025, []domain.ExpenseStatus{domain.StatusApproved, domain.StatusPaid}).
		Return(decimal.NewFromInt(25000), nil).Once()
	suite.mockExpenseRepo.On("SumAmountByStatus", ctx, "d1", 4, 2025, []domain.ExpenseStatus{domain.StatusSubmitted}).
		Return(decimal.NewFromInt(10000), nil).Once()

	summaries, err := suite.service.Summaries(ctx, manager, 4, 2025)

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 1)
	suite.Equal("Engineering", summaries[0].Department.Name)
	suite.True(summaries[0].TotalSpent.Equal(decimal.NewFromInt(25000)))
	suite.True(summaries[0].TotalPending.Equal(decimal.NewFromInt(10000)))
	suite.True(summaries[0].Remaining.Equal(decimal.NewFromInt(75000)))
	suite.Equal(25, summaries[0].PercentUsed)
	suite.False(summaries[0].Exceeded)
}

func (suite *BudgetServiceTestSuite) TestSummaries_EmployeeForbidden() {
	employee := &domain.User{UserID: "u1", Role: domain.RoleEmployee, DepartmentID: "d1"}

	_, err := suite.service.Summaries(context.Background(), employee, 4, 2025)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *BudgetServiceTestSuite) TestSummaries_NoBudgetReportsZeroCeiling() {
	ctx := context.Background()
	finance := &domain.User{UserID: "u2", Role: domain.RoleFinance, DepartmentID: "d9"}
	departments := []domain.Department{{DepartmentID: "d1", Name: "Engineering"}}

	suite.mockDepartmentRepo.On("ListDepartments", ctx).Return(departments, nil).Once()
	suite.mockBudgetRepo.On("FindBudget", ctx, "d1", 4, 2025).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockExpenseRepo.On("SumAmountByStatus", ctx, "d1", 4, 2025, []domain.ExpenseStatus{domain.StatusApproved, domain.StatusPaid}).
		Return(decimal.NewFromInt(5000), nil).Once()
	suite.mockExpenseRepo.On("SumAmountByStatus", ctx, "d1", 4, 2025, []domain.ExpenseStatus{domain.StatusSubmitted}).
		Return(decimal.Zero, nil).Once()

	summaries, err := suite.service.Summaries(ctx, finance, 4, 2025)

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 1)
	suite.Nil(summaries[0].Budget)
	suite.True(summaries[0].BudgetAmount.IsZero())
	suite.Equal(0, summaries[0].PercentUsed)
	suite.True(summaries[0].Exceeded)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
