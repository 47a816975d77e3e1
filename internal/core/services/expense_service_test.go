package services_test

import (
	"context"
	"testing"

	"github.com/expenseaudit/expense-audit-backend/internal/apperrors"
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/expenseaudit/expense-audit-backend/internal/core/services"
	"github.com/expenseaudit/expense-audit-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo  *MockExpenseRepository
	mockBudgetRepo   *MockBudgetRepository
	mockApprovalRepo *MockApprovalRepository
	mockCommentRepo  *MockCommentRepository
	mockNotifier     *MockNotificationService
	service          portssvc.ExpenseSvcFacade
	owner            *domain.User
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockApprovalRepo = new(MockApprovalRepository)
	suite.mockCommentRepo = new(MockCommentRepository)
	suite.mockNotifier = new(MockNotificationService)
	suite.service = services.NewExpenseService(
		suite.mockExpenseRepo, suite.mockBudgetRepo, suite.mockApprovalRepo,
		suite.mockCommentRepo, suite.mockNotifier, false,
	)
	suite.owner = &domain.User{
		UserID:       uuid.NewString(),
		Name:         "Ada",
		Email:        "ada@example.com",
		Role:         domain.RoleEmployee,
		DepartmentID: uuid.NewString(),
	}
}

func (suite *ExpenseServiceTestSuite) validRequest() dto.SubmitExpenseRequest {
	return dto.SubmitExpenseRequest{
		Amount:   decimal.NewFromInt(12000),
		Category: "travel",
		Month:    4,
		Year:     2025,
	}
}

func (suite *ExpenseServiceTestSuite) TestSubmitExpense_Success() {
	ctx := context.Background()
	req := suite.validRequest()
	budget := &domain.Budget{DepartmentID: suite.owner.DepartmentID, Month: 4, Year: 2025, Amount: decimal.NewFromInt(100000)}

	suite.mockBudgetRepo.On("FindBudget", ctx, suite.owner.DepartmentID, 4, 2025).Return(budget, nil).Once()
	suite.mockExpenseRepo.On("CreateExpenseWithBudgetCheck", ctx,
		mock.MatchedBy(func(e domain.Expense) bool {
			return e.OwnerID == suite.owner.UserID &&
				e.DepartmentID == suite.owner.DepartmentID &&
				e.Status == domain.StatusSubmitted &&
				e.Amount.Equal(req.Amount)
		}),
		mock.MatchedBy(func(a domain.AuditLog) bool {
			return a.Action == domain.ActionCreated && a.PerformedBy == suite.owner.UserID
		}),
		false,
	).Return(nil).Once()
	suite.mockNotifier.On("NotifyExpenseSubmitted", ctx, mock.AnythingOfType("domain.Expense")).Return().Once()

	expense, err := suite.service.SubmitExpense(ctx, suite.owner, req)

	suite.Require().NoError(err)
	suite.NotEmpty(expense.ExpenseID)
	suite.Equal(domain.StatusSubmitted, expense.Status)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestSubmitExpense_NonPositiveAmount() {
	req := suite.validRequest()
	req.Amount = decimal.Zero

	_, err := suite.service.SubmitExpense(context.Background(), suite.owner, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "CreateExpenseWithBudgetCheck")
}

func (suite *ExpenseServiceTestSuite) TestSubmitExpense_MissingBudgetBlocked() {
	ctx := context.Background()
	req := suite.validRequest()

	suite.mockBudgetRepo.On("FindBudget", ctx, suite.owner.DepartmentID, 4, 2025).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SubmitExpense(ctx, suite.owner, req)

	suite.Require().ErrorIs(err, apperrors.ErrBudgetMissing)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "CreateExpenseWithBudgetCheck")
}

func (suite *ExpenseServiceTestSuite) TestSubmitExpense_MissingBudgetAllowedByPolicy() {
	ctx := context.Background()
	req := suite.validRequest()
	service := services.NewExpenseService(
		suite.mockExpenseRepo, suite.mockBudgetRepo, suite.mockApprovalRepo,
		suite.mockCommentRepo, suite.mockNotifier, true,
	)

	suite.mockBudgetRepo.On("FindBudget", ctx, suite.owner.DepartmentID, 4, 2025).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockExpenseRepo.On("CreateExpenseWithBudgetCheck", ctx, mock.Anything, mock.Anything, true).Return(nil).Once()
	suite.mockNotifier.On("NotifyExpenseSubmitted", ctx, mock.AnythingOfType("domain.Expense")).Return().Once()

	expense, err := service.SubmitExpense(ctx, suite.owner, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusSubmitted, expense.Status)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestSubmitExpense_BudgetExceeded() {
	ctx := context.Background()
	req := suite.validRequest()
	budget := &domain.Budget{Amount: decimal.NewFromInt(10000)}

	suite.mockBudgetRepo.On("FindBudget", ctx, suite.owner.DepartmentID, 4, 2025).Return(budget, nil).Once()
	suite.mockExpenseRepo.On("CreateExpenseWithBudgetCheck", ctx, mock.Anything, mock.Anything, false).
		Return(apperrors.ErrBudgetExceeded).Once()

	_, err := suite.service.SubmitExpense(ctx, suite.owner, req)

	suite.Require().ErrorIs(err, apperrors.ErrBudgetExceeded)
	suite.mockNotifier.AssertNotCalled(suite.T(), "NotifyExpenseSubmitted")
}

func (suite *ExpenseServiceTestSuite) TestMarkPaid_Success() {
	ctx := context.Background()
	finance := &domain.User{UserID: uuid.NewString(), Role: domain.RoleFinance}
	expenseID := uuid.NewString()
	expense := &domain.Expense{ExpenseID: expenseID, Status: domain.StatusApproved, Amount: decimal.NewFromInt(80000)}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, expenseID).Return(expense, nil).Once()
	suite.mockExpenseRepo.On("UpdateExpenseStatusWithAudit", ctx, expenseID, domain.StatusPaid,
		mock.MatchedBy(func(a domain.AuditLog) bool {
			return a.Action == domain.ActionPaid && a.PerformedBy == finance.UserID
		}),
	).Return(nil).Once()

	updated, err := suite.service.MarkPaid(ctx, finance, expenseID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPaid, updated.Status)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestMarkPaid_NonFinanceForbidden() {
	manager := &domain.User{UserID: uuid.NewString(), Role: domain.RoleManager}

	_, err := suite.service.MarkPaid(context.Background(), manager, uuid.NewString())

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "FindExpenseByID")
}

func (suite *ExpenseServiceTestSuite) TestMarkPaid_NotApproved() {
	ctx := context.Background()
	finance := &domain.User{UserID: uuid.NewString(), Role: domain.RoleFinance}
	expenseID := uuid.NewString()
	expense := &domain.Expense{ExpenseID: expenseID, Status: domain.StatusSubmitted}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, expenseID).Return(expense, nil).Once()

	_, err := suite.service.MarkPaid(ctx, finance, expenseID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "UpdateExpenseStatusWithAudit")
}

func (suite *ExpenseServiceTestSuite) TestGetExpense_AssemblesDetail() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	expense := &domain.Expense{ExpenseID: expenseID, Status: domain.StatusSubmitted, Amount: decimal.NewFromInt(500)}
	comments := []domain.Comment{{CommentID: uuid.NewString(), ExpenseID: expenseID, Text: "looks fine"}}
	approvals := []domain.Approval{{ApprovalID: uuid.NewString(), ExpenseID: expenseID, Decision: domain.DecisionApproved}}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, expenseID).Return(expense, nil).Once()
	suite.mockCommentRepo.On("ListCommentsByExpense", ctx, expenseID).Return(comments, nil).Once()
	suite.mockApprovalRepo.On("ListApprovalsByExpense", ctx, expenseID).Return(approvals, nil).Once()

	detail, err := suite.service.GetExpense(ctx, expenseID)

	suite.Require().NoError(err)
	suite.Equal(expenseID, detail.Expense.ExpenseID)
	suite.Len(detail.Comments, 1)
	suite.Len(detail.Approvals, 1)
}

func (suite *ExpenseServiceTestSuite) TestListMyExpenses_EmptyIsNotNil() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("ListExpensesByOwner", ctx, suite.owner.UserID).Return([]domain.Expense(nil), nil).Once()

	expenses, err := suite.service.ListMyExpenses(ctx, suite.owner.UserID)

	suite.Require().NoError(err)
	suite.NotNil(expenses)
	suite.Empty(expenses)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
