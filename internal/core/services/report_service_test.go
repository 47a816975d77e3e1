package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/expenseaudit/expense-audit-backend/internal/apperrors"
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/expenseaudit/expense-audit-backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo    *MockExpenseRepository
	mockUserRepo       *MockUserRepository
	mockDepartmentRepo *MockDepartmentRepository
	service            portssvc.ReportSvcFacade
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockDepartmentRepo = new(MockDepartmentRepository)
	suite.service = services.NewReportService(suite.mockExpenseRepo, suite.mockUserRepo, suite.mockDepartmentRepo)
}

func (suite *ReportServiceTestSuite) TestExpenseReportCSV_RendersRows() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	owner := &domain.User{UserID: ownerID, Name: "Ada"}
	departments := []domain.Department{{DepartmentID: "d1", Name: "Engineering"}}
	expenses := []domain.Expense{
		{
			ExpenseID:    uuid.NewString(),
			OwnerID:      ownerID,
			DepartmentID: "d1",
			Amount:       decimal.NewFromInt(12500),
			Category:     "travel",
			Status:       domain.StatusApproved,
			Month:        4,
			Year:         2025,
			AuditFields:  domain.AuditFields{CreatedAt: time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)},
		},
	}

	suite.mockExpenseRepo.On("ListExpensesForPeriod", ctx, (*string)(nil), 4, 2025).Return(expenses, nil).Once()
	suite.mockDepartmentRepo.On("ListDepartments", ctx).Return(departments, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, ownerID).Return(owner, nil).Once()

	data, filename, err := suite.service.ExpenseReportCSV(ctx, 4, 2025)

	suite.Require().NoError(err)
	suite.Equal("expense-report-4-2025.csv", filename)

	csv := string(data)
	lines := strings.Split(strings.TrimSpace(csv), "\n")
	suite.Require().Len(lines, 2)
	suite.Contains(lines[0], "Employee")
	suite.Contains(lines[1], "Ada")
	suite.Contains(lines[1], "Engineering")
	suite.Contains(lines[1], "12500.00")
	suite.Contains(lines[1], "approved")
	suite.Contains(lines[1], "2025-04-02")
}

func (suite *ReportServiceTestSuite) TestExpenseReportCSV_ResolvesOwnerOnce() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	owner := &domain.User{UserID: ownerID, Name: "Ada"}
	expenses := []domain.Expense{
		{ExpenseID: uuid.NewString(), OwnerID: ownerID, DepartmentID: "d1", Amount: decimal.NewFromInt(100), Status: domain.StatusPaid},
		{ExpenseID: uuid.NewString(), OwnerID: ownerID, DepartmentID: "d1", Amount: decimal.NewFromInt(200), Status: domain.StatusPaid},
	}

	suite.mockExpenseRepo.On("ListExpensesForPeriod", ctx, (*string)(nil), 5, 2025).Return(expenses, nil).Once()
	suite.mockDepartmentRepo.On("ListDepartments", ctx).Return([]domain.Department{}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, ownerID).Return(owner, nil).Once()

	_, _, err := suite.service.ExpenseReportCSV(ctx, 5, 2025)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertNumberOfCalls(suite.T(), "FindUserByID", 1)
}

func (suite *ReportServiceTestSuite) TestExpenseReportCSV_InvalidPeriod() {
	_, _, err := suite.service.ExpenseReportCSV(context.Background(), 0, 2025)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
