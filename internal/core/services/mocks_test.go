package services_test

import (
	"context"
	"time"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	portsrepo "github.com/expenseaudit/expense-audit-backend/internal/core/ports/repositories"
	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsersByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) ListManagersByDepartment(ctx context.Context, departmentID string) ([]domain.User, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock DepartmentRepository ---

type MockDepartmentRepository struct {
	mock.Mock
}

var _ portsrepo.DepartmentRepositoryFacade = (*MockDepartmentRepository)(nil)

func (m *MockDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) UpdateDefaultBudget(ctx context.Context, departmentID string, amount decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, departmentID, amount, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock BudgetRepository ---

type MockBudgetRepository struct {
	mock.Mock
}

var _ portsrepo.BudgetRepositoryFacade = (*MockBudgetRepository)(nil)

func (m *MockBudgetRepository) FindBudget(ctx context.Context, departmentID string, month, year int) (*domain.Budget, error) {
	args := m.Called(ctx, departmentID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) CreateBudgetIfAbsent(ctx context.Context, budget domain.Budget) (bool, error) {
	args := m.Called(ctx, budget)
	return args.Bool(0), args.Error(1)
}

// --- Mock ExpenseRepository ---

type MockExpenseRepository struct {
	mock.Mock
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByOwner(ctx context.Context, ownerID string) ([]domain.Expense, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesForPeriod(ctx context.Context, departmentID *string, month, year int) ([]domain.Expense, error) {
	args := m.Called(ctx, departmentID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListPendingExpenses(ctx context.Context, filter domain.PendingFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListSubmittedExpenses(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SumAmountByStatus(ctx context.Context, departmentID string, month, year int, statuses []domain.ExpenseStatus) (decimal.Decimal, error) {
	args := m.Called(ctx, departmentID, month, year, statuses)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockExpenseRepository) CreateExpenseWithBudgetCheck(ctx context.Context, expense domain.Expense, audit domain.AuditLog, allowMissingBudget bool) error {
	args := m.Called(ctx, expense, audit, allowMissingBudget)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpenseStatusWithAudit(ctx context.Context, expenseID string, status domain.ExpenseStatus, audit domain.AuditLog) error {
	args := m.Called(ctx, expenseID, status, audit)
	return args.Error(0)
}

// --- Mock ApprovalRepository ---

type MockApprovalRepository struct {
	mock.Mock
}

var _ portsrepo.ApprovalRepositoryFacade = (*MockApprovalRepository)(nil)

func (m *MockApprovalRepository) FindApprovalByID(ctx context.Context, approvalID string) (*domain.Approval, error) {
	args := m.Called(ctx, approvalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Approval), args.Error(1)
}

func (m *MockApprovalRepository) ListApprovalsByApprover(ctx context.Context, approverID string) ([]domain.Approval, error) {
	args := m.Called(ctx, approverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Approval), args.Error(1)
}

func (m *MockApprovalRepository) ListApprovalsByExpense(ctx context.Context, expenseID string) ([]domain.Approval, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Approval), args.Error(1)
}

func (m *MockApprovalRepository) CreateApprovalWithOutcome(ctx context.Context, approval domain.Approval, status domain.ExpenseStatus, audit domain.AuditLog) error {
	args := m.Called(ctx, approval, status, audit)
	return args.Error(0)
}

func (m *MockApprovalRepository) UpdateApprovalWithOutcome(ctx context.Context, approval domain.Approval, status domain.ExpenseStatus, audit domain.AuditLog) error {
	args := m.Called(ctx, approval, status, audit)
	return args.Error(0)
}

// --- Mock AuditLogRepository ---

type MockAuditLogRepository struct {
	mock.Mock
}

var _ portsrepo.AuditLogRepositoryFacade = (*MockAuditLogRepository)(nil)

func (m *MockAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) ListAuditLogs(ctx context.Context, expenseID *string) ([]domain.AuditLog, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}

// --- Mock CommentRepository ---

type MockCommentRepository struct {
	mock.Mock
}

var _ portsrepo.CommentRepositoryFacade = (*MockCommentRepository)(nil)

func (m *MockCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) ListCommentsByExpense(ctx context.Context, expenseID string) ([]domain.Comment, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

// --- Mock NotificationService ---

type MockNotificationService struct {
	mock.Mock
}

var _ portssvc.NotificationSvcFacade = (*MockNotificationService)(nil)

func (m *MockNotificationService) NotifyExpenseSubmitted(ctx context.Context, expense domain.Expense) {
	m.Called(ctx, expense)
}

func (m *MockNotificationService) NotifyExpenseDecided(ctx context.Context, expense domain.Expense, approver domain.User, decision domain.ApprovalDecision) {
	m.Called(ctx, expense, approver, decision)
}

func (m *MockNotificationService) NotifyFinanceApprovalNeeded(ctx context.Context, expense domain.Expense) {
	m.Called(ctx, expense)
}

func (m *MockNotificationService) SendPendingReminders(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock Mailer ---

// MockMailer records sends and signals delivery on a channel so tests can
// wait for the detached dispatch goroutine.
type MockMailer struct {
	mock.Mock
	Sent chan domain.Notification
}

var _ portssvc.Mailer = (*MockMailer)(nil)

func NewMockMailer() *MockMailer {
	return &MockMailer{Sent: make(chan domain.Notification, 16)}
}

func (m *MockMailer) Send(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	m.Sent <- notification
	return args.Error(0)
}
