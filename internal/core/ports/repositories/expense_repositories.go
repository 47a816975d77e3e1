package repositories

import (
	"context"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseReader defines read operations for expense data.
type ExpenseReader interface {
	// FindExpenseByID retrieves an expense by its unique identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpensesByOwner retrieves an employee's own expenses, newest first.
	ListExpensesByOwner(ctx context.Context, ownerID string) ([]domain.Expense, error)

	// ListExpensesForPeriod retrieves all expenses for a (month, year),
	// optionally scoped to one department, newest first.
	ListExpensesForPeriod(ctx context.Context, departmentID *string, month, year int) ([]domain.Expense, error)

	// ListPendingExpenses retrieves submitted expenses matching the tier
	// filter, excluding those the filter's approver already decided on,
	// newest first.
	ListPendingExpenses(ctx context.Context, filter domain.PendingFilter) ([]domain.Expense, error)

	// ListSubmittedExpenses retrieves every expense still awaiting a
	// decision, across all departments. Used by the reminder sweep.
	ListSubmittedExpenses(ctx context.Context) ([]domain.Expense, error)

	// SumAmountByStatus aggregates expense amounts for (department, month,
	// year) over the given statuses.
	SumAmountByStatus(ctx context.Context, departmentID string, month, year int, statuses []domain.ExpenseStatus) (decimal.Decimal, error)
}

// ExpenseWriter defines write operations for expense data.
type ExpenseWriter interface {
	// CreateExpenseWithBudgetCheck inserts the expense and its audit entry in
	// one transaction. The department's budget row for the period is locked
	// for the duration of the check so concurrent submissions cannot jointly
	// exceed the ceiling. Returns apperrors.ErrBudgetMissing when no period
	// exists and allowMissingBudget is false, apperrors.ErrBudgetExceeded
	// when the ceiling would be breached.
	CreateExpenseWithBudgetCheck(ctx context.Context, expense domain.Expense, audit domain.AuditLog, allowMissingBudget bool) error

	// UpdateExpenseStatusWithAudit updates the status and appends the audit
	// entry in one transaction.
	UpdateExpenseStatusWithAudit(ctx context.Context, expenseID string, status domain.ExpenseStatus, audit domain.AuditLog) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
