package services

import (
	"context"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	"github.com/expenseaudit/expense-audit-backend/internal/dto"
)

// ExpenseSvcFacade drives the expense lifecycle from submission to a
// terminal state.
type ExpenseSvcFacade interface {
	// SubmitExpense validates and creates a new expense in submitted state,
	// guarded by the department budget, with its creation audit entry
	// written atomically. Managers of the department are notified.
	SubmitExpense(ctx context.Context, owner *domain.User, req dto.SubmitExpenseRequest) (*domain.Expense, error)

	// ListMyExpenses retrieves the principal's own expenses, newest first.
	ListMyExpenses(ctx context.Context, ownerID string) ([]domain.Expense, error)

	// GetExpense retrieves one expense with its comments and approvals.
	GetExpense(ctx context.Context, expenseID string) (*dto.ExpenseDetail, error)

	// MarkPaid is the administrative transition from approved to paid,
	// finance only. It does not re-run budget checks; the spend was counted
	// at approval time.
	MarkPaid(ctx context.Context, principal *domain.User, expenseID string) (*domain.Expense, error)
}
