package repositories

import (
	"context"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
)

// BudgetReader defines read operations for budget period data.
type BudgetReader interface {
	// FindBudget retrieves the budget period for (department, month, year).
	// Returns apperrors.ErrNotFound when no period exists; the absence of a
	// period is an observable state callers decide how to handle.
	FindBudget(ctx context.Context, departmentID string, month, year int) (*domain.Budget, error)
}

// BudgetWriter defines write operations for budget period data.
type BudgetWriter interface {
	// UpsertBudget creates the period or replaces its amount if it exists.
	UpsertBudget(ctx context.Context, budget domain.Budget) error

	// CreateBudgetIfAbsent inserts the period only when none exists yet and
	// reports whether a row was created. Used by the idempotent rollover.
	CreateBudgetIfAbsent(ctx context.Context, budget domain.Budget) (bool, error)
}

// BudgetRepositoryFacade combines all budget repository interfaces.
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
