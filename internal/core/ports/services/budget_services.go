package services

import (
	"context"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetSvcFacade is the budget ledger: per-department, per-period ceilings
// and consumption. Callers pass (month, year) explicitly; "now" is computed
// at the outermost boundary only.
type BudgetSvcFacade interface {
	// GetPeriod retrieves the budget period, or apperrors.ErrNotFound.
	GetPeriod(ctx context.Context, departmentID string, month, year int) (*domain.Budget, error)

	// ConsumedAmount sums approved and paid expense amounts for the period.
	// Submitted and rejected expenses never count toward consumption.
	ConsumedAmount(ctx context.Context, departmentID string, month, year int) (decimal.Decimal, error)

	// WouldExceed reports whether adding candidateAmount would push the
	// period over its ceiling. Returns apperrors.ErrBudgetMissing when no
	// period exists; the block-or-warn policy belongs to the caller.
	WouldExceed(ctx context.Context, departmentID string, month, year int, candidateAmount decimal.Decimal) (bool, error)

	// Rollover seeds a budget period from each department's default ceiling
	// where none exists yet. Idempotent; already seeded departments are
	// reported as skipped.
	Rollover(ctx context.Context, month, year int, performedBy string) (*domain.RolloverResult, error)

	// SetAmount upserts the period ceiling and updates the department's
	// default so future rollovers inherit it. Rejects non-positive amounts.
	SetAmount(ctx context.Context, departmentID string, month, year int, amount decimal.Decimal, performedBy string) (*domain.Budget, error)

	// Summaries builds the per-department budget overview for a period.
	// Managers see only their own department; finance sees all.
	Summaries(ctx context.Context, principal *domain.User, month, year int) ([]domain.BudgetSummary, error)
}
