package services

import (
	"context"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
)

// AuditSvcFacade exposes the append-only compliance trail.
type AuditSvcFacade interface {
	// Record appends one entry to the trail.
	Record(ctx context.Context, expenseID, performedBy string, action domain.AuditAction) (*domain.AuditLog, error)

	// ListForExpense retrieves an expense's entries, newest first.
	ListForExpense(ctx context.Context, expenseID string) ([]domain.AuditLog, error)

	// ListAll retrieves all entries newest first, optionally filtered to one
	// expense.
	ListAll(ctx context.Context, expenseID *string) ([]domain.AuditLog, error)
}
