package repositories

import (
	"context"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
)

// ApprovalReader defines read operations for approval data.
type ApprovalReader interface {
	// FindApprovalByID retrieves an approval by its unique identifier.
	FindApprovalByID(ctx context.Context, approvalID string) (*domain.Approval, error)

	// ListApprovalsByApprover retrieves the decisions one approver has made,
	// newest first.
	ListApprovalsByApprover(ctx context.Context, approverID string) ([]domain.Approval, error)

	// ListApprovalsByExpense retrieves every decision recorded on an expense.
	ListApprovalsByExpense(ctx context.Context, expenseID string) ([]domain.Approval, error)
}

// ApprovalWriter defines write operations for approval data.
type ApprovalWriter interface {
	// CreateApprovalWithOutcome inserts the approval, updates the expense
	// status, and appends the audit entry in one transaction. The insert is
	// guarded by the (expense, approver) uniqueness constraint; a second
	// decision by the same approver returns apperrors.ErrAlreadyDecided.
	CreateApprovalWithOutcome(ctx context.Context, approval domain.Approval, status domain.ExpenseStatus, audit domain.AuditLog) error

	// UpdateApprovalWithOutcome replaces the decision and comments of an
	// existing approval, re-syncs the expense status, and appends the audit
	// entry in one transaction.
	UpdateApprovalWithOutcome(ctx context.Context, approval domain.Approval, status domain.ExpenseStatus, audit domain.AuditLog) error
}

// ApprovalRepositoryFacade combines all approval repository interfaces.
type ApprovalRepositoryFacade interface {
	ApprovalReader
	ApprovalWriter
}
