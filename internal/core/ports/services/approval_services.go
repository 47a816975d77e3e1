package services

import (
	"context"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	"github.com/expenseaudit/expense-audit-backend/internal/dto"
)

// ApprovalSvcFacade routes approval decisions: it decides whether a
// principal may decide on an expense and applies the decision's side
// effects (status sync, audit entry, notifications).
type ApprovalSvcFacade interface {
	// CreateApproval records a new decision after tier, scope, and
	// single-decision checks, in that order.
	CreateApproval(ctx context.Context, approver *domain.User, req dto.CreateApprovalRequest) (*domain.Approval, error)

	// UpdateApproval amends the approver's own existing decision, re-syncs
	// the expense status, and appends an updated audit entry.
	UpdateApproval(ctx context.Context, approver *domain.User, approvalID string, req dto.UpdateApprovalRequest) (*domain.Approval, error)

	// ListApprovals returns the expenses awaiting this approver's tier
	// (excluding ones they already decided) and their past decisions.
	ListApprovals(ctx context.Context, approver *domain.User) (*dto.ApprovalsOverview, error)
}
