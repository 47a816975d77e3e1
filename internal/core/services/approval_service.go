package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/expenseaudit/expense-audit-backend/internal/apperrors"
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	portsrepo "github.com/expenseaudit/expense-audit-backend/internal/core/ports/repositories"
	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/expenseaudit/expense-audit-backend/internal/dto"
	"github.com/expenseaudit/expense-audit-backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// approvalService routes decisions by amount tier. Expenses below the
// threshold belong to the owning department's managers; expenses at or
// above it belong to finance.
type approvalService struct {
	approvalRepo portsrepo.ApprovalRepositoryFacade
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	notifier     portssvc.NotificationSvcFacade

	threshold decimal.Decimal

	// escalationEnabled lets a manager approve an expense at or above the
	// threshold within their own department; the expense then additionally
	// needs a finance decision, which finance is notified about. When off,
	// such attempts are rejected as the wrong tier.
	escalationEnabled bool
}

// NewApprovalService creates a new ApprovalService.
func NewApprovalService(
	ar portsrepo.ApprovalRepositoryFacade,
	er portsrepo.ExpenseRepositoryFacade,
	notifier portssvc.NotificationSvcFacade,
	threshold decimal.Decimal,
	escalationEnabled bool,
) portssvc.ApprovalSvcFacade {
	return &approvalService{
		approvalRepo:      ar,
		expenseRepo:       er,
		notifier:          notifier,
		threshold:         threshold,
		escalationEnabled: escalationEnabled,
	}
}

var _ portssvc.ApprovalSvcFacade = (*approvalService)(nil)

// routeDecision applies the tier and scope rules to one decision attempt.
// Tier is checked before scope: a manager touching a finance-tier expense
// outside their department is told about the tier, not the scope. Returns
// whether the decision escalates to finance (manager approving at or above
// the threshold with escalation on).
func (s *approvalService) routeDecision(role domain.UserRole, amount decimal.Decimal, sameDepartment bool, decision domain.ApprovalDecision) (bool, error) {
	switch role {
	case domain.RoleManager:
		if amount.GreaterThanOrEqual(s.threshold) {
			if !s.escalationEnabled || decision != domain.DecisionApproved {
				return false, fmt.Errorf("%w: expenses of %s and above are decided by finance", apperrors.ErrWrongApproverTier, s.threshold.String())
			}
			if !sameDepartment {
				return false, fmt.Errorf("%w: managers can only decide on expenses from their own department", apperrors.ErrOutOfScope)
			}
			return true, nil
		}
		if !sameDepartment {
			return false, fmt.Errorf("%w: managers can only decide on expenses from their own department", apperrors.ErrOutOfScope)
		}
		return false, nil
	case domain.RoleFinance:
		if amount.LessThan(s.threshold) {
			return false, fmt.Errorf("%w: expenses below %s are decided by the department manager", apperrors.ErrWrongApproverTier, s.threshold.String())
		}
		return false, nil
	default:
		return false, apperrors.ErrForbidden
	}
}

// CreateApproval records a new decision on a submitted expense. Tier and
// scope are checked first; the single-decision rule is enforced by the
// store's (expense, approver) uniqueness, so a lost race surfaces as
// apperrors.ErrAlreadyDecided rather than a second decision.
func (s *approvalService) CreateApproval(ctx context.Context, approver *domain.User, req dto.CreateApprovalRequest) (*domain.Approval, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	decision := domain.ApprovalDecision(req.Decision)
	if !decision.IsValid() {
		return nil, fmt.Errorf("%w: decision must be approved or rejected", apperrors.ErrValidation)
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, req.ExpenseID)
	if err != nil {
		return nil, err
	}
	// Paid is terminal; only approved and rejected expenses can still
	// collect decisions (escalation follow-up, second opinion).
	if expense.Status == domain.StatusPaid {
		return nil, fmt.Errorf("%w: expense has already been paid out", apperrors.ErrValidation)
	}

	escalated, err := s.routeDecision(approver.Role, expense.Amount, expense.DepartmentID == approver.DepartmentID, decision)
	if err != nil {
		logger.Warn("Decision attempt refused",
			slog.String("expense_id", expense.ExpenseID),
			slog.String("role", string(approver.Role)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	now := time.Now().UTC()
	approval := domain.Approval{
		ApprovalID: uuid.NewString(),
		ExpenseID:  expense.ExpenseID,
		ApproverID: approver.UserID,
		Decision:   decision,
		Comments:   req.Comments,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     approver.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: approver.UserID,
		},
	}
	audit := domain.AuditLog{
		AuditLogID:  uuid.NewString(),
		ExpenseID:   expense.ExpenseID,
		PerformedBy: approver.UserID,
		Action:      domain.AuditAction(decision),
		Timestamp:   now,
	}

	if err := s.approvalRepo.CreateApprovalWithOutcome(ctx, approval, decision.Status(), audit); err != nil {
		return nil, err
	}

	expense.Status = decision.Status()
	logger.Info("Decision recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("decision", string(decision)),
		slog.Bool("escalated", escalated),
	)

	s.notifier.NotifyExpenseDecided(ctx, *expense, *approver, decision)
	if escalated {
		s.notifier.NotifyFinanceApprovalNeeded(ctx, *expense)
	}

	return &approval, nil
}

// UpdateApproval amends an existing decision. Only the approver who made
// the original decision may amend it, and only before the expense is paid
// out; the expense status is re-synced and an updated entry is appended to
// the trail.
func (s *approvalService) UpdateApproval(ctx context.Context, approver *domain.User, approvalID string, req dto.UpdateApprovalRequest) (*domain.Approval, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	decision := domain.ApprovalDecision(req.Decision)
	if !decision.IsValid() {
		return nil, fmt.Errorf("%w: decision must be approved or rejected", apperrors.ErrValidation)
	}

	approval, err := s.approvalRepo.FindApprovalByID(ctx, approvalID)
	if err != nil {
		return nil, err
	}
	if approval.ApproverID != approver.UserID {
		return nil, fmt.Errorf("%w: only the original approver can amend a decision", apperrors.ErrForbidden)
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, approval.ExpenseID)
	if err != nil {
		return nil, err
	}
	if expense.Status == domain.StatusPaid {
		return nil, fmt.Errorf("%w: expense has already been paid out", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	approval.Decision = decision
	approval.Comments = req.Comments
	approval.LastUpdatedAt = now
	approval.LastUpdatedBy = approver.UserID

	audit := domain.AuditLog{
		AuditLogID:  uuid.NewString(),
		ExpenseID:   approval.ExpenseID,
		PerformedBy: approver.UserID,
		Action:      domain.ActionUpdated,
		Timestamp:   now,
	}

	if err := s.approvalRepo.UpdateApprovalWithOutcome(ctx, *approval, decision.Status(), audit); err != nil {
		logger.Error("Failed to amend decision", slog.String("error", err.Error()), slog.String("approval_id", approvalID))
		return nil, fmt.Errorf("failed to amend decision: %w", err)
	}

	logger.Info("Decision amended",
		slog.String("approval_id", approvalID),
		slog.String("expense_id", approval.ExpenseID),
		slog.String("decision", string(decision)),
	)
	return approval, nil
}

// ListApprovals returns the expenses awaiting the approver's tier, minus
// any they already decided on, together with their past decisions.
func (s *approvalService) ListApprovals(ctx context.Context, approver *domain.User) (*dto.ApprovalsOverview, error) {
	filter := domain.PendingFilter{ExcludeDecidedBy: approver.UserID}
	switch approver.Role {
	case domain.RoleManager:
		deptID := approver.DepartmentID
		max := s.threshold
		filter.DepartmentID = &deptID
		filter.MaxAmountExclusive = &max
	case domain.RoleFinance:
		min := s.threshold
		filter.MinAmountInclusive = &min
	default:
		return nil, apperrors.ErrForbidden
	}

	pending, err := s.expenseRepo.ListPendingExpenses(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending expenses: %w", err)
	}
	past, err := s.approvalRepo.ListApprovalsByApprover(ctx, approver.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list past decisions: %w", err)
	}

	return &dto.ApprovalsOverview{
		Pending:       dto.ToExpenseResponseSlice(pending),
		PastDecisions: dto.ToApprovalResponseSlice(past),
	}, nil
}
