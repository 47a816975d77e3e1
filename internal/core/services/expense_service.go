package services

import (
	"context"
	"errors"
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

type expenseService struct {
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	budgetRepo   portsrepo.BudgetReader
	approvalRepo portsrepo.ApprovalReader
	commentRepo  portsrepo.CommentRepositoryFacade
	notifier     portssvc.NotificationSvcFacade

	// allowMissingBudget decides what happens when a department has no
	// budget period for the expense's (month, year): false blocks the
	// submission, true accepts it with a logged warning and no ceiling.
	allowMissingBudget bool
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(
	er portsrepo.ExpenseRepositoryFacade,
	br portsrepo.BudgetReader,
	ar portsrepo.ApprovalReader,
	cr portsrepo.CommentRepositoryFacade,
	notifier portssvc.NotificationSvcFacade,
	allowMissingBudget bool,
) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo:        er,
		budgetRepo:         br,
		approvalRepo:       ar,
		commentRepo:        cr,
		notifier:           notifier,
		allowMissingBudget: allowMissingBudget,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// SubmitExpense validates the request and creates the expense in submitted
// state. The budget check and the creation audit entry happen atomically in
// the repository, under a lock on the period's budget row, so two
// concurrent submissions cannot jointly exceed the ceiling.
func (s *expenseService) SubmitExpense(ctx context.Context, owner *domain.User, req dto.SubmitExpenseRequest) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if err := validatePeriod(req.Month, req.Year); err != nil {
		return nil, err
	}
	if req.Category == "" {
		return nil, fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}

	// Early existence check so the missing-budget policy produces a clear
	// error before a transaction is opened. The repository re-checks the
	// ceiling under lock; this read is not the enforcement point.
	if _, err := s.budgetRepo.FindBudget(ctx, owner.DepartmentID, req.Month, req.Year); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up budget period: %w", err)
		}
		if !s.allowMissingBudget {
			return nil, fmt.Errorf("%w: no budget configured for department %s in %d/%d", apperrors.ErrBudgetMissing, owner.DepartmentID, req.Month, req.Year)
		}
		logger.Warn("No budget period configured; accepting expense without ceiling check",
			slog.String("department_id", owner.DepartmentID),
			slog.Int("month", req.Month),
			slog.Int("year", req.Year),
		)
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID:    uuid.NewString(),
		OwnerID:      owner.UserID,
		DepartmentID: owner.DepartmentID,
		Amount:       req.Amount,
		Category:     req.Category,
		ReceiptRef:   req.ReceiptRef,
		Status:       domain.StatusSubmitted,
		Month:        req.Month,
		Year:         req.Year,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     owner.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: owner.UserID,
		},
	}
	audit := domain.AuditLog{
		AuditLogID:  uuid.NewString(),
		ExpenseID:   expense.ExpenseID,
		PerformedBy: owner.UserID,
		Action:      domain.ActionCreated,
		Timestamp:   now,
	}

	if err := s.expenseRepo.CreateExpenseWithBudgetCheck(ctx, expense, audit, s.allowMissingBudget); err != nil {
		if errors.Is(err, apperrors.ErrBudgetExceeded) || errors.Is(err, apperrors.ErrBudgetMissing) {
			return nil, err
		}
		logger.Error("Failed to create expense", slog.String("error", err.Error()), slog.String("owner_id", owner.UserID))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	logger.Info("Expense submitted",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("department_id", expense.DepartmentID),
		slog.String("amount", expense.Amount.String()),
	)

	s.notifier.NotifyExpenseSubmitted(ctx, expense)
	return &expense, nil
}

// ListMyExpenses retrieves the principal's own expenses, newest first.
func (s *expenseService) ListMyExpenses(ctx context.Context, ownerID string) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpensesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	return expenses, nil
}

// GetExpense retrieves one expense together with its comments and decision
// history.
func (s *expenseService) GetExpense(ctx context.Context, expenseID string) (*dto.ExpenseDetail, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListCommentsByExpense(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	approvals, err := s.approvalRepo.ListApprovalsByExpense(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list approvals: %w", err)
	}

	return &dto.ExpenseDetail{
		Expense:   dto.ToExpenseResponse(expense),
		Comments:  dto.ToCommentResponseSlice(comments),
		Approvals: dto.ToApprovalResponseSlice(approvals),
	}, nil
}

// MarkPaid transitions an approved expense to paid. Finance only. Budget is
// not re-checked: the spend was counted against the ceiling at approval.
func (s *expenseService) MarkPaid(ctx context.Context, principal *domain.User, expenseID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if principal.Role != domain.RoleFinance {
		return nil, apperrors.ErrForbidden
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.Status != domain.StatusApproved {
		return nil, fmt.Errorf("%w: only approved expenses can be marked as paid", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	audit := domain.AuditLog{
		AuditLogID:  uuid.NewString(),
		ExpenseID:   expenseID,
		PerformedBy: principal.UserID,
		Action:      domain.ActionPaid,
		Timestamp:   now,
	}

	if err := s.expenseRepo.UpdateExpenseStatusWithAudit(ctx, expenseID, domain.StatusPaid, audit); err != nil {
		logger.Error("Failed to mark expense as paid", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to mark expense as paid: %w", err)
	}

	expense.Status = domain.StatusPaid
	expense.LastUpdatedAt = now
	expense.LastUpdatedBy = principal.UserID

	logger.Info("Expense marked as paid", slog.String("expense_id", expenseID))
	return expense, nil
}
