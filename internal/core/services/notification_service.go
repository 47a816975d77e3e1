package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	portsrepo "github.com/expenseaudit/expense-audit-backend/internal/core/ports/repositories"
	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/expenseaudit/expense-audit-backend/internal/middleware"
)

// notificationService maps workflow events to messages and hands them to
// the mailer. Delivery is detached from the triggering request: failures
// are logged and swallowed, never propagated to the workflow transition.
type notificationService struct {
	userRepo       portsrepo.UserReader
	expenseRepo    portsrepo.ExpenseReader
	departmentRepo portsrepo.DepartmentReader
	mailer         portssvc.Mailer
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(
	ur portsrepo.UserReader,
	er portsrepo.ExpenseReader,
	dr portsrepo.DepartmentReader,
	mailer portssvc.Mailer,
) portssvc.NotificationSvcFacade {
	return &notificationService{
		userRepo:       ur,
		expenseRepo:    er,
		departmentRepo: dr,
		mailer:         mailer,
	}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// BuildExpenseSubmitted renders the message sent to each manager of the
// expense's department when a new expense is submitted.
func BuildExpenseSubmitted(managers []domain.User, expense domain.Expense) []domain.Notification {
	notifications := make([]domain.Notification, 0, len(managers))
	for _, m := range managers {
		notifications = append(notifications, domain.Notification{
			To:      m.Email,
			Subject: "New expense pending approval",
			Body: fmt.Sprintf("Hello %s,\n\nA new expense of ₦%s (%s) for %d/%d has been submitted in your department and is awaiting your review.\n",
				m.Name, expense.Amount.StringFixed(2), expense.Category, expense.Month, expense.Year),
		})
	}
	return notifications
}

// BuildExpenseDecided renders the message sent to the expense owner when a
// decision is recorded.
func BuildExpenseDecided(owner domain.User, expense domain.Expense, approver domain.User, decision domain.ApprovalDecision) domain.Notification {
	return domain.Notification{
		To:      owner.Email,
		Subject: fmt.Sprintf("Your expense has been %s", decision),
		Body: fmt.Sprintf("Hello %s,\n\nYour expense of ₦%s (%s) has been %s by %s (%s).\n",
			owner.Name, expense.Amount.StringFixed(2), expense.Category, decision, approver.Name, approver.Role),
	}
}

// BuildFinanceApprovalNeeded renders the message sent to each finance user
// when a manager approval escalates to the finance tier.
func BuildFinanceApprovalNeeded(financeUsers []domain.User, expense domain.Expense, departmentName string) []domain.Notification {
	notifications := make([]domain.Notification, 0, len(financeUsers))
	for _, u := range financeUsers {
		notifications = append(notifications, domain.Notification{
			To:      u.Email,
			Subject: "Expense requires finance approval",
			Body: fmt.Sprintf("Hello %s,\n\nAn expense of ₦%s (%s) from %s was approved by the department manager and now requires finance approval.\n",
				u.Name, expense.Amount.StringFixed(2), expense.Category, departmentName),
		})
	}
	return notifications
}

// BuildPendingReminder renders the weekly nudge for a manager with
// submitted expenses outstanding in their department.
func BuildPendingReminder(manager domain.User, pendingCount int) domain.Notification {
	return domain.Notification{
		To:      manager.Email,
		Subject: "Reminder: expenses awaiting your review",
		Body: fmt.Sprintf("Hello %s,\n\nYou have %d expense(s) in your department awaiting a decision.\n",
			manager.Name, pendingCount),
	}
}

func (s *notificationService) NotifyExpenseSubmitted(ctx context.Context, expense domain.Expense) {
	logger := middleware.GetLoggerFromCtx(ctx)

	managers, err := s.userRepo.ListManagersByDepartment(ctx, expense.DepartmentID)
	if err != nil {
		logger.Error("Failed to resolve managers for notification", slog.String("error", err.Error()), slog.String("department_id", expense.DepartmentID))
		return
	}
	if len(managers) == 0 {
		logger.Warn("No managers to notify for department", slog.String("department_id", expense.DepartmentID))
		return
	}

	s.dispatch(ctx, BuildExpenseSubmitted(managers, expense))
}

func (s *notificationService) NotifyExpenseDecided(ctx context.Context, expense domain.Expense, approver domain.User, decision domain.ApprovalDecision) {
	logger := middleware.GetLoggerFromCtx(ctx)

	owner, err := s.userRepo.FindUserByID(ctx, expense.OwnerID)
	if err != nil {
		logger.Error("Failed to resolve expense owner for notification", slog.String("error", err.Error()), slog.String("owner_id", expense.OwnerID))
		return
	}

	s.dispatch(ctx, []domain.Notification{BuildExpenseDecided(*owner, expense, approver, decision)})
}

func (s *notificationService) NotifyFinanceApprovalNeeded(ctx context.Context, expense domain.Expense) {
	logger := middleware.GetLoggerFromCtx(ctx)

	financeUsers, err := s.userRepo.ListUsersByRole(ctx, domain.RoleFinance)
	if err != nil {
		logger.Error("Failed to resolve finance users for notification", slog.String("error", err.Error()))
		return
	}
	if len(financeUsers) == 0 {
		logger.Warn("No finance users to notify")
		return
	}

	departmentName := expense.DepartmentID
	if dept, err := s.departmentRepo.FindDepartmentByID(ctx, expense.DepartmentID); err == nil {
		departmentName = dept.Name
	}

	s.dispatch(ctx, BuildFinanceApprovalNeeded(financeUsers, expense, departmentName))
}

// SendPendingReminders nudges each manager whose department has submitted
// expenses outstanding. Delivery failures are logged per message; only
// failures to read the store are returned.
func (s *notificationService) SendPendingReminders(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	pending, err := s.expenseRepo.ListSubmittedExpenses(ctx)
	if err != nil {
		return fmt.Errorf("failed to list submitted expenses: %w", err)
	}
	if len(pending) == 0 {
		logger.Info("No pending expenses; skipping reminders")
		return nil
	}

	countByDepartment := make(map[string]int)
	for _, e := range pending {
		countByDepartment[e.DepartmentID]++
	}

	managers, err := s.userRepo.ListUsersByRole(ctx, domain.RoleManager)
	if err != nil {
		return fmt.Errorf("failed to list managers: %w", err)
	}

	notifications := make([]domain.Notification, 0, len(managers))
	for _, m := range managers {
		if count := countByDepartment[m.DepartmentID]; count > 0 {
			notifications = append(notifications, BuildPendingReminder(m, count))
		}
	}

	logger.Info("Sending pending expense reminders", slog.Int("managers", len(notifications)), slog.Int("pending", len(pending)))
	s.dispatch(ctx, notifications)
	return nil
}

// dispatch hands the messages to the mailer on a detached goroutine so a
// finished or cancelled request cannot abort delivery. Send errors are
// logged and dropped.
func (s *notificationService) dispatch(ctx context.Context, notifications []domain.Notification) {
	if len(notifications) == 0 {
		return
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	detached := context.WithoutCancel(ctx)

	go func() {
		for _, n := range notifications {
			if err := s.mailer.Send(detached, n); err != nil {
				logger.Error("Failed to send notification", slog.String("to", n.To), slog.String("subject", n.Subject), slog.String("error", err.Error()))
				continue
			}
			logger.Info("Notification sent", slog.String("to", n.To), slog.String("subject", n.Subject))
		}
	}()
}
