package services

import (
	"context"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
)

// NotificationSvcFacade maps workflow events to notifications and hands
// them to the configured transport. Delivery failures are logged and
// swallowed; they never affect the workflow transition that raised them.
type NotificationSvcFacade interface {
	// NotifyExpenseSubmitted notifies every manager of the expense's
	// department that a new expense awaits review.
	NotifyExpenseSubmitted(ctx context.Context, expense domain.Expense)

	// NotifyExpenseDecided notifies the expense owner of the decision.
	NotifyExpenseDecided(ctx context.Context, expense domain.Expense, approver domain.User, decision domain.ApprovalDecision)

	// NotifyFinanceApprovalNeeded notifies all finance users that a manager
	// approved an expense at or above the finance threshold.
	NotifyFinanceApprovalNeeded(ctx context.Context, expense domain.Expense)

	// SendPendingReminders nudges each manager with submitted expenses
	// outstanding in their department. Run on a periodic schedule.
	SendPendingReminders(ctx context.Context) error
}

// Mailer delivers a single notification over whatever transport is
// configured. Implementations live outside the core.
type Mailer interface {
	Send(ctx context.Context, notification domain.Notification) error
}
