package services

import (
	portsrepo "github.com/expenseaudit/expense-audit-backend/internal/core/ports/repositories"
	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/expenseaudit/expense-audit-backend/pkg/config"
)

// NewServiceContainer wires the repositories and the mailer into the full
// set of service facades.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, mailer portssvc.Mailer) *portssvc.ServiceContainer {
	notification := NewNotificationService(repos.UserRepo, repos.ExpenseRepo, repos.DepartmentRepo, mailer)

	return &portssvc.ServiceContainer{
		User:         NewUserService(repos.UserRepo, repos.DepartmentRepo),
		Department:   NewDepartmentService(repos.DepartmentRepo),
		Budget:       NewBudgetService(repos.BudgetRepo, repos.DepartmentRepo, repos.ExpenseRepo),
		Expense:      NewExpenseService(repos.ExpenseRepo, repos.BudgetRepo, repos.ApprovalRepo, repos.CommentRepo, notification, cfg.AllowSubmitWithoutBudget),
		Approval:     NewApprovalService(repos.ApprovalRepo, repos.ExpenseRepo, notification, cfg.ApprovalThreshold, cfg.EnableManagerEscalation),
		Audit:        NewAuditService(repos.AuditLogRepo),
		Notification: notification,
		Comment:      NewCommentService(repos.CommentRepo, repos.ExpenseRepo),
		Report:       NewReportService(repos.ExpenseRepo, repos.UserRepo, repos.DepartmentRepo),
	}
}
