package pgsql

import (
	portsrepo "github.com/expenseaudit/expense-audit-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all PostgreSQL repositories on one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	base := baseRepository{pool: pool}
	return &portsrepo.RepositoryProvider{
		UserRepo:       &userRepository{base},
		DepartmentRepo: &departmentRepository{base},
		BudgetRepo:     &budgetRepository{base},
		ExpenseRepo:    &expenseRepository{base},
		ApprovalRepo:   &approvalRepository{base},
		AuditLogRepo:   &auditLogRepository{base},
		CommentRepo:    &commentRepository{base},
	}
}
