package pgsql

import (
	"context"
	"fmt"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	portsrepo "github.com/expenseaudit/expense-audit-backend/internal/core/ports/repositories"
	"github.com/expenseaudit/expense-audit-backend/internal/models"
	"github.com/expenseaudit/expense-audit-backend/internal/utils/mapping"
)

// auditLogRepository is insert-only. There is no update or delete path for
// the audit_logs table anywhere in this package.
type auditLogRepository struct {
	baseRepository
}

var _ portsrepo.AuditLogRepositoryFacade = (*auditLogRepository)(nil)

const auditLogColumns = `audit_log_id, expense_id, performed_by, action, timestamp`

func (r *auditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	m := mapping.ToModelAuditLog(entry)
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs (`+auditLogColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		m.AuditLogID, m.ExpenseID, m.PerformedBy, m.Action, m.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}

func (r *auditLogRepository) ListAuditLogs(ctx context.Context, expenseID *string) ([]domain.AuditLog, error) {
	query := `SELECT ` + auditLogColumns + ` FROM audit_logs`
	args := []any{}
	if expenseID != nil {
		query += ` WHERE expense_id = $1`
		args = append(args, *expenseID)
	}
	query += ` ORDER BY timestamp DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	defer rows.Close()

	var ms []models.AuditLog
	for rows.Next() {
		var m models.AuditLog
		if err := rows.Scan(&m.AuditLogID, &m.ExpenseID, &m.PerformedBy, &m.Action, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan audit row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read audit rows: %w", err)
	}
	return mapping.ToDomainAuditLogSlice(ms), nil
}
