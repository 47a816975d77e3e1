package repositories

import (
	"context"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
)

// AuditLogRepositoryFacade defines the audit trail operations. The trail is
// append-only: there is deliberately no update or delete; an entry's meaning
// is only ever superseded by a newer entry.
type AuditLogRepositoryFacade interface {
	// SaveAuditLog appends one entry to the trail.
	SaveAuditLog(ctx context.Context, entry domain.AuditLog) error

	// ListAuditLogs retrieves entries ordered by timestamp descending,
	// optionally filtered to one expense.
	ListAuditLogs(ctx context.Context, expenseID *string) ([]domain.AuditLog, error)
}
