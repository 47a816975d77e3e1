package mapping

import (
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	"github.com/expenseaudit/expense-audit-backend/internal/models"
)

// ToModelAuditLog converts a domain AuditLog to a model AuditLog.
func ToModelAuditLog(d domain.AuditLog) models.AuditLog {
	return models.AuditLog{
		AuditLogID:  d.AuditLogID,
		ExpenseID:   d.ExpenseID,
		PerformedBy: d.PerformedBy,
		Action:      string(d.Action),
		Timestamp:   d.Timestamp,
	}
}

// ToDomainAuditLog converts a model AuditLog to a domain AuditLog.
func ToDomainAuditLog(m models.AuditLog) domain.AuditLog {
	return domain.AuditLog{
		AuditLogID:  m.AuditLogID,
		ExpenseID:   m.ExpenseID,
		PerformedBy: m.PerformedBy,
		Action:      domain.AuditAction(m.Action),
		Timestamp:   m.Timestamp,
	}
}

// ToDomainAuditLogSlice converts a slice of model AuditLogs.
func ToDomainAuditLogSlice(ms []models.AuditLog) []domain.AuditLog {
	ds := make([]domain.AuditLog, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAuditLog(m)
	}
	return ds
}
