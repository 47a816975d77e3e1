package models

import "time"

// AuditLog is the database representation of one audit trail entry.
// Rows in this table are insert-only.
type AuditLog struct {
	AuditLogID  string    `db:"audit_log_id"`
	ExpenseID   string    `db:"expense_id"`
	PerformedBy string    `db:"performed_by"`
	Action      string    `db:"action"`
	Timestamp   time.Time `db:"timestamp"`
}
