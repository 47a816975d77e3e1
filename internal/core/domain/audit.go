package domain

import "time"

// AuditAction is what happened to an expense.
type AuditAction string

const (
	ActionCreated  AuditAction = "created"
	ActionUpdated  AuditAction = "updated"
	ActionApproved AuditAction = "approved"
	ActionRejected AuditAction = "rejected"
	ActionPaid     AuditAction = "paid"
)

// AuditLog is one append-only entry in the compliance trail. Entries are
// never mutated or deleted; a correction is a new entry with a later
// timestamp. The trail is authoritative over the mutable Expense.Status.
type AuditLog struct {
	AuditLogID  string      `json:"auditLogID"`
	ExpenseID   string      `json:"expenseID"`
	PerformedBy string      `json:"performedBy"`
	Action      AuditAction `json:"action"`
	Timestamp   time.Time   `json:"timestamp"`
}
