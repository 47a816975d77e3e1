package models

// Approval is the database representation of an approval decision.
type Approval struct {
	ApprovalID string `db:"approval_id"`
	ExpenseID  string `db:"expense_id"`
	ApproverID string `db:"approver_id"`
	Decision   string `db:"decision"`
	Comments   string `db:"comments"`
	AuditFields
}
