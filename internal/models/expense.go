package models

import "github.com/shopspring/decimal"

// Expense is the database representation of an expense.
type Expense struct {
	ExpenseID    string          `db:"expense_id"`
	OwnerID      string          `db:"owner_id"`
	DepartmentID string          `db:"department_id"`
	Amount       decimal.Decimal `db:"amount"`
	Category     string          `db:"category"`
	ReceiptRef   *string         `db:"receipt_ref"`
	Status       string          `db:"status"`
	Month        int             `db:"month"`
	Year         int             `db:"year"`
	AuditFields
}
