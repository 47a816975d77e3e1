package models

import "github.com/shopspring/decimal"

// Budget is the database representation of a budget period.
type Budget struct {
	BudgetID     string          `db:"budget_id"`
	DepartmentID string          `db:"department_id"`
	Month        int             `db:"month"`
	Year         int             `db:"year"`
	Amount       decimal.Decimal `db:"amount"`
	AuditFields
}
