package models

import "github.com/shopspring/decimal"

// Department is the database representation of a department.
type Department struct {
	DepartmentID  string          `db:"department_id"`
	Name          string          `db:"name"`
	DefaultBudget decimal.Decimal `db:"default_budget"`
	AuditFields
}
