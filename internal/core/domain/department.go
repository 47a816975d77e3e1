package domain

import "github.com/shopspring/decimal"

// Department groups users and carries the default monthly budget ceiling
// that seeds new budget periods on rollover.
type Department struct {
	DepartmentID  string          `json:"departmentID"`
	Name          string          `json:"name"`
	DefaultBudget decimal.Decimal `json:"defaultBudget"`
	AuditFields
}
