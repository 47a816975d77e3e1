package domain

import "github.com/shopspring/decimal"

// Budget is the spending ceiling for one department in one (month, year)
// period. Unique per (department, month, year); the amount may be edited by
// finance but a period is never deleted.
type Budget struct {
	BudgetID     string          `json:"budgetID"`
	DepartmentID string          `json:"departmentID"`
	Month        int             `json:"month"` // 1 = January, 12 = December
	Year         int             `json:"year"`
	Amount       decimal.Decimal `json:"amount"`
	AuditFields
}

// RolloverResult reports what a budget rollover did for a period.
// Re-running a rollover for an already seeded period is a no-op reported
// as skipped, never an error.
type RolloverResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// BudgetSummary is the per-department budget overview for a period.
type BudgetSummary struct {
	Department   Department      `json:"department"`
	Budget       *Budget         `json:"budget,omitempty"`
	BudgetAmount decimal.Decimal `json:"budgetAmount"`
	TotalSpent   decimal.Decimal `json:"totalSpent"`
	TotalPending decimal.Decimal `json:"totalPending"`
	Remaining    decimal.Decimal `json:"remaining"`
	PercentUsed  int             `json:"percentUsed"`
	Exceeded     bool            `json:"exceeded"`
}
