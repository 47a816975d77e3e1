package dto

import (
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetBudgetRequest defines the payload for setting a period's ceiling.
type SetBudgetRequest struct {
	Month  int             `json:"month" binding:"required,min=1,max=12"`
	Year   int             `json:"year" binding:"required,min=2000"`
	Amount decimal.Decimal `json:"amount" binding:"required,dgt0"`
}

// RolloverRequest defines the payload for a manual budget rollover.
type RolloverRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000"`
}

// BudgetResponse is the external representation of a budget period.
type BudgetResponse struct {
	BudgetID     string          `json:"budgetID"`
	DepartmentID string          `json:"departmentID"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	Amount       decimal.Decimal `json:"amount"`
}

// BudgetSummaryResponse is the per-department overview row.
type BudgetSummaryResponse struct {
	DepartmentID   string          `json:"departmentID"`
	DepartmentName string          `json:"departmentName"`
	BudgetAmount   decimal.Decimal `json:"budgetAmount"`
	TotalSpent     decimal.Decimal `json:"totalSpent"`
	TotalPending   decimal.Decimal `json:"totalPending"`
	Remaining      decimal.Decimal `json:"remaining"`
	PercentUsed    int             `json:"percentUsed"`
	Exceeded       bool            `json:"exceeded"`
	HasBudget      bool            `json:"hasBudget"`
}

// ToBudgetResponse converts a domain Budget to its response DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:     b.BudgetID,
		DepartmentID: b.DepartmentID,
		Month:        b.Month,
		Year:         b.Year,
		Amount:       b.Amount,
	}
}

// ToBudgetSummaryResponse converts a domain BudgetSummary to its DTO.
func ToBudgetSummaryResponse(s *domain.BudgetSummary) BudgetSummaryResponse {
	return BudgetSummaryResponse{
		DepartmentID:   s.Department.DepartmentID,
		DepartmentName: s.Department.Name,
		BudgetAmount:   s.BudgetAmount,
		TotalSpent:     s.TotalSpent,
		TotalPending:   s.TotalPending,
		Remaining:      s.Remaining,
		PercentUsed:    s.PercentUsed,
		Exceeded:       s.Exceeded,
		HasBudget:      s.Budget != nil,
	}
}
