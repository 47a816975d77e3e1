package dto

import (
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DepartmentResponse is the external representation of a department.
type DepartmentResponse struct {
	DepartmentID  string          `json:"departmentID"`
	Name          string          `json:"name"`
	DefaultBudget decimal.Decimal `json:"defaultBudget"`
}

// ToDepartmentResponse converts a domain Department to its response DTO.
func ToDepartmentResponse(d *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		DepartmentID:  d.DepartmentID,
		Name:          d.Name,
		DefaultBudget: d.DefaultBudget,
	}
}

// ToDepartmentResponseSlice converts a slice of domain Departments to DTOs.
func ToDepartmentResponseSlice(ds []domain.Department) []DepartmentResponse {
	out := make([]DepartmentResponse, len(ds))
	for i := range ds {
		out[i] = ToDepartmentResponse(&ds[i])
	}
	return out
}
