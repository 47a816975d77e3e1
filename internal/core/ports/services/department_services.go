package services

import (
	"context"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
)

// DepartmentSvcFacade exposes department lookups for registration and views.
type DepartmentSvcFacade interface {
	// ListDepartments retrieves all departments ordered by name.
	ListDepartments(ctx context.Context) ([]domain.Department, error)

	// FindDepartmentByID retrieves a department by its unique identifier.
	FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)
}
