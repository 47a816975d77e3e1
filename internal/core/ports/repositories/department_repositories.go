package repositories

import (
	"context"
	"time"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DepartmentReader defines read operations for department data.
type DepartmentReader interface {
	// FindDepartmentByID retrieves a department by its unique identifier.
	FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)

	// ListDepartments retrieves all departments ordered by name.
	ListDepartments(ctx context.Context) ([]domain.Department, error)
}

// DepartmentWriter defines write operations for department data.
type DepartmentWriter interface {
	// SaveDepartment persists a new department. Returns apperrors.ErrDuplicate
	// when the name is already taken.
	SaveDepartment(ctx context.Context, department domain.Department) error

	// UpdateDefaultBudget updates the default ceiling future rollovers inherit.
	UpdateDefaultBudget(ctx context.Context, departmentID string, amount decimal.Decimal, updatedBy string, updatedAt time.Time) error
}

// DepartmentRepositoryFacade combines all department repository interfaces.
type DepartmentRepositoryFacade interface {
	DepartmentReader
	DepartmentWriter
}
