package mapping

import (
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	"github.com/expenseaudit/expense-audit-backend/internal/models"
)

// ToModelDepartment converts a domain Department to a model Department.
func ToModelDepartment(d domain.Department) models.Department {
	return models.Department{
		DepartmentID:  d.DepartmentID,
		Name:          d.Name,
		DefaultBudget: d.DefaultBudget,
		AuditFields:   toModelAuditFields(d.AuditFields),
	}
}

// ToDomainDepartment converts a model Department to a domain Department.
func ToDomainDepartment(m models.Department) domain.Department {
	return domain.Department{
		DepartmentID:  m.DepartmentID,
		Name:          m.Name,
		DefaultBudget: m.DefaultBudget,
		AuditFields:   toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDepartmentSlice converts a slice of model Departments.
func ToDomainDepartmentSlice(ms []models.Department) []domain.Department {
	ds := make([]domain.Department, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDepartment(m)
	}
	return ds
}
