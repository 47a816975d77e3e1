package mapping

import (
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	"github.com/expenseaudit/expense-audit-backend/internal/models"
)

// ToModelBudget converts a domain Budget to a model Budget.
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:     d.BudgetID,
		DepartmentID: d.DepartmentID,
		Month:        d.Month,
		Year:         d.Year,
		Amount:       d.Amount,
		AuditFields:  toModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudget converts a model Budget to a domain Budget.
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:     m.BudgetID,
		DepartmentID: m.DepartmentID,
		Month:        m.Month,
		Year:         m.Year,
		Amount:       m.Amount,
		AuditFields:  toDomainAuditFields(m.AuditFields),
	}
}
