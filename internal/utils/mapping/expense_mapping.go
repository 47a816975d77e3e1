package mapping

import (
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	"github.com/expenseaudit/expense-audit-backend/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense.
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:    d.ExpenseID,
		OwnerID:      d.OwnerID,
		DepartmentID: d.DepartmentID,
		Amount:       d.Amount,
		Category:     d.Category,
		ReceiptRef:   d.ReceiptRef,
		Status:       string(d.Status),
		Month:        d.Month,
		Year:         d.Year,
		AuditFields:  toModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense.
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:    m.ExpenseID,
		OwnerID:      m.OwnerID,
		DepartmentID: m.DepartmentID,
		Amount:       m.Amount,
		Category:     m.Category,
		ReceiptRef:   m.ReceiptRef,
		Status:       domain.ExpenseStatus(m.Status),
		Month:        m.Month,
		Year:         m.Year,
		AuditFields:  toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses.
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
