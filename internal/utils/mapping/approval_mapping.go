package mapping

import (
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	"github.com/expenseaudit/expense-audit-backend/internal/models"
)

// ToModelApproval converts a domain Approval to a model Approval.
func ToModelApproval(d domain.Approval) models.Approval {
	return models.Approval{
		ApprovalID:  d.ApprovalID,
		ExpenseID:   d.ExpenseID,
		ApproverID:  d.ApproverID,
		Decision:    string(d.Decision),
		Comments:    d.Comments,
		AuditFields: toModelAuditFields(d.AuditFields),
	}
}

// ToDomainApproval converts a model Approval to a domain Approval.
func ToDomainApproval(m models.Approval) domain.Approval {
	return domain.Approval{
		ApprovalID:  m.ApprovalID,
		ExpenseID:   m.ExpenseID,
		ApproverID:  m.ApproverID,
		Decision:    domain.ApprovalDecision(m.Decision),
		Comments:    m.Comments,
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainApprovalSlice converts a slice of model Approvals.
func ToDomainApprovalSlice(ms []models.Approval) []domain.Approval {
	ds := make([]domain.Approval, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainApproval(m)
	}
	return ds
}
