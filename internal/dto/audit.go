package dto

import (
	"time"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
)

// AuditLogResponse is the external representation of one audit entry.
type AuditLogResponse struct {
	AuditLogID  string    `json:"auditLogID"`
	ExpenseID   string    `json:"expenseID"`
	PerformedBy string    `json:"performedBy"`
	Action      string    `json:"action"`
	Timestamp   time.Time `json:"timestamp"`
}

// ToAuditLogResponse converts a domain AuditLog to its response DTO.
func ToAuditLogResponse(e *domain.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		AuditLogID:  e.AuditLogID,
		ExpenseID:   e.ExpenseID,
		PerformedBy: e.PerformedBy,
		Action:      string(e.Action),
		Timestamp:   e.Timestamp,
	}
}

// ToAuditLogResponseSlice converts a slice of domain AuditLogs to DTOs.
func ToAuditLogResponseSlice(es []domain.AuditLog) []AuditLogResponse {
	out := make([]AuditLogResponse, len(es))
	for i := range es {
		out[i] = ToAuditLogResponse(&es[i])
	}
	return out
}
