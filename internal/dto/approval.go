package dto

import (
	"time"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
)

// CreateApprovalRequest defines the payload for recording a new decision.
type CreateApprovalRequest struct {
	ExpenseID string `json:"expenseID" binding:"required"`
	Decision  string `json:"decision" binding:"required,oneof=approved rejected"`
	Comments  string `json:"comments"`
}

// UpdateApprovalRequest defines the payload for amending an existing
// decision. The full decision and comments are replaced.
type UpdateApprovalRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected"`
	Comments string `json:"comments"`
}

// ApprovalResponse is the external representation of an approval.
type ApprovalResponse struct {
	ApprovalID string    `json:"approvalID"`
	ExpenseID  string    `json:"expenseID"`
	ApproverID string    `json:"approverID"`
	Decision   string    `json:"decision"`
	Comments   string    `json:"comments"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ApprovalsOverview pairs the expenses awaiting an approver with the
// decisions they already made.
type ApprovalsOverview struct {
	Pending       []ExpenseResponse  `json:"pending"`
	PastDecisions []ApprovalResponse `json:"pastDecisions"`
}

// ToApprovalResponse converts a domain Approval to its response DTO.
func ToApprovalResponse(a *domain.Approval) ApprovalResponse {
	return ApprovalResponse{
		ApprovalID: a.ApprovalID,
		ExpenseID:  a.ExpenseID,
		ApproverID: a.ApproverID,
		Decision:   string(a.Decision),
		Comments:   a.Comments,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.LastUpdatedAt,
	}
}

// ToApprovalResponseSlice converts a slice of domain Approvals to DTOs.
func ToApprovalResponseSlice(as []domain.Approval) []ApprovalResponse {
	out := make([]ApprovalResponse, len(as))
	for i := range as {
		out[i] = ToApprovalResponse(&as[i])
	}
	return out
}
