package domain

// ApprovalDecision is the closed set of decisions an approver can record.
type ApprovalDecision string

const (
	DecisionApproved ApprovalDecision = "approved"
	DecisionRejected ApprovalDecision = "rejected"
)

// IsValid reports whether the decision is one of the known values.
func (d ApprovalDecision) IsValid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// Status returns the expense status implied by the decision.
func (d ApprovalDecision) Status() ExpenseStatus {
	if d == DecisionApproved {
		return StatusApproved
	}
	return StatusRejected
}

// Approval records one approver's decision on one expense. At most one
// Approval exists per (expense, approver); later amendments replace the
// decision and comments on this record rather than creating a second one.
type Approval struct {
	ApprovalID string           `json:"approvalID"`
	ExpenseID  string           `json:"expenseID"`
	ApproverID string           `json:"approverID"`
	Decision   ApprovalDecision `json:"decision"`
	Comments   string           `json:"comments"`
	AuditFields
}
