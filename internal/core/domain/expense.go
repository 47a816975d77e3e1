package domain

import "github.com/shopspring/decimal"

// ExpenseStatus tracks where an expense is in the approval workflow.
type ExpenseStatus string

const (
	StatusSubmitted ExpenseStatus = "submitted"
	StatusApproved  ExpenseStatus = "approved"
	StatusRejected  ExpenseStatus = "rejected"
	StatusPaid      ExpenseStatus = "paid"
)

// Expense is a spend request submitted by an employee against their
// department's budget for a given period. The department is frozen at
// submission time; later transfers of the owner do not retarget it.
type Expense struct {
	ExpenseID    string          `json:"expenseID"`
	OwnerID      string          `json:"ownerID"`
	DepartmentID string          `json:"departmentID"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	ReceiptRef   *string         `json:"receiptRef,omitempty"`
	Status       ExpenseStatus   `json:"status"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	AuditFields
}

// PendingFilter selects submitted expenses awaiting a particular approver
// tier. MaxAmountExclusive bounds the manager tier, MinAmountInclusive the
// finance tier; DepartmentID scopes managers to their own department.
type PendingFilter struct {
	DepartmentID       *string
	MaxAmountExclusive *decimal.Decimal
	MinAmountInclusive *decimal.Decimal
	ExcludeDecidedBy   string
}
