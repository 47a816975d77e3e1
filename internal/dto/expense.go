package dto

import (
	"time"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SubmitExpenseRequest defines the payload for submitting a new expense.
// ReceiptRef is an opaque handle to an already uploaded receipt, if any.
type SubmitExpenseRequest struct {
	Amount     decimal.Decimal `json:"amount" binding:"required,dgt0"`
	Category   string          `json:"category" binding:"required"`
	Month      int             `json:"month" binding:"required,min=1,max=12"`
	Year       int             `json:"year" binding:"required,min=2000"`
	ReceiptRef *string         `json:"receiptRef"`
}

// ExpenseResponse is the external representation of an expense.
type ExpenseResponse struct {
	ExpenseID    string          `json:"expenseID"`
	OwnerID      string          `json:"ownerID"`
	DepartmentID string          `json:"departmentID"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	ReceiptRef   *string         `json:"receiptRef,omitempty"`
	Status       string          `json:"status"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ExpenseDetail is one expense with its discussion and decision history.
type ExpenseDetail struct {
	Expense   ExpenseResponse    `json:"expense"`
	Comments  []CommentResponse  `json:"comments"`
	Approvals []ApprovalResponse `json:"approvals"`
}

// ToExpenseResponse converts a domain Expense to its response DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:    e.ExpenseID,
		OwnerID:      e.OwnerID,
		DepartmentID: e.DepartmentID,
		Amount:       e.Amount,
		Category:     e.Category,
		ReceiptRef:   e.ReceiptRef,
		Status:       string(e.Status),
		Month:        e.Month,
		Year:         e.Year,
		CreatedAt:    e.CreatedAt,
	}
}

// ToExpenseResponseSlice converts a slice of domain Expenses to DTOs.
func ToExpenseResponseSlice(es []domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(es))
	for i := range es {
		out[i] = ToExpenseResponse(&es[i])
	}
	return out
}
