package dto

import (
	"time"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
)

// AddCommentRequest defines the payload for commenting on an expense.
type AddCommentRequest struct {
	ExpenseID string `json:"expenseID" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

// CommentResponse is the external representation of a comment.
type CommentResponse struct {
	CommentID string    `json:"commentID"`
	ExpenseID string    `json:"expenseID"`
	AuthorID  string    `json:"authorID"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ToCommentResponse converts a domain Comment to its response DTO.
func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID: c.CommentID,
		ExpenseID: c.ExpenseID,
		AuthorID:  c.AuthorID,
		Text:      c.Text,
		Timestamp: c.Timestamp,
	}
}

// ToCommentResponseSlice converts a slice of domain Comments to DTOs.
func ToCommentResponseSlice(cs []domain.Comment) []CommentResponse {
	out := make([]CommentResponse, len(cs))
	for i := range cs {
		out[i] = ToCommentResponse(&cs[i])
	}
	return out
}
