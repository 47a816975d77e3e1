package services

import (
	"context"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	"github.com/expenseaudit/expense-audit-backend/internal/dto"
)

// CommentSvcFacade handles informational comments on expenses.
type CommentSvcFacade interface {
	// AddComment attaches a comment to an expense.
	AddComment(ctx context.Context, author *domain.User, req dto.AddCommentRequest) (*domain.Comment, error)

	// ListComments retrieves an expense's comments, oldest first.
	ListComments(ctx context.Context, expenseID string) ([]domain.Comment, error)
}
