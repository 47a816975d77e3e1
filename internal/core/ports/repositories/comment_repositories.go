package repositories

import (
	"context"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
)

// CommentRepositoryFacade defines comment persistence operations.
type CommentRepositoryFacade interface {
	// SaveComment persists a new comment.
	SaveComment(ctx context.Context, comment domain.Comment) error

	// ListCommentsByExpense retrieves an expense's comments, oldest first.
	ListCommentsByExpense(ctx context.Context, expenseID string) ([]domain.Comment, error)
}
