package services

import (
	"context"
	"fmt"
	"time"

	"github.com/expenseaudit/expense-audit-backend/internal/apperrors"
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	portsrepo "github.com/expenseaudit/expense-audit-backend/internal/core/ports/repositories"
	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/expenseaudit/expense-audit-backend/internal/dto"
	"github.com/google/uuid"
)

type commentService struct {
	commentRepo portsrepo.CommentRepositoryFacade
	expenseRepo portsrepo.ExpenseReader
}

// NewCommentService creates a new CommentService.
func NewCommentService(cr portsrepo.CommentRepositoryFacade, er portsrepo.ExpenseReader) portssvc.CommentSvcFacade {
	return &commentService{commentRepo: cr, expenseRepo: er}
}

var _ portssvc.CommentSvcFacade = (*commentService)(nil)

// AddComment attaches a note to an expense. Comments are informational
// only and never affect routing or budgets.
func (s *commentService) AddComment(ctx context.Context, author *domain.User, req dto.AddCommentRequest) (*domain.Comment, error) {
	if req.Text == "" {
		return nil, fmt.Errorf("%w: comment text is required", apperrors.ErrValidation)
	}

	if _, err := s.expenseRepo.FindExpenseByID(ctx, req.ExpenseID); err != nil {
		return nil, err
	}

	comment := domain.Comment{
		CommentID: uuid.NewString(),
		ExpenseID: req.ExpenseID,
		AuthorID:  author.UserID,
		Text:      req.Text,
		Timestamp: time.Now().UTC(),
	}
	if err := s.commentRepo.SaveComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}
	return &comment, nil
}

func (s *commentService) ListComments(ctx context.Context, expenseID string) ([]domain.Comment, error) {
	comments, err := s.commentRepo.ListCommentsByExpense(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments, nil
}
