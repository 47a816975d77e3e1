package mapping

import (
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	"github.com/expenseaudit/expense-audit-backend/internal/models"
)

// ToModelComment converts a domain Comment to a model Comment.
func ToModelComment(d domain.Comment) models.Comment {
	return models.Comment{
		CommentID: d.CommentID,
		ExpenseID: d.ExpenseID,
		AuthorID:  d.AuthorID,
		Text:      d.Text,
		Timestamp: d.Timestamp,
	}
}

// ToDomainComment converts a model Comment to a domain Comment.
func ToDomainComment(m models.Comment) domain.Comment {
	return domain.Comment{
		CommentID: m.CommentID,
		ExpenseID: m.ExpenseID,
		AuthorID:  m.AuthorID,
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
}

// ToDomainCommentSlice converts a slice of model Comments.
func ToDomainCommentSlice(ms []models.Comment) []domain.Comment {
	ds := make([]domain.Comment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainComment(m)
	}
	return ds
}
