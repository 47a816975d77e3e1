package pgsql

import (
	"context"
	"fmt"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	portsrepo "github.com/expenseaudit/expense-audit-backend/internal/core/ports/repositories"
	"github.com/expenseaudit/expense-audit-backend/internal/models"
	"github.com/expenseaudit/expense-audit-backend/internal/utils/mapping"
)

type commentRepository struct {
	baseRepository
}

var _ portsrepo.CommentRepositoryFacade = (*commentRepository)(nil)

const commentColumns = `comment_id, expense_id, author_id, text, timestamp`

func (r *commentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	m := mapping.ToModelComment(comment)
	_, err := r.pool.Exec(ctx,
		`INSERT INTO comments (`+commentColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		m.CommentID, m.ExpenseID, m.AuthorID, m.Text, m.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

func (r *commentRepository) ListCommentsByExpense(ctx context.Context, expenseID string) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE expense_id = $1 ORDER BY timestamp ASC`,
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var ms []models.Comment
	for rows.Next() {
		var m models.Comment
		if err := rows.Scan(&m.CommentID, &m.ExpenseID, &m.AuthorID, &m.Text, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comment rows: %w", err)
	}
	return mapping.ToDomainCommentSlice(ms), nil
}
