package models

import "time"

// Comment is the database representation of a comment.
type Comment struct {
	CommentID string    `db:"comment_id"`
	ExpenseID string    `db:"expense_id"`
	AuthorID  string    `db:"author_id"`
	Text      string    `db:"text"`
	Timestamp time.Time `db:"timestamp"`
}
