package domain

import "time"

// Comment is a free-form note attached to an expense. Informational only;
// comments play no part in routing or budget decisions.
type Comment struct {
	CommentID string    `json:"commentID"`
	ExpenseID string    `json:"expenseID"`
	AuthorID  string    `json:"authorID"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
