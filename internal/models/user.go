package models

// User is the database representation of a user.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	DepartmentID string `db:"department_id"`
	AuditFields
}
