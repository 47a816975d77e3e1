package repositories

import (
	"context"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by their unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email address (login path).
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsersByRole retrieves all users holding the given role.
	ListUsersByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)

	// ListManagersByDepartment retrieves every manager of a department.
	ListManagersByDepartment(ctx context.Context, departmentID string) ([]domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the
	// email is already registered.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
