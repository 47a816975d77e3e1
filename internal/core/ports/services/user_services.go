package services

import (
	"context"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	"github.com/expenseaudit/expense-audit-backend/internal/dto"
)

// UserSvcFacade handles registration, authentication, and user lookup.
type UserSvcFacade interface {
	// Register creates a new user with a hashed password. Role and
	// department are fixed at registration.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Authenticate verifies credentials and returns the user.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// FindUserByID retrieves a user by their unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
}
