package middleware

import (
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// principalKey is the key used to store the authenticated user in the
// request context.
const principalKey = contextKey("principal")

// GetPrincipalFromContext retrieves the authenticated user from the Gin
// context. Returns false when no authenticated user is present.
func GetPrincipalFromContext(c *gin.Context) (*domain.User, bool) {
	val := c.Request.Context().Value(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*domain.User)
	if !ok {
		return nil, false
	}
	return principal, true
}
