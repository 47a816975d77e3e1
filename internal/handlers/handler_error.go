package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/expenseaudit/expense-audit-backend/internal/apperrors"
	"github.com/expenseaudit/expense-audit-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps application errors to HTTP responses. Workflow
// refusals (tier, scope) are 403; state conflicts that callers can fix by
// changing the request are 400; duplicates are 409.
func respondError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrBudgetExceeded),
		errors.Is(err, apperrors.ErrBudgetMissing),
		errors.Is(err, apperrors.ErrAlreadyDecided):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrForbidden),
		errors.Is(err, apperrors.ErrWrongApproverTier),
		errors.Is(err, apperrors.ErrOutOfScope):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unhandled error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		c.JSON(status, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
