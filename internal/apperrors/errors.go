package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the authenticated user is not allowed to perform the action.
var ErrForbidden = errors.New("action not permitted")

// ErrBudgetExceeded indicates that a submission would push the department over
// its budget ceiling for the period.
var ErrBudgetExceeded = errors.New("expense exceeds department budget for this period")

// ErrBudgetMissing indicates that no budget period exists for the department
// and (month, year) of a submission.
var ErrBudgetMissing = errors.New("no budget set for department this period")

// ErrWrongApproverTier indicates that the expense amount falls outside the
// approver's tier (manager below threshold, finance at or above).
var ErrWrongApproverTier = errors.New("expense amount is outside approver tier")

// ErrOutOfScope indicates that a manager tried to decide on an expense from
// another department.
var ErrOutOfScope = errors.New("expense is outside approver department")

// ErrAlreadyDecided indicates that this approver already recorded a decision
// on the expense.
var ErrAlreadyDecided = errors.New("approver already decided on this expense")

// AppError carries an internal status code alongside the wrapped cause.
// Used by repositories for failures that have no sentinel kind.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
