package domain

// UserRole is the closed set of roles a user can hold. Role is assigned at
// registration and never changes afterwards.
type UserRole string

const (
	RoleEmployee UserRole = "employee"
	RoleManager  UserRole = "manager"
	RoleFinance  UserRole = "finance"
)

// IsValid reports whether the role is one of the known values.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleFinance:
		return true
	}
	return false
}

// User represents an authenticated principal: an employee, a department
// manager, or a finance user.
type User struct {
	UserID       string   `json:"userID"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	DepartmentID string   `json:"departmentID"`
	AuditFields
}
