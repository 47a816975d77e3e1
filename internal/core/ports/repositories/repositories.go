package repositories

// RepositoryProvider bundles the repository implementations handed to the
// service container at startup.
type RepositoryProvider struct {
	UserRepo       UserRepositoryFacade
	DepartmentRepo DepartmentRepositoryFacade
	BudgetRepo     BudgetRepositoryFacade
	ExpenseRepo    ExpenseRepositoryFacade
	ApprovalRepo   ApprovalRepositoryFacade
	AuditLogRepo   AuditLogRepositoryFacade
	CommentRepo    CommentRepositoryFacade
}
