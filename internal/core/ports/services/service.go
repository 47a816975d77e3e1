package services

// ServiceContainer bundles the service facades handed to the HTTP layer and
// the scheduler at startup.
type ServiceContainer struct {
	User         UserSvcFacade
	Department   DepartmentSvcFacade
	Budget       BudgetSvcFacade
	Expense      ExpenseSvcFacade
	Approval     ApprovalSvcFacade
	Audit        AuditSvcFacade
	Notification NotificationSvcFacade
	Comment      CommentSvcFacade
	Report       ReportSvcFacade
}
