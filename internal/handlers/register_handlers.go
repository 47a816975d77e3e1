package handlers

import (
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/expenseaudit/expense-audit-backend/internal/middleware"
	"github.com/expenseaudit/expense-audit-backend/pkg/config"
	"github.com/gin-gonic/gin"
)

// RegisterHandlers wires every route group onto the router.
func RegisterHandlers(router *gin.Engine, services *portssvc.ServiceContainer, cfg *config.Config) {
	homeHandler := NewHomeHandler()
	authHandler := NewAuthHandler(services.User, cfg)
	departmentHandler := NewDepartmentHandler(services.Department)
	expenseHandler := NewExpenseHandler(services.Expense)
	approvalHandler := NewApprovalHandler(services.Approval)
	budgetHandler := NewBudgetHandler(services.Budget)
	auditHandler := NewAuditHandler(services.Audit)
	commentHandler := NewCommentHandler(services.Comment)
	reportHandler := NewReportHandler(services.Report)

	router.GET("/health", homeHandler.Health)

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Departments are public so the registration form can offer them.
	v1.GET("/departments", departmentHandler.List)

	authenticated := v1.Group("")
	authenticated.Use(middleware.AuthMiddleware(cfg.JWTSecret, services.User))
	{
		expenses := authenticated.Group("/expenses")
		{
			expenses.POST("", expenseHandler.Submit)
			expenses.GET("", expenseHandler.ListMine)
			expenses.GET("/:id", expenseHandler.Get)
			expenses.GET("/:id/audit", auditHandler.ListForExpense)
			expenses.GET("/:id/comments", commentHandler.ListForExpense)
			expenses.POST("/:id/pay", middleware.RequireRoles(string(domain.RoleFinance)), expenseHandler.MarkPaid)
		}

		approvals := authenticated.Group("/approvals")
		approvals.Use(middleware.RequireRoles(string(domain.RoleManager), string(domain.RoleFinance)))
		{
			approvals.POST("", approvalHandler.Create)
			approvals.GET("", approvalHandler.List)
			approvals.PUT("/:id", approvalHandler.Update)
		}

		budgets := authenticated.Group("/budgets")
		{
			budgets.GET("/summary", middleware.RequireRoles(string(domain.RoleManager), string(domain.RoleFinance)), budgetHandler.Summaries)
			budgets.PUT("/:departmentID", middleware.RequireRoles(string(domain.RoleFinance)), budgetHandler.SetBudget)
			budgets.POST("/rollover", middleware.RequireRoles(string(domain.RoleFinance)), budgetHandler.Rollover)
		}

		authenticated.GET("/audit", middleware.RequireRoles(string(domain.RoleFinance)), auditHandler.List)
		authenticated.GET("/reports/expenses", middleware.RequireRoles(string(domain.RoleFinance)), reportHandler.ExpenseReport)
		authenticated.POST("/comments", commentHandler.Add)
	}
}
