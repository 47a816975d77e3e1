package handlers

import (
	"net/http"

	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/expenseaudit/expense-audit-backend/internal/dto"
	"github.com/expenseaudit/expense-audit-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ExpenseHandler handles the expense lifecycle endpoints.
type ExpenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService portssvc.ExpenseSvcFacade) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Submit godoc
// @Summary Submit a new expense
// @Description Creates an expense in submitted state, checked against the department budget
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input, budget missing, or budget exceeded"
// @Router /expenses [post]
func (h *ExpenseHandler) Submit(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SubmitExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.expenseService.SubmitExpense(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// ListMine godoc
// @Summary List own expenses
// @Description Retrieves the authenticated user's expenses, newest first
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ExpenseResponse
// @Router /expenses [get]
func (h *ExpenseHandler) ListMine(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	expenses, err := h.expenseService.ListMyExpenses(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponseSlice(expenses))
}

// Get godoc
// @Summary Get one expense
// @Description Retrieves an expense with its comments and decision history
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseDetail
// @Failure 404 {object} map[string]string "Expense not found"
// @Router /expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	detail, err := h.expenseService.GetExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// MarkPaid godoc
// @Summary Mark an approved expense as paid
// @Description Finance-only administrative transition from approved to paid
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Expense is not approved"
// @Failure 403 {object} map[string]string "Finance only"
// @Failure 404 {object} map[string]string "Expense not found"
// @Router /expenses/{id}/pay [post]
func (h *ExpenseHandler) MarkPaid(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	expense, err := h.expenseService.MarkPaid(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}
