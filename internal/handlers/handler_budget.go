package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/expenseaudit/expense-audit-backend/internal/dto"
	"github.com/expenseaudit/expense-audit-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// BudgetHandler handles budget ledger endpoints.
type BudgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService portssvc.BudgetSvcFacade) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

func periodFromQuery(c *gin.Context) (int, int, bool) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month query parameter is required"})
		return 0, 0, false
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year query parameter is required"})
		return 0, 0, false
	}
	return month, year, true
}

// Summaries godoc
// @Summary Per-department budget overview
// @Description Spend, pending, and remaining amounts per department for a period. Managers see their own department, finance sees all.
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {array} dto.BudgetSummaryResponse
// @Failure 403 {object} map[string]string "Employees have no budget view"
// @Router /budgets/summary [get]
func (h *BudgetHandler) Summaries(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	month, year, ok := periodFromQuery(c)
	if !ok {
		return
	}

	summaries, err := h.budgetService.Summaries(c.Request.Context(), principal, month, year)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.BudgetSummaryResponse, len(summaries))
	for i := range summaries {
		out[i] = dto.ToBudgetSummaryResponse(&summaries[i])
	}
	c.JSON(http.StatusOK, out)
}

// SetBudget godoc
// @Summary Set a department's budget for a period
// @Description Creates or replaces the period ceiling and updates the department default
// @Tags budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param departmentID path string true "Department ID"
// @Param request body dto.SetBudgetRequest true "Period and amount"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid amount or period"
// @Failure 404 {object} map[string]string "Department not found"
// @Router /budgets/{departmentID} [put]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	budget, err := h.budgetService.SetAmount(c.Request.Context(), c.Param("departmentID"), req.Month, req.Year, req.Amount, principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// Rollover godoc
// @Summary Seed budget periods for a month
// @Description Creates a budget period from each department's default where none exists. Idempotent.
// @Tags budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RolloverRequest true "Period to seed"
// @Success 200 {object} domain.RolloverResult
// @Router /budgets/rollover [post]
func (h *BudgetHandler) Rollover(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.RolloverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.budgetService.Rollover(c.Request.Context(), req.Month, req.Year, principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
