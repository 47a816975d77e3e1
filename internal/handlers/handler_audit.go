package handlers

import (
	"net/http"

	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/expenseaudit/expense-audit-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// AuditHandler exposes the compliance trail.
type AuditHandler struct {
	auditService portssvc.AuditSvcFacade
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditService portssvc.AuditSvcFacade) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List godoc
// @Summary List audit entries
// @Description All audit entries newest first, optionally filtered to one expense
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param expenseID query string false "Filter by expense"
// @Success 200 {array} dto.AuditLogResponse
// @Router /audit [get]
func (h *AuditHandler) List(c *gin.Context) {
	var expenseID *string
	if v := c.Query("expenseID"); v != "" {
		expenseID = &v
	}

	entries, err := h.auditService.ListAll(c.Request.Context(), expenseID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuditLogResponseSlice(entries))
}

// ListForExpense godoc
// @Summary List audit entries for one expense
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Success 200 {array} dto.AuditLogResponse
// @Router /expenses/{id}/audit [get]
func (h *AuditHandler) ListForExpense(c *gin.Context) {
	entries, err := h.auditService.ListForExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuditLogResponseSlice(entries))
}
