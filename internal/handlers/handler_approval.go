package handlers

import (
	"net/http"

	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/expenseaudit/expense-audit-backend/internal/dto"
	"github.com/expenseaudit/expense-audit-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ApprovalHandler handles decision endpoints.
type ApprovalHandler struct {
	approvalService portssvc.ApprovalSvcFacade
}

// NewApprovalHandler creates a new ApprovalHandler.
func NewApprovalHandler(approvalService portssvc.ApprovalSvcFacade) *ApprovalHandler {
	return &ApprovalHandler{approvalService: approvalService}
}

// Create godoc
// @Summary Record a decision on an expense
// @Description Approves or rejects a submitted expense after tier and scope checks
// @Tags approvals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateApprovalRequest true "Decision details"
// @Success 201 {object} dto.ApprovalResponse
// @Failure 400 {object} map[string]string "Invalid input or already decided"
// @Failure 403 {object} map[string]string "Wrong tier or out of scope"
// @Failure 404 {object} map[string]string "Expense not found"
// @Router /approvals [post]
func (h *ApprovalHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	approval, err := h.approvalService.CreateApproval(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToApprovalResponse(approval))
}

// Update godoc
// @Summary Amend an existing decision
// @Description Replaces the decision and comments; only the original approver may amend
// @Tags approvals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Approval ID"
// @Param request body dto.UpdateApprovalRequest true "New decision"
// @Success 200 {object} dto.ApprovalResponse
// @Failure 403 {object} map[string]string "Not the original approver"
// @Failure 404 {object} map[string]string "Approval not found"
// @Router /approvals/{id} [put]
func (h *ApprovalHandler) Update(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	approval, err := h.approvalService.UpdateApproval(c.Request.Context(), principal, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToApprovalResponse(approval))
}

// List godoc
// @Summary List pending expenses and past decisions
// @Description Expenses awaiting the caller's tier plus the decisions they already made
// @Tags approvals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ApprovalsOverview
// @Failure 403 {object} map[string]string "Employees have no approval queue"
// @Router /approvals [get]
func (h *ApprovalHandler) List(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	overview, err := h.approvalService.ListApprovals(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
