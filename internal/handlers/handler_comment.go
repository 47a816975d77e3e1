package handlers

import (
	"net/http"

	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/expenseaudit/expense-audit-backend/internal/dto"
	"github.com/expenseaudit/expense-audit-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CommentHandler handles expense comment endpoints.
type CommentHandler struct {
	commentService portssvc.CommentSvcFacade
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService portssvc.CommentSvcFacade) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Add godoc
// @Summary Comment on an expense
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddCommentRequest true "Comment details"
// @Success 201 {object} dto.CommentResponse
// @Failure 404 {object} map[string]string "Expense not found"
// @Router /comments [post]
func (h *CommentHandler) Add(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

// ListForExpense godoc
// @Summary List an expense's comments
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Success 200 {array} dto.CommentResponse
// @Router /expenses/{id}/comments [get]
func (h *CommentHandler) ListForExpense(c *gin.Context) {
	comments, err := h.commentService.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponseSlice(comments))
}
