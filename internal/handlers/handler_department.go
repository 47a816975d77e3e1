package handlers

import (
	"net/http"

	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/expenseaudit/expense-audit-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// DepartmentHandler handles department lookups.
type DepartmentHandler struct {
	departmentService portssvc.DepartmentSvcFacade
}

// NewDepartmentHandler creates a new DepartmentHandler.
func NewDepartmentHandler(departmentService portssvc.DepartmentSvcFacade) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// List godoc
// @Summary List departments
// @Tags departments
// @Produce json
// @Success 200 {array} dto.DepartmentResponse
// @Router /departments [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	departments, err := h.departmentService.ListDepartments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDepartmentResponseSlice(departments))
}
