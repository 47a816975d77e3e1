package services

import (
	"context"
	"fmt"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	portsrepo "github.com/expenseaudit/expense-audit-backend/internal/core/ports/repositories"
	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
)

type departmentService struct {
	departmentRepo portsrepo.DepartmentRepositoryFacade
}

// NewDepartmentService creates a new DepartmentService.
func NewDepartmentService(dr portsrepo.DepartmentRepositoryFacade) portssvc.DepartmentSvcFacade {
	return &departmentService{departmentRepo: dr}
}

var _ portssvc.DepartmentSvcFacade = (*departmentService)(nil)

func (s *departmentService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.departmentRepo.ListDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	if departments == nil {
		departments = []domain.Department{}
	}
	return departments, nil
}

func (s *departmentService) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	return s.departmentRepo.FindDepartmentByID(ctx, departmentID)
}
