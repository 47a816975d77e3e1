package services

import (
	"context"
	"fmt"
	"time"

	"github.com/expenseaudit/expense-audit-backend/internal/apperrors"
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	portsrepo "github.com/expenseaudit/expense-audit-backend/internal/core/ports/repositories"
	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/google/uuid"
)

// auditService exposes the append-only compliance trail. Workflow writes
// go through the repository transactions of the expense and approval
// services; Record exists for standalone entries.
type auditService struct {
	auditRepo portsrepo.AuditLogRepositoryFacade
}

// NewAuditService creates a new AuditService.
func NewAuditService(ar portsrepo.AuditLogRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: ar}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

func (s *auditService) Record(ctx context.Context, expenseID, performedBy string, action domain.AuditAction) (*domain.AuditLog, error) {
	if expenseID == "" || performedBy == "" {
		return nil, fmt.Errorf("%w: expense and actor are required", apperrors.ErrValidation)
	}

	entry := domain.AuditLog{
		AuditLogID:  uuid.NewString(),
		ExpenseID:   expenseID,
		PerformedBy: performedBy,
		Action:      action,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.auditRepo.SaveAuditLog(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record audit entry: %w", err)
	}
	return &entry, nil
}

func (s *auditService) ListForExpense(ctx context.Context, expenseID string) ([]domain.AuditLog, error) {
	return s.ListAll(ctx, &expenseID)
}

func (s *auditService) ListAll(ctx context.Context, expenseID *string) ([]domain.AuditLog, error) {
	entries, err := s.auditRepo.ListAuditLogs(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	if entries == nil {
		entries = []domain.AuditLog{}
	}
	return entries, nil
}
