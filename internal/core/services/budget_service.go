package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/expenseaudit/expense-audit-backend/internal/apperrors"
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	portsrepo "github.com/expenseaudit/expense-audit-backend/internal/core/ports/repositories"
	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/expenseaudit/expense-audit-backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// budgetService is the budget ledger: per-department, per-period ceilings
// and their consumption.
type budgetService struct {
	budgetRepo     portsrepo.BudgetRepositoryFacade
	departmentRepo portsrepo.DepartmentRepositoryFacade
	expenseRepo    portsrepo.ExpenseReader
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(br portsrepo.BudgetRepositoryFacade, dr portsrepo.DepartmentRepositoryFacade, er portsrepo.ExpenseReader) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo:     br,
		departmentRepo: dr,
		expenseRepo:    er,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// consumingStatuses are the expense statuses that count toward budget
// consumption. Submitted and rejected expenses never do.
var consumingStatuses = []domain.ExpenseStatus{domain.StatusApproved, domain.StatusPaid}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}
	if year < 2000 {
		return fmt.Errorf("%w: year %d is not a valid period", apperrors.ErrValidation, year)
	}
	return nil
}

// GetPeriod retrieves the budget period for (department, month, year).
func (s *budgetService) GetPeriod(ctx context.Context, departmentID string, month, year int) (*domain.Budget, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	return s.budgetRepo.FindBudget(ctx, departmentID, month, year)
}

// ConsumedAmount sums approved and paid expense amounts for the period.
func (s *budgetService) ConsumedAmount(ctx context.Context, departmentID string, month, year int) (decimal.Decimal, error) {
	if err := validatePeriod(month, year); err != nil {
		return decimal.Zero, err
	}
	return s.expenseRepo.SumAmountByStatus(ctx, departmentID, month, year, consumingStatuses)
}

// WouldExceed reports whether adding candidateAmount would breach the
// period's ceiling. ErrBudgetMissing when no period exists; whether that
// blocks or merely warns is the caller's policy.
func (s *budgetService) WouldExceed(ctx context.Context, departmentID string, month, year int, candidateAmount decimal.Decimal) (bool, error) {
	budget, err := s.budgetRepo.FindBudget(ctx, departmentID, month, year)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, apperrors.ErrBudgetMissing
		}
		return false, fmt.Errorf("failed to look up budget period: %w", err)
	}

	consumed, err := s.expenseRepo.SumAmountByStatus(ctx, departmentID, month, year, consumingStatuses)
	if err != nil {
		return false, fmt.Errorf("failed to compute consumed amount: %w", err)
	}

	return consumed.Add(candidateAmount).GreaterThan(budget.Amount), nil
}

// Rollover seeds a budget period for every department that lacks one,
// using each department's default ceiling. Idempotent: already seeded
// departments are counted as skipped, never treated as an error.
func (s *budgetService) Rollover(ctx context.Context, month, year int, performedBy string) (*domain.RolloverResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	departments, err := s.departmentRepo.ListDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments for rollover: %w", err)
	}

	now := time.Now().UTC()
	result := &domain.RolloverResult{}
	for _, dept := range departments {
		budget := domain.Budget{
			BudgetID:     uuid.NewString(),
			DepartmentID: dept.DepartmentID,
			Month:        month,
			Year:         year,
			Amount:       dept.DefaultBudget,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     performedBy,
				LastUpdatedAt: now,
				LastUpdatedBy: performedBy,
			},
		}

		created, err := s.budgetRepo.CreateBudgetIfAbsent(ctx, budget)
		if err != nil {
			return nil, fmt.Errorf("failed to seed budget for department %s: %w", dept.DepartmentID, err)
		}
		if created {
			result.Created++
			logger.Info("Budget period seeded",
				slog.String("department", dept.Name),
				slog.Int("month", month),
				slog.Int("year", year),
				slog.String("amount", dept.DefaultBudget.String()),
			)
		} else {
			result.Skipped++
		}
	}

	logger.Info("Budget rollover completed", slog.Int("created", result.Created), slog.Int("skipped", result.Skipped))
	return result, nil
}

// SetAmount upserts the period's ceiling and updates the department default
// so future rollovers inherit it.
func (s *budgetService) SetAmount(ctx context.Context, departmentID string, month, year int, amount decimal.Decimal, performedBy string) (*domain.Budget, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: budget amount must be greater than zero", apperrors.ErrValidation)
	}

	if _, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	budget := domain.Budget{
		BudgetID:     uuid.NewString(),
		DepartmentID: departmentID,
		Month:        month,
		Year:         year,
		Amount:       amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     performedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: performedBy,
		},
	}

	if err := s.budgetRepo.UpsertBudget(ctx, budget); err != nil {
		logger.Error("Failed to upsert budget period", slog.String("error", err.Error()), slog.String("department_id", departmentID))
		return nil, fmt.Errorf("failed to set budget amount: %w", err)
	}

	if err := s.departmentRepo.UpdateDefaultBudget(ctx, departmentID, amount, performedBy, now); err != nil {
		logger.Error("Failed to update department default budget", slog.String("error", err.Error()), slog.String("department_id", departmentID))
		return nil, fmt.Errorf("failed to update department default budget: %w", err)
	}

	logger.Info("Budget amount set",
		slog.String("department_id", departmentID),
		slog.Int("month", month),
		slog.Int("year", year),
		slog.String("amount", amount.String()),
	)
	return &budget, nil
}

// Summaries builds the per-department overview for a period. Managers see
// only their own department; finance sees all departments.
func (s *budgetService) Summaries(ctx context.Context, principal *domain.User, month, year int) ([]domain.BudgetSummary, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	var departments []domain.Department
	switch principal.Role {
	case domain.RoleFinance:
		all, err := s.departmentRepo.ListDepartments(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list departments: %w", err)
		}
		departments = all
	case domain.RoleManager:
		dept, err := s.departmentRepo.FindDepartmentByID(ctx, principal.DepartmentID)
		if err != nil {
			return nil, err
		}
		departments = []domain.Department{*dept}
	default:
		return nil, apperrors.ErrForbidden
	}

	summaries := make([]domain.BudgetSummary, 0, len(departments))
	for _, dept := range departments {
		summary, err := s.summarize(ctx, dept, month, year)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

func (s *budgetService) summarize(ctx context.Context, dept domain.Department, month, year int) (*domain.BudgetSummary, error) {
	budget, err := s.budgetRepo.FindBudget(ctx, dept.DepartmentID, month, year)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up budget for department %s: %w", dept.DepartmentID, err)
	}

	spent, err := s.expenseRepo.SumAmountByStatus(ctx, dept.DepartmentID, month, year, consumingStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to compute spent amount for department %s: %w", dept.DepartmentID, err)
	}
	pending, err := s.expenseRepo.SumAmountByStatus(ctx, dept.DepartmentID, month, year, []domain.ExpenseStatus{domain.StatusSubmitted})
	if err != nil {
		return nil, fmt.Errorf("failed to compute pending amount for department %s: %w", dept.DepartmentID, err)
	}

	budgetAmount := decimal.Zero
	if budget != nil {
		budgetAmount = budget.Amount
	}
	remaining := budgetAmount.Sub(spent)

	percentUsed := 0
	if budgetAmount.GreaterThan(decimal.Zero) {
		pct := spent.Div(budgetAmount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
		if pct > 100 {
			pct = 100
		}
		percentUsed = int(pct)
	}

	return &domain.BudgetSummary{
		Department:   dept,
		Budget:       budget,
		BudgetAmount: budgetAmount,
		TotalSpent:   spent,
		TotalPending: pending,
		Remaining:    remaining,
		PercentUsed:  percentUsed,
		Exceeded:     remaining.IsNegative(),
	}, nil
}
