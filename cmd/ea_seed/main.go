// Command ea_seed populates the initial departments and their budget
// periods for the current month. Safe to run repeatedly.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/expenseaudit/expense-audit-backend/internal/apperrors"
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	"github.com/expenseaudit/expense-audit-backend/internal/core/services"
	"github.com/expenseaudit/expense-audit-backend/internal/repositories/database/pgsql"
	"github.com/expenseaudit/expense-audit-backend/pkg/config"
	"github.com/expenseaudit/expense-audit-backend/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var defaultDepartments = []struct {
	Name   string
	Budget int64
}{
	{"Engineering", 500000},
	{"Finance", 300000},
	{"Human Resources", 200000},
	{"Marketing", 250000},
	{"Operations", 400000},
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	now := time.Now().UTC()

	for _, seed := range defaultDepartments {
		dept := domain.Department{
			DepartmentID:  uuid.NewString(),
			Name:          seed.Name,
			DefaultBudget: decimal.NewFromInt(seed.Budget),
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     "seed",
				LastUpdatedAt: now,
				LastUpdatedBy: "seed",
			},
		}
		if err := repos.DepartmentRepo.SaveDepartment(ctx, dept); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				logger.Info("Department already exists, skipping", slog.String("name", seed.Name))
				continue
			}
			logger.Error("Failed to seed department", slog.String("name", seed.Name), slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Department seeded", slog.String("name", seed.Name), slog.Int64("default_budget", seed.Budget))
	}

	budgetService := services.NewBudgetService(repos.BudgetRepo, repos.DepartmentRepo, repos.ExpenseRepo)
	result, err := budgetService.Rollover(ctx, int(now.Month()), now.Year(), "seed")
	if err != nil {
		logger.Error("Failed to seed budget periods", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Seeding complete", slog.Int("budgets_created", result.Created), slog.Int("budgets_skipped", result.Skipped))
}
