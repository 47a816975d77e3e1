package pgsql

import (
	"context"
	"fmt"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	portsrepo "github.com/expenseaudit/expense-audit-backend/internal/core/ports/repositories"
	"github.com/expenseaudit/expense-audit-backend/internal/models"
	"github.com/expenseaudit/expense-audit-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type budgetRepository struct {
	baseRepository
}

var _ portsrepo.BudgetRepositoryFacade = (*budgetRepository)(nil)

const budgetColumns = `budget_id, department_id, month, year, amount, created_at, created_by, last_updated_at, last_updated_by`

func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	err := row.Scan(
		&m.BudgetID, &m.DepartmentID, &m.Month, &m.Year, &m.Amount,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *budgetRepository) FindBudget(ctx context.Context, departmentID string, month, year int) (*domain.Budget, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE department_id = $1 AND month = $2 AND year = $3`,
		departmentID, month, year,
	)
	m, err := scanBudget(row)
	if err != nil {
		return nil, translateNotFound(err)
	}
	budget := mapping.ToDomainBudget(m)
	return &budget, nil
}

func (r *budgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	_, err := r.pool.Exec(ctx,
		`INSERT INTO budgets (`+budgetColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (department_id, month, year) DO UPDATE
		 SET amount = EXCLUDED.amount,
		     last_updated_at = EXCLUDED.last_updated_at,
		     last_updated_by = EXCLUDED.last_updated_by`,
		m.BudgetID, m.DepartmentID, m.Month, m.Year, m.Amount,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}
	return nil
}

func (r *budgetRepository) CreateBudgetIfAbsent(ctx context.Context, budget domain.Budget) (bool, error) {
	m := mapping.ToModelBudget(budget)
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO budgets (`+budgetColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (department_id, month, year) DO NOTHING`,
		m.BudgetID, m.DepartmentID, m.Month, m.Year, m.Amount,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create budget: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
