package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/expenseaudit/expense-audit-backend/internal/apperrors"
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	portsrepo "github.com/expenseaudit/expense-audit-backend/internal/core/ports/repositories"
	"github.com/expenseaudit/expense-audit-backend/internal/models"
	"github.com/expenseaudit/expense-audit-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type departmentRepository struct {
	baseRepository
}

var _ portsrepo.DepartmentRepositoryFacade = (*departmentRepository)(nil)

const departmentColumns = `department_id, name, default_budget, created_at, created_by, last_updated_at, last_updated_by`

func scanDepartment(row pgx.Row) (models.Department, error) {
	var m models.Department
	err := row.Scan(
		&m.DepartmentID, &m.Name, &m.DefaultBudget,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *departmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+departmentColumns+` FROM departments WHERE department_id = $1`, departmentID)
	m, err := scanDepartment(row)
	if err != nil {
		return nil, translateNotFound(err)
	}
	dept := mapping.ToDomainDepartment(m)
	return &dept, nil
}

func (r *departmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+departmentColumns+` FROM departments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	var ms []models.Department
	for rows.Next() {
		m, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read department rows: %w", err)
	}
	return mapping.ToDomainDepartmentSlice(ms), nil
}

func (r *departmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	m := mapping.ToModelDepartment(department)
	_, err := r.pool.Exec(ctx,
		`INSERT INTO departments (`+departmentColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.DepartmentID, m.Name, m.DefaultBudget,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert department: %w", err)
	}
	return nil
}

func (r *departmentRepository) UpdateDefaultBudget(ctx context.Context, departmentID string, amount decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE departments SET default_budget = $1, last_updated_at = $2, last_updated_by = $3 WHERE department_id = $4`,
		amount, updatedAt, updatedBy, departmentID,
	)
	if err != nil {
		return fmt.Errorf("failed to update default budget: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
