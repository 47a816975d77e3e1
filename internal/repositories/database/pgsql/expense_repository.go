package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/expenseaudit/expense-audit-backend/internal/apperrors"
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	portsrepo "github.com/expenseaudit/expense-audit-backend/internal/core/ports/repositories"
	"github.com/expenseaudit/expense-audit-backend/internal/models"
	"github.com/expenseaudit/expense-audit-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type expenseRepository struct {
	baseRepository
}

var _ portsrepo.ExpenseRepositoryFacade = (*expenseRepository)(nil)

const expenseColumns = `expense_id, owner_id, department_id, amount, category, receipt_ref, status, month, year, created_at, created_by, last_updated_at, last_updated_by`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID, &m.OwnerID, &m.DepartmentID, &m.Amount, &m.Category,
		&m.ReceiptRef, &m.Status, &m.Month, &m.Year,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *expenseRepository) collectExpenses(rows pgx.Rows) ([]domain.Expense, error) {
	defer rows.Close()

	var ms []models.Expense
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expense rows: %w", err)
	}
	return mapping.ToDomainExpenseSlice(ms), nil
}

func (r *expenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE expense_id = $1`, expenseID)
	m, err := scanExpense(row)
	if err != nil {
		return nil, translateNotFound(err)
	}
	expense := mapping.ToDomainExpense(m)
	return &expense, nil
}

func (r *expenseRepository) ListExpensesByOwner(ctx context.Context, ownerID string) ([]domain.Expense, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE owner_id = $1 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses by owner: %w", err)
	}
	return r.collectExpenses(rows)
}

func (r *expenseRepository) ListExpensesForPeriod(ctx context.Context, departmentID *string, month, year int) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE month = $1 AND year = $2`
	args := []any{month, year}
	if departmentID != nil {
		query += ` AND department_id = $3`
		args = append(args, *departmentID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for period: %w", err)
	}
	return r.collectExpenses(rows)
}

func (r *expenseRepository) ListPendingExpenses(ctx context.Context, filter domain.PendingFilter) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses e WHERE e.status = $1`
	args := []any{string(domain.StatusSubmitted)}

	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		query += fmt.Sprintf(` AND e.department_id = $%d`, len(args))
	}
	if filter.MaxAmountExclusive != nil {
		args = append(args, *filter.MaxAmountExclusive)
		query += fmt.Sprintf(` AND e.amount < $%d`, len(args))
	}
	if filter.MinAmountInclusive != nil {
		args = append(args, *filter.MinAmountInclusive)
		query += fmt.Sprintf(` AND e.amount >= $%d`, len(args))
	}
	if filter.ExcludeDecidedBy != "" {
		args = append(args, filter.ExcludeDecidedBy)
		query += fmt.Sprintf(` AND NOT EXISTS (SELECT 1 FROM approvals a WHERE a.expense_id = e.expense_id AND a.approver_id = $%d)`, len(args))
	}
	query += ` ORDER BY e.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending expenses: %w", err)
	}
	return r.collectExpenses(rows)
}

func (r *expenseRepository) ListSubmittedExpenses(ctx context.Context) ([]domain.Expense, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE status = $1 ORDER BY created_at DESC`,
		string(domain.StatusSubmitted),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query submitted expenses: %w", err)
	}
	return r.collectExpenses(rows)
}

func (r *expenseRepository) SumAmountByStatus(ctx context.Context, departmentID string, month, year int, statuses []domain.ExpenseStatus) (decimal.Decimal, error) {
	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	var sum decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses
		 WHERE department_id = $1 AND month = $2 AND year = $3 AND status = ANY($4)`,
		departmentID, month, year, statusStrings,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expense amounts: %w", err)
	}
	return sum, nil
}

// CreateExpenseWithBudgetCheck inserts the expense and its creation audit
// entry in one transaction. The period's budget row is locked first so two
// concurrent submissions are serialized against the same ceiling.
func (r *expenseRepository) CreateExpenseWithBudgetCheck(ctx context.Context, expense domain.Expense, audit domain.AuditLog, allowMissingBudget bool) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		var budgetAmount decimal.Decimal
		err := tx.QueryRow(ctx,
			`SELECT amount FROM budgets WHERE department_id = $1 AND month = $2 AND year = $3 FOR UPDATE`,
			expense.DepartmentID, expense.Month, expense.Year,
		).Scan(&budgetAmount)

		switch {
		case errors.Is(err, pgx.ErrNoRows):
			if !allowMissingBudget {
				return apperrors.ErrBudgetMissing
			}
			// No ceiling to check; the insert proceeds unguarded.
		case err != nil:
			return fmt.Errorf("failed to lock budget row: %w", err)
		default:
			var consumed decimal.Decimal
			err := tx.QueryRow(ctx,
				`SELECT COALESCE(SUM(amount), 0) FROM expenses
				 WHERE department_id = $1 AND month = $2 AND year = $3 AND status = ANY($4)`,
				expense.DepartmentID, expense.Month, expense.Year,
				[]string{string(domain.StatusApproved), string(domain.StatusPaid)},
			).Scan(&consumed)
			if err != nil {
				return fmt.Errorf("failed to sum consumed amount: %w", err)
			}
			if consumed.Add(expense.Amount).GreaterThan(budgetAmount) {
				return fmt.Errorf("%w: %s consumed of %s, %s requested",
					apperrors.ErrBudgetExceeded, consumed.String(), budgetAmount.String(), expense.Amount.String())
			}
		}

		m := mapping.ToModelExpense(expense)
		if _, err := tx.Exec(ctx,
			`INSERT INTO expenses (`+expenseColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			m.ExpenseID, m.OwnerID, m.DepartmentID, m.Amount, m.Category,
			m.ReceiptRef, m.Status, m.Month, m.Year,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		); err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}

		return insertAuditLogTx(ctx, tx, audit)
	})
}

func (r *expenseRepository) UpdateExpenseStatusWithAudit(ctx context.Context, expenseID string, status domain.ExpenseStatus, audit domain.AuditLog) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE expenses SET status = $1, last_updated_at = $2, last_updated_by = $3 WHERE expense_id = $4`,
			string(status), audit.Timestamp, audit.PerformedBy, expenseID,
		)
		if err != nil {
			return fmt.Errorf("failed to update expense status: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		return insertAuditLogTx(ctx, tx, audit)
	})
}
