package pgsql

import (
	"context"
	"fmt"

	"github.com/expenseaudit/expense-audit-backend/internal/apperrors"
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	portsrepo "github.com/expenseaudit/expense-audit-backend/internal/core/ports/repositories"
	"github.com/expenseaudit/expense-audit-backend/internal/models"
	"github.com/expenseaudit/expense-audit-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type approvalRepository struct {
	baseRepository
}

var _ portsrepo.ApprovalRepositoryFacade = (*approvalRepository)(nil)

const approvalColumns = `approval_id, expense_id, approver_id, decision, comments, created_at, created_by, last_updated_at, last_updated_by`

func scanApproval(row pgx.Row) (models.Approval, error) {
	var m models.Approval
	err := row.Scan(
		&m.ApprovalID, &m.ExpenseID, &m.ApproverID, &m.Decision, &m.Comments,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *approvalRepository) collectApprovals(rows pgx.Rows) ([]domain.Approval, error) {
	defer rows.Close()

	var ms []models.Approval
	for rows.Next() {
		m, err := scanApproval(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan approval row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read approval rows: %w", err)
	}
	return mapping.ToDomainApprovalSlice(ms), nil
}

func (r *approvalRepository) FindApprovalByID(ctx context.Context, approvalID string) (*domain.Approval, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+approvalColumns+` FROM approvals WHERE approval_id = $1`, approvalID)
	m, err := scanApproval(row)
	if err != nil {
		return nil, translateNotFound(err)
	}
	approval := mapping.ToDomainApproval(m)
	return &approval, nil
}

func (r *approvalRepository) ListApprovalsByApprover(ctx context.Context, approverID string) ([]domain.Approval, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+approvalColumns+` FROM approvals WHERE approver_id = $1 ORDER BY created_at DESC`,
		approverID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query approvals by approver: %w", err)
	}
	return r.collectApprovals(rows)
}

func (r *approvalRepository) ListApprovalsByExpense(ctx context.Context, expenseID string) ([]domain.Approval, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+approvalColumns+` FROM approvals WHERE expense_id = $1 ORDER BY created_at ASC`,
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query approvals by expense: %w", err)
	}
	return r.collectApprovals(rows)
}

// CreateApprovalWithOutcome inserts the approval, syncs the expense status,
// and appends the audit entry atomically. The unique (expense_id,
// approver_id) index turns a racing second decision by the same approver
// into apperrors.ErrAlreadyDecided.
func (r *approvalRepository) CreateApprovalWithOutcome(ctx context.Context, approval domain.Approval, status domain.ExpenseStatus, audit domain.AuditLog) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		m := mapping.ToModelApproval(approval)
		if _, err := tx.Exec(ctx,
			`INSERT INTO approvals (`+approvalColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			m.ApprovalID, m.ExpenseID, m.ApproverID, m.Decision, m.Comments,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		); err != nil {
			if isUniqueViolation(err) {
				return apperrors.ErrAlreadyDecided
			}
			return fmt.Errorf("failed to insert approval: %w", err)
		}

		if err := r.syncExpenseStatusTx(ctx, tx, approval.ExpenseID, status, audit); err != nil {
			return err
		}
		return insertAuditLogTx(ctx, tx, audit)
	})
}

// UpdateApprovalWithOutcome replaces the decision and comments of an
// existing approval, re-syncs the expense status, and appends the audit
// entry atomically.
func (r *approvalRepository) UpdateApprovalWithOutcome(ctx context.Context, approval domain.Approval, status domain.ExpenseStatus, audit domain.AuditLog) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE approvals SET decision = $1, comments = $2, last_updated_at = $3, last_updated_by = $4
			 WHERE approval_id = $5`,
			string(approval.Decision), approval.Comments, approval.LastUpdatedAt, approval.LastUpdatedBy,
			approval.ApprovalID,
		)
		if err != nil {
			return fmt.Errorf("failed to update approval: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}

		if err := r.syncExpenseStatusTx(ctx, tx, approval.ExpenseID, status, audit); err != nil {
			return err
		}
		return insertAuditLogTx(ctx, tx, audit)
	})
}

func (r *approvalRepository) syncExpenseStatusTx(ctx context.Context, tx pgx.Tx, expenseID string, status domain.ExpenseStatus, audit domain.AuditLog) error {
	tag, err := tx.Exec(ctx,
		`UPDATE expenses SET status = $1, last_updated_at = $2, last_updated_by = $3 WHERE expense_id = $4`,
		string(status), audit.Timestamp, audit.PerformedBy, expenseID,
	)
	if err != nil {
		return fmt.Errorf("failed to sync expense status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
