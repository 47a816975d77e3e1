package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/expenseaudit/expense-audit-backend/internal/apperrors"
	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

// baseRepository carries the shared connection pool and transaction helper.
type baseRepository struct {
	pool *pgxpool.Pool
}

// withTx runs fn inside a transaction, rolling back on error.
func (r *baseRepository) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// translateNotFound maps the driver's no-rows sentinel to the application
// error so callers never depend on pgx.
func translateNotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return err
}

// insertAuditLogTx appends one audit entry inside an open transaction. Used
// by the write paths that must record what they did atomically.
func insertAuditLogTx(ctx context.Context, tx pgx.Tx, entry domain.AuditLog) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO audit_logs (audit_log_id, expense_id, performed_by, action, timestamp)
		 VALUES ($1, $2, $3, $4, $5)`,
		entry.AuditLogID, entry.ExpenseID, entry.PerformedBy, string(entry.Action), entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}
