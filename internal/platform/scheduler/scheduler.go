package scheduler

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/expenseaudit/expense-audit-backend/internal/middleware"
	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic jobs: the monthly budget rollover and the
// weekly pending-expense reminder.
type Scheduler struct {
	cron     *cron.Cron
	budget   portssvc.BudgetSvcFacade
	notifier portssvc.NotificationSvcFacade
	logger   *slog.Logger
}

// New creates a Scheduler with its jobs registered but not yet running.
func New(budget portssvc.BudgetSvcFacade, notifier portssvc.NotificationSvcFacade, logger *slog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(),
		budget:   budget,
		notifier: notifier,
		logger:   logger,
	}

	// First day of each month at midnight.
	if _, err := s.cron.AddFunc("0 0 1 * *", s.runRollover); err != nil {
		return nil, err
	}
	// Monday mornings.
	if _, err := s.cron.AddFunc("0 8 * * 1", s.runReminders); err != nil {
		return nil, err
	}

	return s, nil
}

// Start launches the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started")
}

// Stop halts the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) runRollover() {
	logger := s.logger.With(slog.String("job", "budget_rollover"))
	ctx := middleware.WithLogger(context.Background(), logger)

	now := time.Now().UTC()
	result, err := s.budget.Rollover(ctx, int(now.Month()), now.Year(), "scheduler")
	if err != nil {
		logger.Error("Budget rollover failed", slog.String("error", err.Error()))
		return
	}
	logger.Info("Budget rollover finished", slog.Int("created", result.Created), slog.Int("skipped", result.Skipped))
}

func (s *Scheduler) runReminders() {
	logger := s.logger.With(slog.String("job", "pending_reminders"))
	ctx := middleware.WithLogger(context.Background(), logger)

	if err := s.notifier.SendPendingReminders(ctx); err != nil {
		logger.Error("Pending reminder sweep failed", slog.String("error", err.Error()))
	}
}
