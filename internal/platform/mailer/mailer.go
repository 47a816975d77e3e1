package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/expenseaudit/expense-audit-backend/internal/core/domain"
	portssvc "github.com/expenseaudit/expense-audit-backend/internal/core/ports/services"
	"github.com/expenseaudit/expense-audit-backend/pkg/config"
	"gopkg.in/gomail.v2"
)

// SMTPMailer delivers notifications over SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a mailer from the SMTP settings.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

var _ portssvc.Mailer = (*SMTPMailer)(nil)

func (m *SMTPMailer) Send(_ context.Context, notification domain.Notification) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", notification.To)
	msg.SetHeader("Subject", notification.Subject)
	msg.SetBody("text/plain", notification.Body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", notification.To, err)
	}
	return nil
}

// LogMailer logs notifications instead of delivering them. Used when no
// SMTP host is configured, typically in development.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a LogMailer.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

var _ portssvc.Mailer = (*LogMailer)(nil)

func (m *LogMailer) Send(_ context.Context, notification domain.Notification) error {
	m.logger.Info("Notification (not delivered, no SMTP host configured)",
		slog.String("to", notification.To),
		slog.String("subject", notification.Subject),
	)
	return nil
}
