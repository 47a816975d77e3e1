package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application, loaded from the
// environment with an optional .env file for local development.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret        string
	JWTExpiryMinutes int
	JWTIssuer        string

	// ApprovalThreshold splits the approver tiers: below it the department
	// manager decides, at or above it finance decides.
	ApprovalThreshold decimal.Decimal

	// AllowSubmitWithoutBudget accepts submissions for periods with no
	// budget configured instead of blocking them.
	AllowSubmitWithoutBudget bool

	// EnableManagerEscalation lets managers approve threshold-or-above
	// expenses in their own department, flagged for finance follow-up.
	EnableManagerEscalation bool

	RateLimit          string
	CORSAllowedOrigins []string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPEnabled  bool
}

// LoadConfig loads configuration from environment variables. A .env file is
// read if present; real environment variables win over it.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("JWT_EXPIRY_MINUTES", 60)
	v.SetDefault("JWT_ISSUER", "expense-audit-backend")
	v.SetDefault("APPROVAL_THRESHOLD", "50000")
	v.SetDefault("ALLOW_SUBMIT_WITHOUT_BUDGET", false)
	v.SetDefault("ENABLE_MANAGER_ESCALATION", false)
	v.SetDefault("RATE_LIMIT", "60-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("SMTP_PORT", 587)

	databaseURL := v.GetString("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	jwtSecret := v.GetString("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	threshold, err := decimal.NewFromString(v.GetString("APPROVAL_THRESHOLD"))
	if err != nil {
		return nil, fmt.Errorf("invalid APPROVAL_THRESHOLD: %w", err)
	}
	if threshold.IsNegative() {
		return nil, fmt.Errorf("APPROVAL_THRESHOLD must not be negative")
	}

	smtpHost := v.GetString("SMTP_HOST")

	return &Config{
		DatabaseURL:              databaseURL,
		Port:                     v.GetString("PORT"),
		IsProduction:             strings.EqualFold(v.GetString("APP_ENV"), "production"),
		JWTSecret:                jwtSecret,
		JWTExpiryMinutes:         v.GetInt("JWT_EXPIRY_MINUTES"),
		JWTIssuer:                v.GetString("JWT_ISSUER"),
		ApprovalThreshold:        threshold,
		AllowSubmitWithoutBudget: v.GetBool("ALLOW_SUBMIT_WITHOUT_BUDGET"),
		EnableManagerEscalation:  v.GetBool("ENABLE_MANAGER_ESCALATION"),
		RateLimit:                v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:       strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ","),
		SMTPHost:                 smtpHost,
		SMTPPort:                 v.GetInt("SMTP_PORT"),
		SMTPUsername:             v.GetString("SMTP_USERNAME"),
		SMTPPassword:             v.GetString("SMTP_PASSWORD"),
		SMTPFrom:                 v.GetString("SMTP_FROM"),
		SMTPEnabled:              smtpHost != "",
	}, nil
}
