package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App        AppConfig
	PocketBase PocketBaseConfig
	Logger     LoggerConfig
	Mail       MailConfig
	Admin      AdminConfig
	Contact    ContactConfig
	Checkout   CheckoutConfig
	Export     ExportConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	SiteBaseURL           string
	RequestTimeoutSeconds int
}

// PocketBaseConfig holds external data store connection values.
type PocketBaseConfig struct {
	BaseURL       string
	AdminEmail    string
	AdminPassword string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// MailConfig holds SMTP notifier settings. When Host or Username is
// empty the notifier logs submissions instead of sending.
type MailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	To       string
}

// AdminConfig holds the two independent dashboard gate passwords.
type AdminConfig struct {
	InternalPassword string
	QueriesPassword  string
	SessionTTLDays   int
}

// ContactConfig controls contact intake validation.
type ContactConfig struct {
	RequireCompanyEmail bool
}

// CheckoutConfig holds payment-processor settings for checkout quotes.
type CheckoutConfig struct {
	PayPalClientID string
}

// ExportConfig controls the scorecard export utility.
type ExportConfig struct {
	OutputPath    string
	IntervalHours int
	PerPage       int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "shipgate-site-api"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			SiteBaseURL:           getEnv("SITE_BASE_URL", ""),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		PocketBase: PocketBaseConfig{
			BaseURL:       getEnv("POCKETBASE_URL", "http://127.0.0.1:8090"),
			AdminEmail:    os.Getenv("POCKETBASE_ADMIN_EMAIL"),
			AdminPassword: os.Getenv("POCKETBASE_ADMIN_PASSWORD"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Mail: MailConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getEnv("NOTIFY_EMAIL_FROM", "noreply@example.com"),
			To:       os.Getenv("NOTIFY_EMAIL_TO"),
		},
		Admin: AdminConfig{
			InternalPassword: os.Getenv("INTERNAL_DASH_PASSWORD"),
			QueriesPassword:  os.Getenv("QUERIES_PASSWORD"),
			SessionTTLDays:   getEnvAsInt("ADMIN_SESSION_TTL_DAYS", 7),
		},
		Contact: ContactConfig{
			RequireCompanyEmail: getEnvAsBool("CONTACT_REQUIRE_COMPANY_EMAIL", true),
		},
		Checkout: CheckoutConfig{
			PayPalClientID: os.Getenv("PAYPAL_CLIENT_ID"),
		},
		Export: ExportConfig{
			OutputPath:    getEnv("EXPORT_OUTPUT_PATH", "queries.txt"),
			IntervalHours: getEnvAsInt("EXPORT_INTERVAL_HOURS", 24),
			PerPage:       getEnvAsInt("EXPORT_PER_PAGE", 200),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// SessionTTL returns the admin cookie lifetime.
func (a AdminConfig) SessionTTL() time.Duration {
	days := a.SessionTTLDays
	if days <= 0 {
		days = 7
	}
	return time.Duration(days) * 24 * time.Hour
}

// Interval returns the export loop period.
func (e ExportConfig) Interval() time.Duration {
	hours := e.IntervalHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

// Configured reports whether SMTP delivery is usable.
func (m MailConfig) Configured() bool {
	return m.Host != "" && m.Username != "" && m.Password != "" && m.To != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
