package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shipgate/site-api/internal/config"
	"github.com/shipgate/site-api/internal/pocketbase"
)

const diagnosticsCheckTimeout = 5 * time.Second

// Diagnoser is the slice of the store client the diagnostics need.
type Diagnoser interface {
	BaseURL() string
	Health(ctx context.Context) error
	Authenticate(ctx context.Context) error
	CollectionReachable(ctx context.Context, collection string) error
}

// DiagnosticsService verifies configuration and external-store
// connectivity for the operators' status view.
type DiagnosticsService struct {
	client Diagnoser
	cfg    config.PocketBaseConfig
	logger *zap.Logger
}

// NewDiagnosticsService creates the service.
func NewDiagnosticsService(client Diagnoser, cfg config.PocketBaseConfig, logger *zap.Logger) *DiagnosticsService {
	return &DiagnosticsService{client: client, cfg: cfg, logger: logger}
}

// EnvCheck reports one environment variable's state.
type EnvCheck struct {
	Value string `json:"value"`
	OK    bool   `json:"ok"`
	Hint  string `json:"hint,omitempty"`
}

// DiagnosticsReport aggregates every check into one pass/fail summary.
type DiagnosticsReport struct {
	OK              bool                `json:"ok"`
	Env             map[string]EnvCheck `json:"env"`
	StoreReachable  bool                `json:"store_reachable"`
	StoreError      string              `json:"store_error,omitempty"`
	AdminAuthOK     bool                `json:"admin_auth_ok"`
	AdminAuthError  string              `json:"admin_auth_error,omitempty"`
	CollectionOK    bool                `json:"collection_ok"`
	CollectionError string              `json:"collection_error,omitempty"`
	Summary         string              `json:"summary"`
}

// Run executes all checks. Each network check is bounded by a 5s
// timeout; a failing check never aborts the rest.
func (s *DiagnosticsService) Run(ctx context.Context) *DiagnosticsReport {
	report := &DiagnosticsReport{Env: map[string]EnvCheck{}}

	urlCheck := EnvCheck{Value: s.cfg.BaseURL, OK: true}
	if strings.Contains(s.cfg.BaseURL, "127.0.0.1") || strings.Contains(s.cfg.BaseURL, "localhost") {
		urlCheck.OK = false
		urlCheck.Hint = "POCKETBASE_URL points at localhost; set it to the store's public URL for deployed environments."
	}
	report.Env["POCKETBASE_URL"] = urlCheck

	emailCheck := EnvCheck{Value: maskValue(s.cfg.AdminEmail), OK: s.cfg.AdminEmail != ""}
	if !emailCheck.OK {
		emailCheck.Hint = "Set POCKETBASE_ADMIN_EMAIL to the store's superuser email."
	}
	report.Env["POCKETBASE_ADMIN_EMAIL"] = emailCheck

	passwordCheck := EnvCheck{Value: maskSecret(s.cfg.AdminPassword), OK: s.cfg.AdminPassword != ""}
	if !passwordCheck.OK {
		passwordCheck.Hint = "Set POCKETBASE_ADMIN_PASSWORD to the store's superuser password."
	}
	report.Env["POCKETBASE_ADMIN_PASSWORD"] = passwordCheck

	healthCtx, cancel := context.WithTimeout(ctx, diagnosticsCheckTimeout)
	if err := s.client.Health(healthCtx); err != nil {
		report.StoreError = err.Error()
	} else {
		report.StoreReachable = true
	}
	cancel()

	if report.StoreReachable && emailCheck.OK && passwordCheck.OK {
		authCtx, cancel := context.WithTimeout(ctx, diagnosticsCheckTimeout)
		if err := s.client.Authenticate(authCtx); err != nil {
			report.AdminAuthError = err.Error()
		} else {
			report.AdminAuthOK = true
		}
		cancel()
	}

	if report.AdminAuthOK {
		colCtx, cancel := context.WithTimeout(ctx, diagnosticsCheckTimeout)
		if err := s.client.CollectionReachable(colCtx, pocketbase.CollectionScorecardInquiries); err != nil {
			report.CollectionError = fmt.Sprintf("%v — collection may not exist yet (it is created on first scorecard submission)", err)
		} else {
			report.CollectionOK = true
		}
		cancel()
	}

	report.OK = urlCheck.OK && emailCheck.OK && passwordCheck.OK &&
		report.StoreReachable && report.AdminAuthOK && report.CollectionOK
	report.Summary = s.summarize(report)

	if !report.OK {
		s.logger.Warn("diagnostics failed", zap.String("summary", report.Summary))
	}
	return report
}

func (s *DiagnosticsService) summarize(r *DiagnosticsReport) string {
	switch {
	case r.OK:
		return "Everything looks good. The external store is connected and the collection exists."
	case !r.Env["POCKETBASE_URL"].OK:
		return "POCKETBASE_URL is set to localhost. Point it at the store's public URL."
	case !r.Env["POCKETBASE_ADMIN_EMAIL"].OK || !r.Env["POCKETBASE_ADMIN_PASSWORD"].OK:
		return "External store credentials are missing. Set POCKETBASE_ADMIN_EMAIL and POCKETBASE_ADMIN_PASSWORD."
	case !r.StoreReachable:
		return fmt.Sprintf("Cannot reach the external store at %s. Make sure it is running and accessible.", s.cfg.BaseURL)
	case !r.AdminAuthOK:
		return fmt.Sprintf("Store is reachable but admin auth failed: %s. Check the credentials.", r.AdminAuthError)
	default:
		return fmt.Sprintf("Connected to the store but the collection check failed: %s", r.CollectionError)
	}
}

func maskValue(value string) string {
	if value == "" {
		return "(not set)"
	}
	if len(value) <= 3 {
		return "***"
	}
	return value[:3] + "***"
}

func maskSecret(value string) string {
	if value == "" {
		return "(not set)"
	}
	return "***"
}
