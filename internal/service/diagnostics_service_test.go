package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shipgate/site-api/internal/config"
)

type fakeDiagnoser struct {
	baseURL       string
	healthErr     error
	authErr       error
	collectionErr error
	authCalled    bool
}

func (f *fakeDiagnoser) BaseURL() string { return f.baseURL }

func (f *fakeDiagnoser) Health(context.Context) error { return f.healthErr }

func (f *fakeDiagnoser) CollectionReachable(_ context.Context, _ string) error {
	return f.collectionErr
}

func (f *fakeDiagnoser) Authenticate(context.Context) error {
	f.authCalled = true
	return f.authErr
}

func diagConfig(url string) config.PocketBaseConfig {
	return config.PocketBaseConfig{
		BaseURL:       url,
		AdminEmail:    "admin@example.com",
		AdminPassword: "secret",
	}
}

func TestDiagnosticsAllGreen(t *testing.T) {
	client := &fakeDiagnoser{baseURL: "https://store.example.com"}
	svc := NewDiagnosticsService(client, diagConfig("https://store.example.com"), zap.NewNop())

	report := svc.Run(context.Background())
	assert.True(t, report.OK)
	assert.True(t, report.StoreReachable)
	assert.True(t, report.AdminAuthOK)
	assert.True(t, report.CollectionOK)
	assert.Contains(t, report.Summary, "Everything looks good")
}

func TestDiagnosticsFlagsLocalhostURL(t *testing.T) {
	client := &fakeDiagnoser{baseURL: "http://127.0.0.1:8090"}
	svc := NewDiagnosticsService(client, diagConfig("http://127.0.0.1:8090"), zap.NewNop())

	report := svc.Run(context.Background())
	assert.False(t, report.OK)
	assert.False(t, report.Env["POCKETBASE_URL"].OK)
	assert.Contains(t, report.Summary, "localhost")
}

func TestDiagnosticsMissingCredentialsSkipsAuth(t *testing.T) {
	client := &fakeDiagnoser{baseURL: "https://store.example.com"}
	cfg := diagConfig("https://store.example.com")
	cfg.AdminPassword = ""
	svc := NewDiagnosticsService(client, cfg, zap.NewNop())

	report := svc.Run(context.Background())
	assert.False(t, report.OK)
	assert.False(t, client.authCalled)
	assert.Equal(t, "(not set)", report.Env["POCKETBASE_ADMIN_PASSWORD"].Value)
	assert.Contains(t, report.Summary, "credentials are missing")
}

func TestDiagnosticsStoreUnreachable(t *testing.T) {
	client := &fakeDiagnoser{baseURL: "https://store.example.com", healthErr: errors.New("connection refused")}
	svc := NewDiagnosticsService(client, diagConfig("https://store.example.com"), zap.NewNop())

	report := svc.Run(context.Background())
	assert.False(t, report.OK)
	assert.False(t, report.StoreReachable)
	assert.False(t, client.authCalled)
	assert.Contains(t, report.Summary, "Cannot reach the external store")
}

func TestDiagnosticsAuthFailure(t *testing.T) {
	client := &fakeDiagnoser{baseURL: "https://store.example.com", authErr: errors.New("bad credentials")}
	svc := NewDiagnosticsService(client, diagConfig("https://store.example.com"), zap.NewNop())

	report := svc.Run(context.Background())
	assert.False(t, report.OK)
	assert.True(t, report.StoreReachable)
	assert.False(t, report.AdminAuthOK)
	assert.Contains(t, report.Summary, "admin auth failed")
}

func TestDiagnosticsCollectionMissing(t *testing.T) {
	client := &fakeDiagnoser{baseURL: "https://store.example.com", collectionErr: errors.New("HTTP 404")}
	svc := NewDiagnosticsService(client, diagConfig("https://store.example.com"), zap.NewNop())

	report := svc.Run(context.Background())
	require.False(t, report.OK)
	assert.True(t, report.AdminAuthOK)
	assert.False(t, report.CollectionOK)
	assert.Contains(t, report.CollectionError, "collection may not exist yet")
}

func TestDiagnosticsMasksEmail(t *testing.T) {
	client := &fakeDiagnoser{baseURL: "https://store.example.com"}
	svc := NewDiagnosticsService(client, diagConfig("https://store.example.com"), zap.NewNop())

	report := svc.Run(context.Background())
	assert.Equal(t, "adm***", report.Env["POCKETBASE_ADMIN_EMAIL"].Value)
	assert.Equal(t, "***", report.Env["POCKETBASE_ADMIN_PASSWORD"].Value)
}
