package kernel

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/folio/metal/env"
	"github.com/folio/pkg/portal"
)

func validEnvVars(t *testing.T) {
	t.Setenv("ENV_APP_NAME", "guss")
	t.Setenv("ENV_APP_URL", "http://localhost:8080")
	t.Setenv("ENV_APP_ENV_TYPE", "local")
	t.Setenv("ENV_APP_LOG_LEVEL", "debug")
	t.Setenv("ENV_APP_LOGS_DIR", filepath.Join(t.TempDir(), "logs_%s.log"))
	t.Setenv("ENV_APP_LOGS_DATE_FORMAT", "2006_01_02")
	t.Setenv("ENV_HTTP_HOST", "localhost")
	t.Setenv("ENV_HTTP_PORT", "8080")
	t.Setenv("ENV_HTTP_TRUSTED_PROXIES", "")
	t.Setenv("ENV_SENTRY_DSN", "")
	t.Setenv("ENV_PING_USERNAME", "1234567890abcdef")
	t.Setenv("ENV_PING_PASSWORD", "abcdef1234567890")
	t.Setenv("ENV_FIXTURES_DIR", "../../storage/fixture")
	t.Setenv("ENV_EXPORT_DIR", t.TempDir())
	t.Setenv("ENV_EXPORT_CRON", "")
	t.Setenv("ENV_TRACING_ENABLED", "false")

	previous := env.SecretsDir
	env.SecretsDir = t.TempDir()
	t.Cleanup(func() { env.SecretsDir = previous })
}

func TestMakeEnv(t *testing.T) {
	validEnvVars(t)

	e, err := MakeEnv(portal.GetDefaultValidator())
	if err != nil {
		t.Fatalf("make env: %v", err)
	}

	if e.App.Name != "guss" {
		t.Fatalf("env not loaded")
	}

	if e.Static.HasSchedule() {
		t.Fatalf("unexpected schedule")
	}
}

func TestMakeEnvAllowsDisabledSentryAndTracing(t *testing.T) {
	validEnvVars(t)
	t.Setenv("ENV_TRACING_OTLP_ENDPOINT", "")

	e, err := MakeEnv(portal.GetDefaultValidator())
	if err != nil {
		t.Fatalf("make env: %v", err)
	}

	if e.Sentry.IsEnabled() {
		t.Fatalf("sentry should be disabled with an empty dsn")
	}

	if e.Tracing.Enabled || e.Tracing.Endpoint != "" {
		t.Fatalf("unexpected tracing config %+v", e.Tracing)
	}
}

func TestMakeEnvReadsSecrets(t *testing.T) {
	validEnvVars(t)

	if err := os.WriteFile(filepath.Join(env.SecretsDir, "ping_username"), []byte("secretusername12345\n"), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}

	e, err := MakeEnv(portal.GetDefaultValidator())
	if err != nil {
		t.Fatalf("make env: %v", err)
	}

	if e.Ping.Username != "secretusername12345" {
		t.Fatalf("secret not used: %q", e.Ping.Username)
	}
}

func TestMakeEnvRejectsInvalidModels(t *testing.T) {
	cases := map[string]struct {
		key   string
		value string
		model string
	}{
		"app type":    {"ENV_APP_ENV_TYPE", "qa", "[app]"},
		"log level":   {"ENV_APP_LOG_LEVEL", "verbose", "[logs]"},
		"port":        {"ENV_HTTP_PORT", "http", "[network]"},
		"proxies":     {"ENV_HTTP_TRUSTED_PROXIES", "10.0.0.0/8,not-an-ip", "[network]"},
		"ping":        {"ENV_PING_PASSWORD", "short", "[ping]"},
		"export cron": {"ENV_EXPORT_CRON", "every minute", "[static]"},
		"fixtures":    {"ENV_FIXTURES_DIR", "", "[static]"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			validEnvVars(t)
			t.Setenv(tc.key, tc.value)

			_, err := MakeEnv(portal.GetDefaultValidator())

			if err == nil || !strings.Contains(err.Error(), tc.model) {
				t.Fatalf("expected %s error, got %v", tc.model, err)
			}
		})
	}
}

func TestIgnite(t *testing.T) {
	validEnvVars(t)
	os.Unsetenv("ENV_HTTP_PORT")

	f, err := os.CreateTemp(t.TempDir(), "envfile")
	if err != nil {
		t.Fatalf("temp file err: %v", err)
	}

	f.WriteString("ENV_HTTP_PORT=9090\n")
	f.Close()

	e, err := Ignite(f.Name(), portal.GetDefaultValidator())
	if err != nil {
		t.Fatalf("ignite: %v", err)
	}

	if e.Network.HttpPort != "9090" {
		t.Fatalf("env not loaded")
	}
}

func TestIgniteExampleEnvFile(t *testing.T) {
	keys := []string{
		"ENV_APP_NAME", "ENV_APP_URL", "ENV_APP_ENV_TYPE", "ENV_APP_LOG_LEVEL",
		"ENV_APP_LOGS_DIR", "ENV_APP_LOGS_DATE_FORMAT", "ENV_HTTP_HOST", "ENV_HTTP_PORT", "ENV_HTTP_TRUSTED_PROXIES",
		"ENV_SENTRY_DSN", "ENV_PING_USERNAME", "ENV_PING_PASSWORD", "ENV_TRACING_ENABLED",
		"ENV_TRACING_OTLP_ENDPOINT", "ENV_FIXTURES_DIR", "ENV_EXPORT_DIR", "ENV_EXPORT_CRON",
	}

	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	previous := env.SecretsDir
	env.SecretsDir = t.TempDir()
	t.Cleanup(func() { env.SecretsDir = previous })

	e, err := Ignite(filepath.Join("..", "..", ".env.example"), portal.GetDefaultValidator())
	if err != nil {
		t.Fatalf("ignite example: %v", err)
	}

	if e.Sentry.IsEnabled() || e.Tracing.Enabled {
		t.Fatalf("example env should boot with sentry and tracing off")
	}
}

func TestIgniteMissingFile(t *testing.T) {
	if _, err := Ignite("/nonexistent/.env", portal.GetDefaultValidator()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestAppBootServesRoutes(t *testing.T) {
	validEnvVars(t)

	e, err := MakeEnv(portal.GetDefaultValidator())
	if err != nil {
		t.Fatalf("make env: %v", err)
	}

	app, err := NewApp(e, portal.GetDefaultValidator())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer app.CloseLogs()
	defer app.CloseTracer()

	app.Boot()

	if app.GetMux() == nil {
		t.Fatalf("expected mux")
	}

	if n := len(app.GetWebsiteRoutes().Routes()); n != 2 {
		t.Fatalf("static routes %d", n)
	}

	for _, path := range []string{"/experience", "/experience/timeline", "/metrics"} {
		rec := httptest.NewRecorder()
		app.GetMux().ServeHTTP(rec, httptest.NewRequest("GET", path, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d", path, rec.Code)
		}
	}
}

func TestBootPanicsWithoutRouter(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()

	(&App{}).Boot()
}
