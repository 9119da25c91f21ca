package kernel

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/folio/metal/env"
	"github.com/folio/pkg/llogs"
	"github.com/folio/pkg/portal"
)

func MakeSentry(env *env.Environment) (*portal.Sentry, error) {
	cOptions := sentry.ClientOptions{
		Dsn:         env.Sentry.DSN,
		Debug:       env.App.IsLocal(),
		Environment: env.App.Type,
	}

	if err := sentry.Init(cOptions); err != nil {
		return nil, fmt.Errorf("sentry.Init: %w", err)
	}

	options := sentryhttp.Options{Repanic: true}
	handler := sentryhttp.New(options)

	return &portal.Sentry{
		Handler: handler,
		Options: &options,
		Env:     env,
	}, nil
}

func MakeLogs(env *env.Environment) (llogs.Driver, error) {
	lDriver, err := llogs.MakeFilesLogs(env)

	if err != nil {
		return nil, fmt.Errorf("logs: error opening logs file: %w", err)
	}

	return lDriver, nil
}

func MakeTracer(env *env.Environment) (*portal.TracerProvider, error) {
	return portal.NewTracerProvider(env)
}

func MakeEnv(validate *portal.Validator) (*env.Environment, error) {
	errorSuffix := "environment: "

	app := env.AppEnvironment{
		Name: env.GetEnvVar("ENV_APP_NAME"),
		URL:  env.GetEnvVar("ENV_APP_URL"),
		Type: env.GetEnvVar("ENV_APP_ENV_TYPE"),
	}

	logsEnv := env.LogsEnvironment{
		Level:      env.GetEnvVar("ENV_APP_LOG_LEVEL"),
		Dir:        env.GetEnvVar("ENV_APP_LOGS_DIR"),
		DateFormat: env.GetEnvVar("ENV_APP_LOGS_DATE_FORMAT"),
	}

	netEnv := env.NetEnvironment{
		HttpHost: env.GetEnvVar("ENV_HTTP_HOST"),
		HttpPort: env.GetEnvVar("ENV_HTTP_PORT"),

		TrustedProxies: env.SplitList(env.GetEnvVar("ENV_HTTP_TRUSTED_PROXIES")),
	}

	sentryEnv := env.SentryEnvironment{
		DSN: env.GetSecretOrEnv("sentry_dsn", "ENV_SENTRY_DSN"),
	}

	pingEnv := env.PingEnvironment{
		Username: env.GetSecretOrEnv("ping_username", "ENV_PING_USERNAME"),
		Password: env.GetSecretOrEnv("ping_password", "ENV_PING_PASSWORD"),
	}

	staticEnv := env.StaticEnvironment{
		FixturesDir: env.GetEnvVar("ENV_FIXTURES_DIR"),
		ExportDir:   env.GetEnvVar("ENV_EXPORT_DIR"),
		ExportCron:  env.GetEnvVar("ENV_EXPORT_CRON"),
	}

	tracingEnv := env.NewTracingEnvironment()

	models := []struct {
		name  string
		model any
	}{
		{"app", app},
		{"logs", logsEnv},
		{"network", netEnv},
		{"sentry", sentryEnv},
		{"ping", pingEnv},
		{"static", staticEnv},
		{"tracing", tracingEnv},
	}

	for _, item := range models {
		if _, err := validate.Rejects(item.model); err != nil {
			return nil, fmt.Errorf("%sinvalid [%s] model: %s", errorSuffix, item.name, validate.GetErrorsAsJson())
		}
	}

	folio := &env.Environment{
		App:     app,
		Logs:    logsEnv,
		Network: netEnv,
		Sentry:  sentryEnv,
		Ping:    pingEnv,
		Static:  staticEnv,
		Tracing: tracingEnv,
	}

	if _, err := validate.Rejects(folio); err != nil {
		return nil, fmt.Errorf("%sinvalid [folio] model: %s", errorSuffix, validate.GetErrorsAsJson())
	}

	return folio, nil
}
