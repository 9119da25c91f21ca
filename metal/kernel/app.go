package kernel

import (
	"fmt"
	"net/http"
	"time"

	"github.com/folio/metal/env"
	"github.com/folio/metal/router"
	"github.com/folio/pkg/cache"
	"github.com/folio/pkg/llogs"
	"github.com/folio/pkg/middleware"
	"github.com/folio/pkg/portal"
	"github.com/folio/pkg/timeline"
)

const (
	publicThrottleWindow = time.Minute
	publicThrottleHits   = 120
)

type App struct {
	router    *router.Router
	sentry    *portal.Sentry
	logs      llogs.Driver
	tracer    *portal.TracerProvider
	validator *portal.Validator
	env       *env.Environment
}

func NewApp(e *env.Environment, validator *portal.Validator) (*App, error) {
	logs, err := MakeLogs(e)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > %w", err)
	}

	sentry, err := MakeSentry(e)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > %w", err)
	}

	tracer, err := MakeTracer(e)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > %w", err)
	}

	app := App{
		env:       e,
		validator: validator,
		logs:      logs,
		sentry:    sentry,
		tracer:    tracer,
	}

	r, err := MakeRouter(e)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > %w", err)
	}

	app.SetRouter(*r)

	return &app, nil
}

// MakeRouter builds the router without the process-wide side effects of
// NewApp (log file, Sentry, tracer). The exporter uses it directly.
func MakeRouter(e *env.Environment) (*router.Router, error) {
	renderer, err := timeline.NewRenderer(
		timeline.WithLang(e.App.Lang()),
		timeline.WithTitle(e.App.Name+" - Work Experience"),
	)

	if err != nil {
		return nil, fmt.Errorf("could not create the timeline renderer: %w", err)
	}

	throttle := middleware.MakeThrottleMiddleware(
		publicThrottleWindow,
		publicThrottleHits,
		portal.ParseTrustedProxies(e.Network.TrustedProxies)...,
	)

	return &router.Router{
		Env:           e,
		Mux:           http.NewServeMux(),
		Pipeline:      middleware.MakePipeline(throttle),
		WebsiteRoutes: router.NewWebsiteRoutes(e),
		Renderer:      renderer,
		Cache:         cache.NewTTLCache(),
	}, nil
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	Register(a.router)
}

// Register wires every route onto r.
func Register(r *router.Router) {
	r.Experience()
	r.Timeline()
	r.KeepAlive()
	r.Metrics()
}
