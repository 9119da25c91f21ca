package kernel

import (
	"log/slog"
	"net/http"

	"github.com/folio/metal/env"
	"github.com/folio/metal/router"
	"github.com/folio/pkg/portal"
)

func (a *App) SetRouter(router router.Router) {
	a.router = &router
}

func (a *App) CloseLogs() {
	if a.logs == nil {
		return
	}

	a.logs.Close()
}

func (a *App) CloseTracer() {
	if err := a.tracer.Shutdown(); err != nil {
		slog.Error("Error shutting down tracer", "error", err)
	}
}

func (a *App) IsLocal() bool {
	return a.env.App.IsLocal()
}

func (a *App) IsProduction() bool {
	return a.env.App.IsProduction()
}

func (a *App) GetEnv() *env.Environment {
	return a.env
}

func (a *App) GetSentry() *portal.Sentry {
	return a.sentry
}

func (a *App) GetMux() *http.ServeMux {
	if a.router == nil {
		return nil
	}

	return a.router.Mux
}

func (a *App) GetWebsiteRoutes() *router.WebsiteRoutes {
	if a.router == nil {
		return nil
	}

	return a.router.WebsiteRoutes
}
