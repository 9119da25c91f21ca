package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/folio/metal/kernel"
	"github.com/folio/pkg/endpoint"
	"github.com/folio/pkg/portal"
)

var app *kernel.App

func init() {
	validate := portal.GetDefaultValidator()

	secrets, err := kernel.Ignite("./.env", validate)
	if err != nil {
		slog.Error("Error loading environment", "error", err)
		os.Exit(1)
	}

	app, err = kernel.NewApp(secrets, validate)
	if err != nil {
		slog.Error("Error bootstrapping app", "error", err)
		os.Exit(1)
	}
}

func main() {
	defer app.CloseLogs()
	defer app.CloseTracer()

	app.Boot()

	e := app.GetEnv()
	addr := e.Network.GetHostURL()

	handler := endpoint.NewServerHandler(endpoint.ServerHandlerConfig{
		Mux:          app.GetMux(),
		IsProduction: app.IsProduction(),
		DevHost:      e.App.URL,
		Compress:     true,
		Wrap:         app.GetSentry().Handler.Handle,
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if err := endpoint.RunServer(addr, server); err != nil {
		slog.Error("Error running server", "error", err)
		os.Exit(1)
	}
}
