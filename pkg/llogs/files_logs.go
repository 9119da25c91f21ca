package llogs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/folio/metal/env"
)

type Driver interface {
	Close() bool
}

type FilesLogs struct {
	path   string
	file   *os.File
	logger *slog.Logger
	env    *env.Environment
}

// MakeFilesLogs opens the dated log file and installs it as the default slog
// logger at the configured level.
func MakeFilesLogs(env *env.Environment) (Driver, error) {
	manager := FilesLogs{env: env}
	manager.path = manager.DefaultPath()

	if err := os.MkdirAll(filepath.Dir(manager.path), 0o755); err != nil {
		return FilesLogs{}, fmt.Errorf("failed to create log directory: %w", err)
	}

	resource, err := os.OpenFile(manager.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return FilesLogs{}, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.New(slog.NewTextHandler(resource, &slog.HandlerOptions{
		Level: env.Logs.SlogLevel(),
	}))

	slog.SetDefault(handler)

	manager.file = resource
	manager.logger = handler

	return manager, nil
}

func (manager FilesLogs) DefaultPath() string {
	logsEnvironment := manager.env.Logs

	return fmt.Sprintf(
		logsEnvironment.Dir,
		time.Now().UTC().Format(logsEnvironment.DateFormat),
	)
}

func (manager FilesLogs) Close() bool {
	if manager.file == nil {
		return true
	}

	if err := manager.file.Close(); err != nil {
		manager.logger.Error("error closing file: " + err.Error())

		return false
	}

	return true
}
