package watcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 250 * time.Millisecond

// OnChange receives the last fixture path that changed within a debounce
// window.
type OnChange func(ctx context.Context, path string) error

var fixtureExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// Watcher re-runs a callback whenever a fixture file in dir changes. Editors
// often emit several events per save, so events are coalesced.
type Watcher struct {
	dir      string
	debounce time.Duration
	onChange OnChange
	logger   *slog.Logger
}

func New(dir string, debounce time.Duration, onChange OnChange) (*Watcher, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("watch directory must be provided")
	}

	if onChange == nil {
		return nil, errors.New("change callback cannot be nil")
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		dir:      dir,
		debounce: debounce,
		onChange: onChange,
		logger:   slog.Default(),
	}, nil
}

// Run blocks until ctx is cancelled. Callback errors are logged and do not
// stop the watch.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	pending := ""

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			if !IsFixtureEvent(event) {
				continue
			}

			pending = event.Name
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}

			w.logger.Error("fixture watch error", "error", err)

		case <-timer.C:
			if pending == "" {
				continue
			}

			path := pending
			pending = ""

			if err := w.onChange(ctx, path); err != nil {
				w.logger.Error("fixture change handler failed", "path", path, "error", err)
			}
		}
	}
}

func IsFixtureEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}

	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}

	return fixtureExtensions[strings.ToLower(filepath.Ext(name))]
}
