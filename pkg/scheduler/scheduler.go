package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// Task is the work run on every tick, typically a static export.
type Task func(context.Context) error

// ErrBusy is returned by Run while a previous run is still in flight.
var ErrBusy = errors.New("scheduler: previous run still in progress")

// Parser accepts five or six field expressions plus descriptors such as
// "@daily" and "@every 10m".
var Parser = cron.NewParser(
	cron.SecondOptional |
		cron.Minute |
		cron.Hour |
		cron.Dom |
		cron.Month |
		cron.Dow |
		cron.Descriptor,
)

func Validate(expression string) error {
	expression = strings.TrimSpace(expression)

	if expression == "" {
		return errors.New("cron expression cannot be empty")
	}

	if _, err := Parser.Parse(expression); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}

	return nil
}

type Scheduler struct {
	engine    *cron.Cron
	spec      string
	task      Task
	logger    *slog.Logger
	timeout   time.Duration
	immediate bool

	mu      sync.Mutex
	started bool
	entryID cron.EntryID

	running atomic.Bool
	runs    atomic.Int64
	skips   atomic.Int64
}

type Option func(*Scheduler)

func WithEngine(c *cron.Cron) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.engine = c
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTimeout bounds every run of the task.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Scheduler) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithImmediateRun makes Start run the task once before the first tick.
func WithImmediateRun() Option {
	return func(s *Scheduler) {
		s.immediate = true
	}
}

func New(expression string, task Task, opts ...Option) (*Scheduler, error) {
	if err := Validate(expression); err != nil {
		return nil, err
	}

	if task == nil {
		return nil, errors.New("task cannot be nil")
	}

	s := &Scheduler{
		spec:   strings.TrimSpace(expression),
		task:   task,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.engine == nil {
		s.engine = cron.New(cron.WithParser(Parser))
	}

	return s, nil
}

// Start registers the task and starts ticking. Cancelling ctx stops the
// scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if s == nil {
		return errors.New("scheduler is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return errors.New("scheduler already started")
	}

	if s.immediate {
		s.tick(ctx)
	}

	entryID, err := s.engine.AddFunc(s.spec, func() { s.tick(ctx) })
	if err != nil {
		return fmt.Errorf("schedule task: %w", err)
	}

	s.entryID = entryID
	s.engine.Start()
	s.started = true

	if done := ctx.Done(); done != nil {
		go func() {
			<-done
			s.Stop()
		}()
	}

	return nil
}

// Stop halts the scheduler and waits for a running task to return.
func (s *Scheduler) Stop() {
	if s == nil {
		return
	}

	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()

		return
	}

	done := s.engine.Stop()
	s.engine.Remove(s.entryID)
	s.started = false
	s.mu.Unlock()

	<-done.Done()
}

// Run executes the task now. Overlapping runs are refused with ErrBusy.
func (s *Scheduler) Run(ctx context.Context) error {
	if s == nil {
		return errors.New("scheduler is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if !s.running.CompareAndSwap(false, true) {
		s.skips.Add(1)

		return ErrBusy
	}
	defer s.running.Store(false)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.runs.Add(1)

	return s.task(ctx)
}

// Next reports when the task fires next. It is zero until Start.
func (s *Scheduler) Next() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return time.Time{}
	}

	return s.engine.Entry(s.entryID).Next
}

// Stats returns how many runs started and how many were skipped as busy.
func (s *Scheduler) Stats() (runs, skips int64) {
	return s.runs.Load(), s.skips.Load()
}

func (s *Scheduler) tick(ctx context.Context) {
	err := s.Run(ctx)

	switch {
	case errors.Is(err, ErrBusy):
		s.logger.Warn("scheduled run skipped", "schedule", s.spec)
	case err != nil:
		s.logger.Error("scheduled run failed", "schedule", s.spec, "error", err)
	default:
		s.logger.Info("scheduled run finished", "schedule", s.spec)
	}
}
