package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	portssvc "github.com/pverdier/creance_manager_app/internal/core/ports/services"
	"github.com/pverdier/creance_manager_app/internal/middleware"
)

// Config holds the reminder scheduler configuration.
type Config struct {
	// RunHour is the local hour (24h) of the single daily run.
	RunHour int

	// CheckInterval is how often to check whether it is time to run.
	CheckInterval time.Duration
}

// DefaultConfig returns the default scheduler configuration.
func DefaultConfig(runHour int) Config {
	return Config{
		RunHour:       runHour,
		CheckInterval: time.Minute,
	}
}

// RelanceScheduler fires the reminder engine once per day at the configured
// hour. Manual runs through the API are unaffected; the engine's own
// deduplication keeps an overlapping manual run harmless.
type RelanceScheduler struct {
	config Config
	runner portssvc.RelanceRunnerSvc
	logger *slog.Logger

	cancel      context.CancelFunc
	wg          sync.WaitGroup
	mu          sync.Mutex
	isRunning   bool
	lastRunDate string // Track which date we last ran for
}

// NewRelanceScheduler creates a new reminder scheduler.
func NewRelanceScheduler(config Config, runner portssvc.RelanceRunnerSvc, logger *slog.Logger) *RelanceScheduler {
	return &RelanceScheduler{
		config: config,
		runner: runner,
		logger: logger,
	}
}

// Start starts the scheduler loop.
func (s *RelanceScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.runLoop(ctx)

	s.logger.Info("Reminder scheduler started",
		slog.Int("run_hour", s.config.RunHour),
		slog.Duration("check_interval", s.config.CheckInterval),
	)

	return nil
}

// Stop stops the scheduler and waits for an in-flight run to finish.
func (s *RelanceScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Reminder scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runLoop checks periodically whether the daily run is due.
func (s *RelanceScheduler) runLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.checkAndTrigger(ctx)
		}
	}
}

// checkAndTrigger runs the engine when the configured hour is reached and it
// has not run yet today.
func (s *RelanceScheduler) checkAndTrigger(ctx context.Context) {
	now := time.Now()
	currentDate := now.Format("2006-01-02")

	// Skip if we already ran today
	s.mu.Lock()
	if s.lastRunDate == currentDate {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	if now.Hour() != s.config.RunHour {
		return
	}

	s.mu.Lock()
	s.lastRunDate = currentDate
	s.mu.Unlock()

	jobLogger := s.logger.With(slog.String("job", "relance_run"), slog.String("run_date", currentDate))
	jobCtx := middleware.WithLogger(ctx, jobLogger)

	jobLogger.Info("Triggering daily reminder run")
	result, err := s.runner.ProcessReminders(jobCtx, now)
	if err != nil {
		jobLogger.Error("Daily reminder run failed", slog.String("error", err.Error()))
		return
	}

	jobLogger.Info("Daily reminder run finished",
		slog.Int("processed", result.Processed),
		slog.Int("emails_sent", result.EmailsSent),
		slog.Int("sms_sent", result.SMSSent),
		slog.Int("status_changes", result.StatusChanges),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", len(result.Errors)),
	)
}
