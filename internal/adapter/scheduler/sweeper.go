package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"mesa-outreach/internal/core/port"
)

// Config controls the sweep loop.
type Config struct {
	// Interval between sweep ticks.
	Interval time.Duration
	// Deadline is the soft limit of one sweep. Work left when it fires
	// falls through to the next tick.
	Deadline time.Duration
	// LockTTL bounds how long the distributed lock outlives a crashed
	// holder.
	LockTTL time.Duration
}

func DefaultConfig() Config {
	return Config{
		Interval: time.Hour,
		Deadline: 5 * time.Minute,
		LockTTL:  10 * time.Minute,
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.Interval <= 0 {
		c.Interval = defaults.Interval
	}
	if c.Deadline <= 0 {
		c.Deadline = defaults.Deadline
	}
	if c.LockTTL < c.Deadline {
		c.LockTTL = 2 * c.Deadline
	}
	return c
}

// Engine is the part of port.OutreachUseCase the sweeper drives.
type Engine interface {
	Sweep(ctx context.Context) (*port.SweepReport, error)
}

// Sweeper runs the engine on a fixed interval. An in-progress guard makes
// sure sweeps never overlap: a tick that arrives while a sweep is running
// is skipped, not queued. An optional SweepLock extends the guard across
// processes sharing a store.
type Sweeper struct {
	engine Engine
	lock   port.SweepLock
	logger *slog.Logger
	cfg    Config

	running atomic.Bool
	wg      sync.WaitGroup
}

var _ port.SweepRunner = (*Sweeper)(nil)

// New returns a Sweeper. lock may be nil for single-process deployments.
func New(engine Engine, lock port.SweepLock, logger *slog.Logger, cfg Config) *Sweeper {
	return &Sweeper{
		engine: engine,
		lock:   lock,
		logger: logger.With(slog.String("component", "sweeper")),
		cfg:    cfg.withDefaults(),
	}
}

// Run sweeps once immediately and then on every tick until ctx is done.
// It waits for a running sweep before returning.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.logger.Info("sweeper started", slog.Duration("interval", s.cfg.Interval), slog.Duration("deadline", s.cfg.Deadline))
	s.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			s.wg.Wait()
			s.logger.Info("sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// Running reports whether a sweep is in progress in this process.
func (s *Sweeper) Running() bool {
	return s.running.Load()
}

func (s *Sweeper) tick(ctx context.Context) {
	if s.running.Load() {
		s.logger.Warn("previous sweep still running, tick skipped")
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		_, err := s.RunOnce(ctx)
		switch {
		case err == nil:
		case errors.Is(err, port.ErrSweepInProgress):
			s.logger.Warn("sweep skipped", slog.Any("error", err))
		default:
			s.logger.Error("sweep failed", slog.Any("error", err))
		}
	}()
}

// RunOnce runs a single guarded sweep with the configured deadline. It
// returns port.ErrSweepInProgress when a sweep is already running here or
// in another process holding the lock.
func (s *Sweeper) RunOnce(ctx context.Context) (*port.SweepReport, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, port.ErrSweepInProgress
	}
	defer s.running.Store(false)

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Deadline)
	defer cancel()

	if s.lock != nil {
		release, acquired, err := s.lock.TryLock(ctx, s.cfg.LockTTL)
		if err != nil {
			return nil, fmt.Errorf("acquire sweep lock: %w", err)
		}
		if !acquired {
			return nil, fmt.Errorf("%w: lock held by another process", port.ErrSweepInProgress)
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				s.logger.Warn("release sweep lock", slog.Any("error", err))
			}
		}()
	}

	start := time.Now()
	report, err := s.engine.Sweep(ctx)
	if report != nil {
		s.logger.Info("sweep finished",
			slog.Duration("took", time.Since(start)),
			slog.Int("contacted", report.Contacted),
			slog.Int("followed_up", report.FollowedUp),
			slog.Int("expired", report.Expired),
			slog.Int("slots_expired", report.SlotsExpired),
			slog.Int("replaced", report.Replaced),
			slog.Int("unresolved", report.Unresolved),
			slog.Int("conflicts", report.Conflicts),
			slog.Int("delivery_failures", report.DeliveryFailures),
			slog.Int("violations", report.Violations),
			slog.Int("failures", report.Failures),
			slog.Bool("aborted", report.Aborted))
	}
	return report, err
}
