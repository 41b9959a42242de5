package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"mesa-outreach/db/migrations"
	httpadapter "mesa-outreach/internal/adapter/http"
	"mesa-outreach/internal/adapter/memory"
	"mesa-outreach/internal/adapter/notifier"
	"mesa-outreach/internal/adapter/postgres"
	redisadapter "mesa-outreach/internal/adapter/redis"
	"mesa-outreach/internal/adapter/scheduler"
	"mesa-outreach/internal/adapter/usecase"
	"mesa-outreach/internal/clock"
	"mesa-outreach/internal/config"
	"mesa-outreach/internal/core/domain"
	"mesa-outreach/internal/core/port"
	"mesa-outreach/internal/db"
)

// main is the entry point of the outreach engine. It loads configuration,
// opens the configured store, optionally runs database migrations, then
// runs the sweeper and the HTTP server until a termination signal arrives.
func main() {
	// A missing .env file is fine; the environment wins anyway.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("engine stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("engine gracefully stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	sysClock := clock.SystemClock{}

	store, closeStore, err := openStore(ctx, cfg, sysClock, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	var (
		lock   port.SweepLock
		notify port.Notifier = notifier.NewLogNotifier(logger)
	)
	if cfg.Redis.Enabled() {
		rdb, err := redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis connection: %w", err)
		}
		defer rdb.Close()
		lock = redisadapter.NewLock(rdb, cfg.Redis.LockKey)
		if cfg.NotifierDriver == "redis" {
			notify = redisadapter.NewStreamNotifier(rdb, cfg.Redis.Stream, cfg.Redis.StreamMaxLen)
		}
	} else if cfg.NotifierDriver == "redis" {
		return errors.New("NOTIFIER_DRIVER=redis requires REDIS_ADDRESS")
	}

	engine := usecase.NewEngine(usecase.Deps{
		Prospects: store,
		Slots:     store,
		Messages:  store,
		Notifier:  notify,
		Clock:     sysClock,
		Logger:    logger,
	}, usecase.Config{
		Policy: domain.Policy{
			FollowUpAfter:      cfg.Campaign.FollowUpAfter,
			ExpireAfter:        cfg.Campaign.ExpireAfter,
			ProvisionalSlotTTL: cfg.Campaign.ProvisionalSlotTTL,
		},
		InitialBatch:  cfg.Sweep.InitialBatch,
		FollowUpBatch: cfg.Sweep.FollowUpBatch,
		ExpiryBatch:   cfg.Sweep.ExpiryBatch,
		SlotBatch:     cfg.Sweep.SlotBatch,
		NotifyTimeout: cfg.Sweep.NotifyTimeout,
	})

	sweeper := scheduler.New(engine, lock, logger, scheduler.Config{
		Interval: cfg.Sweep.Interval,
		Deadline: cfg.Sweep.Deadline,
		LockTTL:  cfg.Redis.LockTTL,
	})

	handler := httpadapter.NewHandler(engine, sweeper, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sweeper.Run(gctx)
		return nil
	})
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// openStore returns the configured port.Store and a function releasing
// its resources.
func openStore(ctx context.Context, cfg config.Config, c clock.Clock, logger *slog.Logger) (port.Store, func(), error) {
	switch cfg.StoreDriver {
	case "memory":
		logger.Warn("using in-memory store, state is lost on restart")
		return memory.NewStore(c), func() {}, nil
	case "postgres":
	default:
		return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.Psql.RunMigrations {
		from, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully", slog.Uint64("from", uint64(from)), slog.Uint64("to", uint64(migrations.Version)))
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection: %w", err)
	}
	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo prospects seeded")
	}
	return postgres.NewStore(pool), pool.Close, nil
}
