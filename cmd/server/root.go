package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ridwanfathin/shop-admin-service/internal/cache"
	"github.com/ridwanfathin/shop-admin-service/internal/config"
	"github.com/ridwanfathin/shop-admin-service/internal/database"
	"github.com/ridwanfathin/shop-admin-service/internal/logger"
	"github.com/ridwanfathin/shop-admin-service/internal/metrics"
	"github.com/ridwanfathin/shop-admin-service/internal/reporting"
	"github.com/ridwanfathin/shop-admin-service/internal/repository"
	"github.com/ridwanfathin/shop-admin-service/internal/service"
)

const connectTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "shop-admin",
		Short:         "Shop admin reporting service",
		Long:          "Serves and computes the shop admin reports: invoice status counts, revenue series, best sellers, customer cohorts and sales summaries.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newReportCmd())
	return cmd
}

// app holds the dependencies shared by every command
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *database.PostgresDB
	engine *reporting.Engine
	closer []func()
}

// bootstrap loads configuration, builds the logger and connects to the database.
func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(logger.Config{
		ServiceName: "shop-admin",
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	for _, warning := range cfg.Warnings {
		log.Warn(warning)
	}

	if err := cfg.RequireDatabase(); err != nil {
		return nil, err
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	db, err := database.NewPostgresDB(connectCtx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	a := &app{cfg: cfg, logger: log, db: db}
	a.closer = append(a.closer, db.Close, func() { _ = log.Sync() })

	if cfg.RunMigrations {
		if err := a.migrate(); err != nil {
			a.Close()
			return nil, err
		}
	}

	a.engine = reporting.NewEngine(
		repository.NewPostgresTransactionStore(db.SQLDB()),
		reporting.WithLocation(cfg.ReportLocation),
		reporting.WithMaxLimit(cfg.ReportTopLimitMax),
		reporting.WithLogger(log),
	)
	return a, nil
}

func (a *app) migrate() error {
	version, err := database.RunMigrations(a.db.SQLDB())
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	a.logger.Info("database migrated", zap.Uint("version", version))
	return nil
}

// reportService wraps the engine in the configured result cache.
func (a *app) reportService(ctx context.Context) service.ReportService {
	if a.cfg.ReportCacheTTL <= 0 {
		return a.engine
	}

	var store cache.Store = cache.NewMemoryStore()
	if a.cfg.RedisURL != "" {
		redisStore, err := a.redisStore(ctx)
		if err != nil {
			a.logger.Warn("redis unavailable, using in-process report cache", zap.Error(err))
		} else {
			store = redisStore
		}
	}
	a.logger.Info("report cache enabled", zap.Duration("ttl", a.cfg.ReportCacheTTL))
	return service.NewReportService(a.engine, store, a.cfg.ReportCacheTTL, a.logger)
}

func (a *app) redisStore(ctx context.Context) (*cache.RedisStore, error) {
	client, err := cache.NewRedisClient(a.cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	store := cache.NewRedisStore(client, "")

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		_ = store.Close()
		return nil, err
	}
	a.closer = append(a.closer, func() { _ = store.Close() })
	return store, nil
}

func (a *app) initMetrics() {
	if a.cfg.MetricsEnabled {
		metrics.Init(a.db.SQLDB(), a.logger)
	}
}

// Close releases resources in reverse order of acquisition
func (a *app) Close() {
	for i := len(a.closer) - 1; i >= 0; i-- {
		a.closer[i]()
	}
}
