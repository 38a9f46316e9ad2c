package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ashwinyue/toolfinder/internal/config"
	"github.com/ashwinyue/toolfinder/internal/database"
	"github.com/ashwinyue/toolfinder/internal/handler"
	"github.com/ashwinyue/toolfinder/internal/repository"
	"github.com/ashwinyue/toolfinder/internal/router"
	"github.com/ashwinyue/toolfinder/internal/service"
	"github.com/ashwinyue/toolfinder/internal/service/catalog"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalAwareContext(cmd.Context())
			defer cancel()
			return serve(ctx, opts)
		},
	}
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the postgres schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap(opts)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			db, err := database.New(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Migrate(cmd.Context()); err != nil {
				return err
			}
			logger.Info("database migrated", zap.String("dbname", cfg.Database.DBName))
			return nil
		},
	}
}

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample catalog into an empty store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap(opts)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			repos, closeRepos, err := openRepositories(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer closeRepos()

			_, err = catalog.SeedSampleData(cmd.Context(), repos.Catalog, logger)
			return err
		},
	}
}

// bootstrap 加载配置并创建日志
func bootstrap(opts *rootOptions) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = level
	return zcfg.Build()
}

// openRepositories 按存储驱动创建仓库
func openRepositories(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*repository.Repositories, func(), error) {
	if cfg.Storage.Driver == config.DriverMemory {
		logger.Info("using in-memory catalog store")
		return repository.NewMemoryRepositories(), func() {}, nil
	}

	db, err := database.New(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	logger.Info("database connected", zap.String("dbname", cfg.Database.DBName))
	return repository.NewRepositories(db.DB), func() { _ = db.Close() }, nil
}

func serve(ctx context.Context, opts *rootOptions) error {
	cfg, logger, err := bootstrap(opts)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.Server.Mode)

	repos, closeRepos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepos()

	if cfg.Storage.SeedSampleData {
		if _, err := catalog.SeedSampleData(ctx, repos.Catalog, logger); err != nil {
			return err
		}
	}

	redisClient := service.NewRedisClient(cfg)
	if redisClient != nil {
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, search history will fail until it recovers", zap.Error(err))
		}
	}

	services, err := service.NewServices(repos, cfg, redisClient, prometheus.DefaultRegisterer, logger)
	if err != nil {
		return err
	}
	r := router.SetupRouter(handler.NewHandlers(services), logger, prometheus.DefaultGatherer)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("server exited")
	return nil
}
