package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog/log"

	"skillhub/internal/app"
	"skillhub/internal/config"
	"skillhub/internal/database/migration"
	dbpostgres "skillhub/internal/database/postgres"
	"skillhub/internal/database/seeder"
	"skillhub/internal/infrastructure/cache"
	"skillhub/internal/logging"
	"skillhub/internal/usecase"
	"skillhub/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if cfg.IsEnvProd() {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.App.SentryDSN,
			Environment: cfg.App.Environment,
		}); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize sentry")
		}
		defer sentry.Flush(2 * time.Second)
	}

	logger, sentryWriter := logging.New(cfg)
	if sentryWriter != nil {
		defer func() {
			_ = sentryWriter.Close()
		}()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := dbpostgres.Connect(ctx, cfg.Database)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		_ = db.Close()
	}()

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer startupCancel()

	if cfg.Database.ResetOnStart {
		logger.Warn().Msg("DB_RESET set, dropping schema")
		if err := migration.Reset(startupCtx, db.SQLDB()); err != nil {
			logger.Fatal().Err(err).Msg("failed to reset schema")
		}
	}

	if err := (migration.Runner{Dir: cfg.Database.MigrationsDir}).Run(startupCtx, db.SQLDB()); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	defer func() {
		_ = redisCache.Close()
	}()

	if cfg.Database.RunSeeders {
		if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(startupCtx, db); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed database")
		}
		usecase.InvalidateSkillListCache(startupCtx, redisCache)
		logger.Info().Msg("seed data applied")
	}

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	application := app.New(cfg, db, redisCache, hub, logger)

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid HTTP port")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Fiber.Listen(addr)
	}()
	logger.Info().Str("addr", addr).Msg("server listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal().Err(err).Msg("server error")
		}
	case <-sigCh:
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := application.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown error")
		}
	}
}
