package logging

import (
	"os"
	"time"

	sentryzerolog "github.com/getsentry/sentry-go/zerolog"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"skillhub/internal/config"
)

// New builds the process logger: pretty console output for development, JSON
// plus an optional Sentry writer for production. The returned writer is nil
// unless Sentry is active; the caller owns closing it.
func New(cfg config.Config) (zerolog.Logger, *sentryzerolog.Writer) {
	level, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if !cfg.IsEnvProd() {
		consoleWriter := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
		return zerolog.New(consoleWriter).
			With().
			Timestamp().
			Logger(), nil
	}

	sentryWriter, err := sentryzerolog.New(sentryzerolog.Config{
		Options: sentryzerolog.Options{
			Levels:          []zerolog.Level{zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel},
			WithBreadcrumbs: true,
			FlushTimeout:    3 * time.Second,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize Sentry writer, using stderr only")
		return zerolog.New(os.Stderr).
			With().
			Timestamp().
			Logger(), nil
	}

	multiWriter := zerolog.MultiLevelWriter(os.Stderr, sentryWriter)
	return zerolog.New(multiWriter).
		With().
		Timestamp().
		Str("app", cfg.App.AppName).
		Str("environment", cfg.App.Environment).
		Logger(), sentryWriter
}
