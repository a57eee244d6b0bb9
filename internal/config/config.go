package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
}

type AppConfig struct {
	AppName     string `env:"APP_NAME" envDefault:"skillhub"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"3000"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	SentryDSN   string `env:"SENTRY_DSN"`
}

type DatabaseConfig struct {
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME" envDefault:"skillhub"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBSSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`

	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"10s"`
	MigrationsDir  string        `env:"MIGRATIONS_DIR" envDefault:"migrations"`
	PoolMaxConns   int32         `env:"DB_POOL_MAX_CONNS"`
	PoolMinConns   int32         `env:"DB_POOL_MIN_CONNS"`

	// ResetOnStart drops and recreates the schema before migrations run.
	// Destructive; never enable against a database with data to preserve.
	ResetOnStart bool `env:"DB_RESET" envDefault:"false"`
	RunSeeders   bool `env:"DB_SEED" envDefault:"false"`
}

type JWTConfig struct {
	Secret    string        `env:"JWT_SECRET,required"`
	ExpiresIn time.Duration `env:"JWT_TTL" envDefault:"1h"`
}

type RedisConfig struct {
	Host     string        `env:"REDIS_HOST"`
	Port     string        `env:"REDIS_PORT" envDefault:"6379"`
	Password string        `env:"REDIS_PASSWORD"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"10m"`
}

func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) IsEnvProd() bool {
	return c.App.Environment == "production" && c.App.SentryDSN != ""
}
