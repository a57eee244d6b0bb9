package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"

	"skillhub/internal/config"
	"skillhub/internal/database"
	"skillhub/internal/delivery/http/middleware"
	"skillhub/internal/delivery/http/routes"
	"skillhub/internal/infrastructure/cache"
	"skillhub/internal/ws"
)

type App struct {
	Fiber *fiber.App
}

func New(cfg config.Config, db database.DB, c *cache.Redis, hub *ws.Hub, logger zerolog.Logger) *App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())

	routes.NewRegistry(cfg, db, c, hub, logger).Register(f)

	return &App{Fiber: f}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
