package routes

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"

	"skillhub/internal/config"
	"skillhub/internal/database"
	"skillhub/internal/delivery/http/handler"
	"skillhub/internal/delivery/http/middleware"
	"skillhub/internal/infrastructure/cache"
	"skillhub/internal/pkg/jwt"
	"skillhub/internal/repository"
	"skillhub/internal/usecase"
	"skillhub/internal/ws"
)

// Registry wires repositories, usecases, and handlers onto the Fiber app.
type Registry struct {
	cfg    config.Config
	db     database.DB
	cache  *cache.Redis
	hub    *ws.Hub
	logger zerolog.Logger
}

func NewRegistry(cfg config.Config, db database.DB, c *cache.Redis, hub *ws.Hub, logger zerolog.Logger) *Registry {
	return &Registry{cfg: cfg, db: db, cache: c, hub: hub, logger: logger}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(r.cfg.JWT.Secret, r.cfg.JWT.ExpiresIn)

	userRepo := repository.NewPostgresUserRepository(r.db)
	skillRepo := repository.NewPostgresSkillRepository(r.db)
	userSkillRepo := repository.NewPostgresUserSkillRepository(r.db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo, r.cache)
	userSkillUC := usecase.NewUserSkillUsecase(userSkillRepo)

	authMw := middleware.NewAuthMiddleware(authUC)

	handler.NewHealthHandler(r.db).RegisterRoutes(app)

	api := app.Group("/api")
	handler.NewAuthHandler(authUC).RegisterRoutes(api.Group("/auth"), authMw)
	handler.NewSkillHandler(skillUC).RegisterRoutes(api)
	handler.NewUserHandler(userUC).RegisterRoutes(api)
	handler.NewUserSkillHandler(userSkillUC).RegisterRoutes(api, authMw)

	if r.hub != nil {
		api.Get("/events", ws.NewHandler(r.hub, r.logger).HandleEvents)
	}
}
