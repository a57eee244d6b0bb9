package handler

import (
	"github.com/gofiber/fiber/v3"

	"skillhub/internal/database"
	"skillhub/internal/pkg/response"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			return response.JSON(c, fiber.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
	}
	return response.JSON(c, fiber.StatusOK, map[string]string{"status": "ok"})
}
