package handler

import (
	"github.com/gofiber/fiber/v3"

	"skillhub/internal/delivery/http/dto"
	"skillhub/internal/delivery/http/middleware"
	"skillhub/internal/pkg/response"
	"skillhub/internal/usecase"
)

// SkillHandler exposes the skill catalog. The catalog is read-only over HTTP;
// rows come from seeding.
type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/skills", h.List)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	res := make([]dto.SkillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.SkillResponse{ID: it.ID, Name: it.Name})
	}
	return response.JSON(c, fiber.StatusOK, res)
}
