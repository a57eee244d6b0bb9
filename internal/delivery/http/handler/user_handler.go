package handler

import (
	"github.com/gofiber/fiber/v3"

	"skillhub/internal/delivery/http/dto"
	"skillhub/internal/delivery/http/middleware"
	"skillhub/internal/pkg/response"
	"skillhub/internal/usecase"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/users", h.List)
}

func (h *UserHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListUsers(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	res := make([]dto.UserResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.UserResponse{ID: it.ID, Username: it.Username})
	}
	return response.JSON(c, fiber.StatusOK, res)
}
