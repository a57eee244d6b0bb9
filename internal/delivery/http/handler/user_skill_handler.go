package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"skillhub/internal/delivery/http/dto"
	"skillhub/internal/delivery/http/middleware"
	"skillhub/internal/pkg/response"
	"skillhub/internal/usecase"
)

type UserSkillHandler struct {
	uc usecase.UserSkillUsecase
}

type addUserSkillRequest struct {
	SkillID uuid.UUID `json:"skill_id"`
}

func NewUserSkillHandler(uc usecase.UserSkillUsecase) *UserSkillHandler {
	return &UserSkillHandler{uc: uc}
}

// RegisterRoutes mounts the association routes under
// /users/:userId/userSkills; every route runs behind the auth gate.
func (h *UserSkillHandler) RegisterRoutes(r fiber.Router, authMw *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	grp := r.Group("/users/:userId/userSkills", authMw.Middleware())
	grp.Get("/", h.List)
	grp.Post("/", h.Add)
	grp.Delete("/:id", h.Delete)
}

func (h *UserSkillHandler) List(c fiber.Ctx) error {
	usr, err := h.requireOwner(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListUserSkills(c.Context(), usr.ID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	res := make([]dto.UserSkillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.UserSkillResponse{ID: it.ID, UserID: it.UserID, SkillID: it.SkillID})
	}
	return response.JSON(c, fiber.StatusOK, res)
}

func (h *UserSkillHandler) Add(c fiber.Ctx) error {
	usr, err := h.requireOwner(c)
	if err != nil {
		return err
	}

	var req addUserSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	created, err := h.uc.AddUserSkill(c.Context(), usr.ID, req.SkillID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
		case errors.Is(err, usecase.ErrSkillAlreadyClaimed):
			return middleware.NewAppError(fiber.StatusConflict, "Skill already added", err)
		case errors.Is(err, usecase.ErrUnknownReference):
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Unknown skill", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
	}

	return response.JSON(c, fiber.StatusCreated, dto.UserSkillResponse{
		ID:      created.ID,
		UserID:  created.UserID,
		SkillID: created.SkillID,
	})
}

func (h *UserSkillHandler) Delete(c fiber.Ctx) error {
	usr, err := h.requireOwner(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	if err := h.uc.RemoveUserSkill(c.Context(), usr.ID, id); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// requireOwner enforces the ownership invariant: the user id in the path must
// be the authenticated user's id. Mismatch is a 403 before any data access.
func (h *UserSkillHandler) requireOwner(c fiber.Ctx) (usecase.UserSummary, error) {
	usr, ok := middleware.AuthenticatedUser(c)
	if !ok {
		return usecase.UserSummary{}, middleware.NewAppError(fiber.StatusUnauthorized, response.MessageNotAuthorized, nil)
	}

	pathID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return usecase.UserSummary{}, middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}
	if pathID != usr.ID {
		return usecase.UserSummary{}, middleware.NewAppError(fiber.StatusForbidden, response.MessageAccessDenied, nil)
	}

	return usr, nil
}
