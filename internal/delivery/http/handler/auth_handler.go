package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"skillhub/internal/delivery/http/dto"
	"skillhub/internal/delivery/http/middleware"
	"skillhub/internal/pkg/response"
	"skillhub/internal/usecase"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router, authMw *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)

	protected := r.Group("", authMw.Middleware())
	protected.Get("/me", h.Me)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	usr, err := h.uc.Register(c.Context(), usecase.RegisterInput{Username: req.Username, Password: req.Password})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUsernameTaken):
			return middleware.NewAppError(fiber.StatusConflict, "Username already taken", err)
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
	}

	return response.JSON(c, fiber.StatusCreated, dto.UserResponse{ID: usr.ID, Username: usr.Username})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	token, err := h.uc.Login(c.Context(), usecase.LoginInput{Username: req.Username, Password: req.Password})
	if err != nil {
		// Unknown username and wrong password both map to 401 so login
		// failures do not reveal which accounts exist.
		switch {
		case errors.Is(err, usecase.ErrUserNotFound), errors.Is(err, usecase.ErrInvalidCredentials):
			return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageNotAuthorized, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
	}

	return response.JSON(c, fiber.StatusOK, dto.TokenResponse{Token: token})
}

func (h *AuthHandler) Me(c fiber.Ctx) error {
	usr, ok := middleware.AuthenticatedUser(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageNotAuthorized, nil)
	}
	return response.JSON(c, fiber.StatusOK, dto.UserResponse{ID: usr.ID, Username: usr.Username})
}
