package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"

	"skillhub/internal/pkg/response"
)

type AppError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

// ErrorMiddleware turns handler errors into {"error": message} responses.
// Anything unrecognized, and every 5xx, collapses to a generic 500 so internal
// detail never leaks to the caller.
type ErrorMiddleware struct {
	logger zerolog.Logger
}

func NewErrorMiddleware(logger zerolog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error().Any("panic", r).Str("path", c.Path()).Msg("panic recovered")
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg := m.normalizeError(c, err)
		return response.Error(c, status, msg)
	}
}

func (m *ErrorMiddleware) normalizeError(c fiber.Ctx, err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 || status >= 500 {
			m.logger.Error().Err(err).Str("path", c.Path()).Msg("request failed")
			return fiber.StatusInternalServerError, response.MessageInternalServerError
		}
		return status, appErr.Message
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			m.logger.Error().Err(err).Str("path", c.Path()).Msg("request failed")
			return fiber.StatusInternalServerError, response.MessageInternalServerError
		}
		return status, fiberErr.Message
	}

	m.logger.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return fiber.StatusInternalServerError, response.MessageInternalServerError
}
