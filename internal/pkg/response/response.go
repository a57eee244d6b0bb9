package response

import "github.com/gofiber/fiber/v3"

// ErrorBody is the wire shape for every failure: {"error": message}.
type ErrorBody struct {
	Error string `json:"error"`
}

const (
	MessageBadRequest          = "Bad request"
	MessageNotAuthorized       = "Not authorized"
	MessageAccessDenied        = "Access denied"
	MessageNotFound            = "Not found"
	MessageConflict            = "Conflict"
	MessageInternalServerError = "Internal Server Error"
)

func JSON(c fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(data)
}

func Error(c fiber.Ctx, status int, message string) error {
	if message == "" {
		message = defaultMessageForStatus(status)
	}
	return c.Status(status).JSON(ErrorBody{Error: message})
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageNotAuthorized
	case fiber.StatusForbidden:
		return MessageAccessDenied
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusConflict:
		return MessageConflict
	default:
		return MessageInternalServerError
	}
}
