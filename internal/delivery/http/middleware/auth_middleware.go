package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"skillhub/internal/usecase"
)

// CtxUserKey holds the authenticated usecase.UserSummary in request locals.
const CtxUserKey = "auth_user"

// AuthMiddleware gates protected routes: it resolves the authorization header
// to a stored user on every request and short-circuits with 401 on any
// failure. The token is the raw header value; a "Bearer " prefix is tolerated
// and stripped.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := tokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Not authorized", nil)
		}

		usr, err := m.auth.ResolveToken(c.Context(), token)
		if err != nil {
			return NewAppError(fiber.StatusUnauthorized, "Not authorized", err)
		}

		c.Locals(CtxUserKey, usr)
		return c.Next()
	}
}

// AuthenticatedUser retrieves the gate's resolved user from request locals.
func AuthenticatedUser(c fiber.Ctx) (usecase.UserSummary, bool) {
	usr, ok := c.Locals(CtxUserKey).(usecase.UserSummary)
	return usr, ok
}

func tokenFromHeader(authHeader string) (string, bool) {
	token := strings.TrimSpace(authHeader)
	if token == "" {
		return "", false
	}

	if rest, found := strings.CutPrefix(token, "Bearer "); found {
		token = strings.TrimSpace(rest)
	}
	if token == "" {
		return "", false
	}
	return token, true
}
