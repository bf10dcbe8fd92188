package middleware

import (
	"strings"

	"github.com/Rosanadeaibes/my-notes/internal/apperror"
	"github.com/Rosanadeaibes/my-notes/internal/auth/service"
	"github.com/gofiber/fiber/v2"
)

const userIDKey = "userID"

// RequireAuth gates a route behind a valid bearer access token. On success
// the resolved user id is stored in the request locals and readable via
// UserID. A single verification attempt per request, no retry.
func RequireAuth(tokens service.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return apperror.ErrInvalidTokenFormat
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := tokens.Verify(service.KindAccess, tokenString)
		if err != nil {
			return err
		}

		c.Locals(userIDKey, userID)

		return c.Next()
	}
}

// UserID returns the identity attached by RequireAuth, or "" when the
// request did not pass through the guard.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
