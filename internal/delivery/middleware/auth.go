package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"linkvault/internal/infrastructure"
)

const userIDKey = "userID"

// Auth gates the content routes. It accepts the Authorization header either
// as the bare token or in the "Bearer <token>" form (case-sensitive prefix),
// verifies it, and binds the user id into the per-request echo context. A
// rejected request never reaches a handler, so no store access can happen
// before verification.
func Auth(jwtService *infrastructure.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"message": "please enter session token",
				})
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")

			userID, err := jwtService.VerifyToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"message": "invalid token",
				})
			}

			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// BoundUserID returns the user id Auth stored for this request. It is only
// meaningful on routes behind Auth.
func BoundUserID(c echo.Context) uint {
	userID, _ := c.Get(userIDKey).(uint)
	return userID
}
