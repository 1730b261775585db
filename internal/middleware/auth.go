package middleware

import (
	"strings"

	"menumatch/internal/errors"
	"menumatch/internal/handlers"
	"menumatch/internal/services"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// RequireAdmin creates a middleware that requires a valid admin JWT token.
// Catalog writes (standard menus, verification) go through this
func RequireAdmin(authService services.AuthServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			if !strings.HasPrefix(authHeader, bearerPrefix) {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}
			token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
			if token == "" {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := authService.ValidateToken(token)
			if err != nil {
				return handlers.SendError(c, errors.AuthExpiredToken)
			}

			c.Set("admin_username", claims.Username)
			c.Set("admin_role", claims.Role)

			return next(c)
		}
	}
}
