package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/fanloop/fanloop/internal/utils"
	"github.com/labstack/echo/v4"
)

// CronTokenMiddleware guards the externally-triggered worker endpoints with
// a shared-secret bearer token. An empty configured secret rejects every
// request rather than leaving the endpoint open.
func CronTokenMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" {
				return utils.UnauthorizedResponse(c, "Cron trigger is not configured")
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(secret)) != 1 {
				return utils.UnauthorizedResponse(c, "Invalid cron token")
			}

			return next(c)
		}
	}
}
