package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fanloop/fanloop/internal/pkg/middleware"
)

// RegisterRoutes registers the notification endpoints. Webhooks carry
// their own HMAC authentication; the send endpoint sits behind the shared
// internal secret.
func (h *NotificationHandler) RegisterRoutes(e *echo.Echo, cronSecret string) {
	e.POST("/webhooks/email", h.EmailWebhook)
	e.POST("/webhooks/push", h.PushWebhook)

	internal := e.Group("/internal", middleware.CronTokenMiddleware(cronSecret))
	internal.POST("/notifications", h.Send)
}
