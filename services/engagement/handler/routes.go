package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fanloop/fanloop/internal/pkg/middleware"
)

// RegisterRoutes registers the internal engagement endpoints. All of them
// sit behind the shared cron secret; none are member facing.
func (h *EngagementHandler) RegisterRoutes(e *echo.Echo, cronSecret string) {
	internal := e.Group("/internal", middleware.CronTokenMiddleware(cronSecret))

	cron := internal.Group("/cron/engagement")
	cron.POST("/process-due", h.ProcessDue)
	cron.POST("/backfill", h.Backfill)

	internal.DELETE("/engagement/actions/:id", h.CancelAction)
}
