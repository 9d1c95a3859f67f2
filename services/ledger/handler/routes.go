package handler

import (
	"github.com/fanloop/fanloop/internal/pkg/middleware"
	"github.com/fanloop/fanloop/internal/pkg/models"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the member-facing coin routes and the internal
// operator routes
func (h *LedgerHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig, cronSecret string) {
	g := e.Group("/api/v1/coins", middleware.JWTAuthMiddleware(jwtConfig))

	g.GET("/balance", h.GetBalance)
	g.POST("/grant", h.Grant)
	g.POST("/spend", h.Spend)

	r := e.Group("/api/v1/rewards", middleware.JWTAuthMiddleware(jwtConfig))
	r.POST("/claim", h.ClaimReward)

	internal := e.Group("/internal", middleware.CronTokenMiddleware(cronSecret))
	internal.GET("/ledger/:user_id/reconcile", h.Reconcile)
}
