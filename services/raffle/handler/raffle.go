package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fanloop/fanloop/internal/pkg/middleware"
	"github.com/fanloop/fanloop/internal/utils"
	"github.com/fanloop/fanloop/services/raffle"
)

// RaffleHandler handles the internal draw endpoint
type RaffleHandler struct {
	raffleUC raffle.RaffleUC
}

// NewRaffleHandler creates a new raffle handler
func NewRaffleHandler(raffleUC raffle.RaffleUC) *RaffleHandler {
	return &RaffleHandler{
		raffleUC: raffleUC,
	}
}

// RegisterRoutes registers the internal raffle endpoints
func (h *RaffleHandler) RegisterRoutes(e *echo.Echo, cronSecret string) {
	internal := e.Group("/internal", middleware.CronTokenMiddleware(cronSecret))
	internal.POST("/raffles/challenges/:id/draw", h.DrawWinners)
}

// DrawWinners handles a draw trigger for one challenge
func (h *RaffleHandler) DrawWinners(c echo.Context) error {
	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid challenge ID")
	}

	result, err := h.raffleUC.DrawWinners(c.Request().Context(), challengeID)
	if err != nil {
		switch {
		case errors.Is(err, raffle.ErrChallengeNotFound):
			return utils.NotFoundResponse(c, "Challenge not found")
		case errors.Is(err, raffle.ErrNoEligibleParticipants):
			return utils.UnprocessableEntityResponse(c, "No eligible participants")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to draw winners")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Winners drawn", result)
}
