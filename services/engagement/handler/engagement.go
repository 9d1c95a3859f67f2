package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fanloop/fanloop/internal/utils"
	"github.com/fanloop/fanloop/services/engagement"
)

// EngagementHandler handles the internal scheduled-action endpoints
type EngagementHandler struct {
	engagementUC engagement.EngagementUC
}

// NewEngagementHandler creates a new engagement handler
func NewEngagementHandler(engagementUC engagement.EngagementUC) *EngagementHandler {
	return &EngagementHandler{
		engagementUC: engagementUC,
	}
}

// ProcessDue handles the cron trigger for due actions. Running it with
// nothing due is a no-op, so overlapping or repeated triggers are safe.
func (h *EngagementHandler) ProcessDue(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return utils.BadRequestResponse(c, "limit must be a non-negative integer")
		}
		limit = parsed
	}

	report, err := h.engagementUC.ProcessDue(c.Request().Context(), limit)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to process due actions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Due actions processed", report)
}

// Backfill handles the cron trigger for unresponded older comments
func (h *EngagementHandler) Backfill(c echo.Context) error {
	hours := 24
	if raw := c.QueryParam("older_than_hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return utils.BadRequestResponse(c, "older_than_hours must be a positive integer")
		}
		hours = parsed
	}

	limit := 50
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return utils.BadRequestResponse(c, "limit must be a positive integer")
		}
		limit = parsed
	}

	olderThan := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)

	report, err := h.engagementUC.Backfill(c.Request().Context(), olderThan, limit)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to backfill actions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Backfill completed", report)
}

// CancelAction handles cancellation of one pending action
func (h *EngagementHandler) CancelAction(c echo.Context) error {
	actionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid action ID")
	}

	cancelled, err := h.engagementUC.Cancel(c.Request().Context(), actionID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to cancel action")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Cancel processed", map[string]interface{}{
		"action_id": actionID,
		"cancelled": cancelled,
	})
}
