package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fanloop/fanloop/internal/pkg/logger"
	"github.com/fanloop/fanloop/internal/pkg/models"
	"github.com/fanloop/fanloop/internal/pkg/signature"
	"github.com/fanloop/fanloop/internal/utils"
	"github.com/fanloop/fanloop/services/notification"
)

// Webhook signature headers shared by both providers
const (
	headerSignature = "X-Webhook-Signature"
	headerTimestamp = "X-Webhook-Timestamp"
)

// NotificationHandler handles the send endpoint and the provider webhooks
type NotificationHandler struct {
	notificationUC notification.NotificationUC
	cfg            *models.Config
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationUC notification.NotificationUC, cfg *models.Config) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
		cfg:            cfg,
	}
}

// Send handles outbound notification requests
func (h *NotificationHandler) Send(c echo.Context) error {
	var req models.SendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Recipient == "" || req.Body == "" {
		return utils.BadRequestResponse(c, "recipient and body are required")
	}

	record, err := h.notificationUC.Send(c.Request().Context(), &req)
	if err != nil {
		if err == notification.ErrUnknownChannel {
			return utils.BadRequestResponse(c, "Unknown notification channel")
		}
		return utils.InternalServerErrorResponse(c, "Failed to send notification")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Notification sent", record)
}

// EmailWebhook handles email provider delivery events
func (h *NotificationHandler) EmailWebhook(c echo.Context) error {
	return h.handleWebhook(c, models.ChannelEmail, h.cfg.Notification.Email.WebhookSecret)
}

// PushWebhook handles push provider delivery events
func (h *NotificationHandler) PushWebhook(c echo.Context) error {
	return h.handleWebhook(c, models.ChannelPush, h.cfg.Notification.Push.WebhookSecret)
}

// handleWebhook verifies the provider signature over the raw body before
// anything is parsed or touched. Unverified bytes never reach the decoder.
func (h *NotificationHandler) handleWebhook(c echo.Context, channel, secret string) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return utils.BadRequestResponse(c, "Failed to read request body")
	}

	err = signature.Verify(
		secret,
		c.Request().Header.Get(headerSignature),
		c.Request().Header.Get(headerTimestamp),
		body,
		h.cfg.Notification.SignatureTolerance,
		time.Now(),
	)
	if err != nil {
		logger.Warn("Rejected webhook with bad signature",
			logger.String("channel", channel),
			logger.Err(err))
		return utils.UnauthorizedResponse(c, "Invalid webhook signature")
	}

	var event models.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return utils.BadRequestResponse(c, "Malformed webhook payload")
	}
	if event.MessageID == "" || event.Event == "" {
		return utils.BadRequestResponse(c, "message_id and event are required")
	}

	if err := h.notificationUC.HandleEvent(c.Request().Context(), channel, &event); err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to process webhook event")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Event processed", nil)
}
