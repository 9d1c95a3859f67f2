package notification

import (
	"context"
	"errors"

	"github.com/fanloop/fanloop/internal/pkg/models"
)

// ErrUnknownChannel marks a send or webhook for a channel this service
// does not deliver on.
var ErrUnknownChannel = errors.New("unknown notification channel")

// NotificationUC defines the interface for delivery tracking use cases
type NotificationUC interface {
	// Send delivers one notification through the channel's provider and
	// records it with the provider message ID and initial status sent.
	Send(ctx context.Context, req *models.SendNotificationRequest) (*models.NotificationRecord, error)

	// HandleEvent applies one provider webhook event to the tracked
	// record. Events for unknown message IDs and transitions the rank rule
	// rejects are absorbed as no-ops, never errors: providers retry on
	// non-2xx and these events can never succeed.
	HandleEvent(ctx context.Context, channel string, event *models.WebhookEvent) error
}
