package notification

import (
	"context"

	"github.com/fanloop/fanloop/internal/pkg/models"
)

// NotificationGW defines the interface to the outbound delivery providers
type NotificationGW interface {
	// Deliver hands the notification to the channel's provider and returns
	// the provider message ID.
	Deliver(ctx context.Context, req *models.SendNotificationRequest) (string, error)
}
