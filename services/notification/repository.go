package notification

import (
	"context"

	"github.com/fanloop/fanloop/internal/pkg/models"
	"github.com/google/uuid"
)

// NotificationRepo defines the interface for delivery record persistence
type NotificationRepo interface {
	// InsertNotification persists one outbound record
	InsertNotification(ctx context.Context, record *models.NotificationRecord) error

	// GetByExternalID looks a record up by provider message ID within a
	// channel. Unknown IDs return (nil, nil).
	GetByExternalID(ctx context.Context, channel, externalID string) (*models.NotificationRecord, error)

	// AdvanceStatus updates status and metadata only while the current
	// status is one of the replaceable set. The condition makes concurrent
	// webhook deliveries race safely: exactly one wins, the rest match
	// nothing.
	AdvanceStatus(ctx context.Context, id uuid.UUID, newStatus string, replaceable []string, metadata string) (bool, error)
}
