package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification channels
const (
	ChannelEmail = "email"
	ChannelPush  = "push"
)

// Delivery statuses in rank order. failed is terminal and sticky
// regardless of rank.
const (
	NotificationStatusSent      = "sent"
	NotificationStatusDelivered = "delivered"
	NotificationStatusOpened    = "opened"
	NotificationStatusFailed    = "failed"
)

// statusRanks orders the forward-only delivery progression
var statusRanks = map[string]int{
	NotificationStatusSent:      0,
	NotificationStatusDelivered: 1,
	NotificationStatusOpened:    2,
}

// StatusRank returns the ordinal position of a delivery status and whether
// the status participates in the ranked progression. failed has no rank.
func StatusRank(status string) (int, bool) {
	rank, ok := statusRanks[status]
	return rank, ok
}

// NotificationRecord tracks one outbound notification through its delivery
// lifecycle. ExternalID is the provider message ID used as the webhook
// join key.
type NotificationRecord struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	ExternalID       string     `json:"external_id" db:"external_id"`
	Channel          string     `json:"channel" db:"channel"`
	UserID           uuid.UUID  `json:"user_id" db:"user_id"`
	Status           string     `json:"status" db:"status"`
	FallbackActionID *uuid.UUID `json:"fallback_action_id,omitempty" db:"fallback_action_id"`
	Metadata         string     `json:"metadata,omitempty" db:"metadata"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// NotificationMetadata is the JSON shape stored in NotificationRecord.Metadata.
// ClickedURLs is append-only history, never replaced.
type NotificationMetadata struct {
	Subject     string   `json:"subject,omitempty"`
	ClickedURLs []string `json:"clicked_urls,omitempty"`
	FailReason  string   `json:"fail_reason,omitempty"`
}

// WebhookEvent is the normalised inbound provider event
type WebhookEvent struct {
	EventID   string `json:"event_id"`
	MessageID string `json:"message_id"`
	Event     string `json:"event"`
	URL       string `json:"url,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// SendNotificationRequest is the outbound send request
type SendNotificationRequest struct {
	UserID           uuid.UUID  `json:"user_id" validate:"required"`
	Channel          string     `json:"channel" validate:"required"`
	Recipient        string     `json:"recipient" validate:"required"`
	Subject          string     `json:"subject"`
	Body             string     `json:"body" validate:"required"`
	FallbackActionID *uuid.UUID `json:"fallback_action_id,omitempty"`
}
