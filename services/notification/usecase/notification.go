package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fanloop/fanloop/internal/pkg/database"
	"github.com/fanloop/fanloop/internal/pkg/logger"
	"github.com/fanloop/fanloop/internal/pkg/models"
	natspkg "github.com/fanloop/fanloop/internal/pkg/nats"
	"github.com/fanloop/fanloop/services/engagement"
	"github.com/fanloop/fanloop/services/notification"
)

// Provider event names as they arrive on the webhook
const (
	eventClicked = "clicked"
	eventFailed  = "failed"
)

// NotificationService implements the notification.NotificationUC interface
type NotificationService struct {
	cfg          *models.Config
	repo         notification.NotificationRepo
	gw           notification.NotificationGW
	engagementUC engagement.EngagementUC
	redisClient  *database.RedisClient
	pub          natspkg.Publisher
	now          func() time.Time
}

// NewNotificationUC creates a new notification use case
func NewNotificationUC(
	cfg *models.Config,
	repo notification.NotificationRepo,
	gw notification.NotificationGW,
	engagementUC engagement.EngagementUC,
	redisClient *database.RedisClient,
	pub natspkg.Publisher,
) notification.NotificationUC {
	return &NotificationService{
		cfg:          cfg,
		repo:         repo,
		gw:           gw,
		engagementUC: engagementUC,
		redisClient:  redisClient,
		pub:          pub,
		now:          time.Now,
	}
}

// Send delivers one notification and records it as sent
func (uc *NotificationService) Send(ctx context.Context, req *models.SendNotificationRequest) (*models.NotificationRecord, error) {
	if req.Channel != models.ChannelEmail && req.Channel != models.ChannelPush {
		return nil, notification.ErrUnknownChannel
	}

	externalID, err := uc.gw.Deliver(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to deliver notification: %w", err)
	}

	metadata, err := json.Marshal(models.NotificationMetadata{Subject: req.Subject})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}

	now := uc.now().UTC()
	record := &models.NotificationRecord{
		ID:               uuid.New(),
		ExternalID:       externalID,
		Channel:          req.Channel,
		UserID:           req.UserID,
		Status:           models.NotificationStatusSent,
		FallbackActionID: req.FallbackActionID,
		Metadata:         string(metadata),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := uc.repo.InsertNotification(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}

	return record, nil
}

// HandleEvent applies one provider webhook event. Providers redeliver and
// reorder events freely; everything that cannot advance the record is a
// quiet no-op so the provider stops retrying. A transient processing
// failure releases the dedup claim so the provider's retry is not dropped
// as a duplicate.
func (uc *NotificationService) HandleEvent(ctx context.Context, channel string, event *models.WebhookEvent) error {
	if fresh := uc.claimEvent(ctx, channel, event.EventID); !fresh {
		return nil
	}

	if err := uc.applyEvent(ctx, channel, event); err != nil {
		uc.releaseEvent(ctx, channel, event.EventID)
		return err
	}

	return nil
}

func (uc *NotificationService) applyEvent(ctx context.Context, channel string, event *models.WebhookEvent) error {
	record, err := uc.repo.GetByExternalID(ctx, channel, event.MessageID)
	if err != nil {
		return fmt.Errorf("failed to look up notification: %w", err)
	}
	if record == nil {
		logger.Swallow("notification", "unknown_message_id", nil,
			logger.String("channel", channel),
			logger.String("message_id", event.MessageID))
		return nil
	}
	if record.Status == models.NotificationStatusFailed {
		return nil
	}

	var meta models.NotificationMetadata
	if record.Metadata != "" {
		if err := json.Unmarshal([]byte(record.Metadata), &meta); err != nil {
			logger.Swallow("notification", "corrupt_metadata_reset", err,
				logger.String("notification_id", record.ID.String()))
			meta = models.NotificationMetadata{}
		}
	}

	newStatus, replaceable := uc.resolveTransition(event, &meta)
	if newStatus == "" || len(replaceable) == 0 {
		return nil
	}

	metadata, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	applied, err := uc.repo.AdvanceStatus(ctx, record.ID, newStatus, replaceable, string(metadata))
	if err != nil {
		return fmt.Errorf("failed to advance status: %w", err)
	}
	if !applied {
		return nil
	}

	if record.Status == newStatus {
		return nil
	}

	if newStatus == models.NotificationStatusOpened {
		uc.cancelFallback(ctx, record)
	}

	uc.publishStatusChange(record, newStatus)

	return nil
}

// resolveTransition maps a provider event onto a target status and the set
// of current statuses it may replace. An empty result means the event can
// never move this record.
func (uc *NotificationService) resolveTransition(event *models.WebhookEvent, meta *models.NotificationMetadata) (string, []string) {
	switch event.Event {
	case eventFailed:
		meta.FailReason = event.Reason
		return models.NotificationStatusFailed, []string{
			models.NotificationStatusSent,
			models.NotificationStatusDelivered,
			models.NotificationStatusOpened,
		}

	case eventClicked:
		// A click proves an open. The URL history keeps growing even when
		// the record already sits at opened.
		if event.URL != "" {
			meta.ClickedURLs = append(meta.ClickedURLs, event.URL)
		}
		return models.NotificationStatusOpened, []string{
			models.NotificationStatusSent,
			models.NotificationStatusDelivered,
			models.NotificationStatusOpened,
		}

	default:
		newRank, ok := models.StatusRank(event.Event)
		if !ok {
			logger.Swallow("notification", "unknown_event_type", nil,
				logger.String("event", event.Event))
			return "", nil
		}

		var replaceable []string
		for _, status := range []string{
			models.NotificationStatusSent,
			models.NotificationStatusDelivered,
			models.NotificationStatusOpened,
		} {
			if rank, _ := models.StatusRank(status); rank < newRank {
				replaceable = append(replaceable, status)
			}
		}
		return event.Event, replaceable
	}
}

// claimEvent reports whether this provider event ID is seen for the first
// time. A dedup store outage fails open: redelivered events are rank
// no-ops anyway, only the click history could gain duplicates.
func (uc *NotificationService) claimEvent(ctx context.Context, channel, eventID string) bool {
	if uc.redisClient == nil || eventID == "" {
		return true
	}

	key := fmt.Sprintf("notification:event:%s:%s", channel, eventID)
	fresh, err := uc.redisClient.SetNX(ctx, key, 1, uc.cfg.Notification.DedupTTL)
	if err != nil {
		logger.Swallow("notification", "dedup_store_unavailable", err,
			logger.String("event_id", eventID))
		return true
	}

	return fresh
}

// releaseEvent gives a claimed event ID back after a processing failure so
// the provider's retry gets through. Best-effort: a release that fails is
// a lost transition only for the dedup TTL.
func (uc *NotificationService) releaseEvent(ctx context.Context, channel, eventID string) {
	if uc.redisClient == nil || eventID == "" {
		return
	}

	key := fmt.Sprintf("notification:event:%s:%s", channel, eventID)
	if err := uc.redisClient.Delete(ctx, key); err != nil {
		logger.Swallow("notification", "dedup_release_failed", err,
			logger.String("event_id", eventID))
	}
}

// cancelFallback cancels the dependent pending action once the member has
// opened the notification. Best-effort: the action firing anyway is a
// duplicate touchpoint, not a correctness problem.
func (uc *NotificationService) cancelFallback(ctx context.Context, record *models.NotificationRecord) {
	if uc.engagementUC == nil || record.FallbackActionID == nil {
		return
	}

	cancelled, err := uc.engagementUC.Cancel(ctx, *record.FallbackActionID)
	if err != nil {
		logger.Swallow("notification", "fallback_cancel_failed", err,
			logger.String("action_id", record.FallbackActionID.String()))
		return
	}

	logger.Debug("Fallback action cancel processed",
		logger.String("action_id", record.FallbackActionID.String()),
		logger.Bool("cancelled", cancelled))
}

// publishStatusChange emits the status-changed event, best-effort
func (uc *NotificationService) publishStatusChange(record *models.NotificationRecord, newStatus string) {
	if uc.pub == nil {
		return
	}

	event := models.NotificationStatusEvent{
		NotificationID: record.ID,
		Channel:        record.Channel,
		OldStatus:      record.Status,
		NewStatus:      newStatus,
		Timestamp:      time.Now().UTC(),
	}

	if err := uc.pub.PublishEvent(models.SubjectNotificationStatus, event); err != nil {
		logger.Swallow("notification", "event_publish_failed", err,
			logger.String("notification_id", record.ID.String()))
	}
}
