package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/fanloop/fanloop/internal/pkg/logger"
	"github.com/fanloop/fanloop/internal/pkg/models"
	natspkg "github.com/fanloop/fanloop/internal/pkg/nats"
	"github.com/fanloop/fanloop/services/engagement"
)

// NatsHandler consumes community content events and runs them through the
// scheduling gates.
type NatsHandler struct {
	engagementUC engagement.EngagementUC
	natsClient   *natspkg.Client
	subs         []*nats.Subscription
}

// NewNatsHandler creates a new engagement NATS handler
func NewNatsHandler(engagementUC engagement.EngagementUC, natsClient *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		engagementUC: engagementUC,
		natsClient:   natsClient,
		subs:         make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers subscribes to the content events that can trigger
// automated actions.
func (h *NatsHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.Subscribe(models.SubjectPostCreated, func(msg *nats.Msg) {
		if err := h.handlePostCreated(msg.Data); err != nil {
			logger.ErrorLog("Failed to handle post created event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to post created events: %w", err)
	}
	h.subs = append(h.subs, sub)

	sub, err = h.natsClient.Subscribe(models.SubjectCommentCreated, func(msg *nats.Msg) {
		if err := h.handleCommentCreated(msg.Data); err != nil {
			logger.ErrorLog("Failed to handle comment created event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to comment created events: %w", err)
	}
	h.subs = append(h.subs, sub)

	return nil
}

// handlePostCreated runs a new post through the like and comment gates.
// Each kind rolls independently; a post can get both, either, or neither.
func (h *NatsHandler) handlePostCreated(data []byte) error {
	var event models.PostCreatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal post created event: %w", err)
	}

	target := models.ActionTarget{
		AuthorID: event.AuthorID,
		PostID:   event.PostID,
		Text:     event.Body,
	}

	for _, kind := range []string{models.ActionKindLike, models.ActionKindComment} {
		result, err := h.engagementUC.Schedule(context.Background(), target, kind)
		if err != nil {
			return fmt.Errorf("failed to schedule %s: %w", kind, err)
		}
		if result.Scheduled {
			logger.Debug("Automated action scheduled",
				logger.String("action_id", result.ActionID.String()),
				logger.String("kind", kind),
				logger.Time("scheduled_for", *result.ScheduledFor))
		}
	}

	return nil
}

// handleCommentCreated runs a new top-level comment through the reply gate
func (h *NatsHandler) handleCommentCreated(data []byte) error {
	var event models.CommentCreatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal comment created event: %w", err)
	}

	// Replies to replies spiral; only first-level comments get a response.
	if event.ParentID != nil {
		return nil
	}

	target := models.ActionTarget{
		AuthorID:  event.AuthorID,
		PostID:    event.PostID,
		CommentID: &event.CommentID,
		Text:      event.Body,
	}

	result, err := h.engagementUC.Schedule(context.Background(), target, models.ActionKindReply)
	if err != nil {
		return fmt.Errorf("failed to schedule reply: %w", err)
	}
	if result.Scheduled {
		logger.Debug("Automated reply scheduled",
			logger.String("action_id", result.ActionID.String()),
			logger.String("comment_id", event.CommentID.String()))
	}

	return nil
}
