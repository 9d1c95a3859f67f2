package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/fanloop/fanloop/internal/pkg/logger"
	"github.com/fanloop/fanloop/internal/pkg/models"
	natspkg "github.com/fanloop/fanloop/internal/pkg/nats"
	"github.com/fanloop/fanloop/services/ledger"
)

// NatsHandler consumes community content events and credits coins for them
type NatsHandler struct {
	ledgerUC   ledger.LedgerUC
	natsClient *natspkg.Client
	cfg        *models.Config
	subs       []*nats.Subscription
}

// NewNatsHandler creates a new ledger NATS handler
func NewNatsHandler(ledgerUC ledger.LedgerUC, natsClient *natspkg.Client, cfg *models.Config) *NatsHandler {
	return &NatsHandler{
		ledgerUC:   ledgerUC,
		natsClient: natsClient,
		cfg:        cfg,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers subscribes to the earn-producing community events
func (h *NatsHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.Subscribe(models.SubjectPostLiked, func(msg *nats.Msg) {
		if err := h.handlePostLiked(msg.Data); err != nil {
			logger.ErrorLog("Failed to handle post liked event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to post liked events: %w", err)
	}
	h.subs = append(h.subs, sub)

	sub, err = h.natsClient.Subscribe(models.SubjectPostCreated, func(msg *nats.Msg) {
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

func (h *NatsHandler) handlePostLiked(data []byte) error {
	var event models.PostLikedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal post liked event: %w", err)
	}

	return h.grant(event.LikerID, models.CategoryLikePost, models.TransactionRef{
		ReferenceID:   event.PostID.String(),
		ReferenceType: "post",
	})
}

func (h *NatsHandler) handlePostCreated(data []byte) error {
	var event models.PostCreatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal post created event: %w", err)
	}

	return h.grant(event.AuthorID, models.CategoryCreatePost, models.TransactionRef{
		ReferenceID:   event.PostID.String(),
		ReferenceType: "post",
	})
}

func (h *NatsHandler) handleCommentCreated(data []byte) error {
	var event models.CommentCreatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal comment created event: %w", err)
	}

	return h.grant(event.AuthorID, models.CategoryCreateComment, models.TransactionRef{
		ReferenceID:   event.CommentID.String(),
		ReferenceType: "comment",
	})
}

func (h *NatsHandler) grant(userID uuid.UUID, category string, ref models.TransactionRef) error {
	policy, ok := h.cfg.Ledger.Policies[category]
	if !ok || policy.Amount <= 0 {
		return nil
	}

	result, err := h.ledgerUC.Grant(context.Background(), userID, category, policy.Amount, ref)
	if err != nil {
		return fmt.Errorf("failed to grant for %s: %w", category, err)
	}

	if result.Granted {
		logger.Debug("Coins granted for community event",
			logger.String("user_id", userID.String()),
			logger.String("category", category),
			logger.Int64("amount", policy.Amount))
	}

	return nil
}
