package gateway

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/fanloop/fanloop/internal/pkg/http"
	"github.com/fanloop/fanloop/internal/pkg/models"
	"github.com/fanloop/fanloop/internal/pkg/retry"
	"github.com/fanloop/fanloop/services/notification"
)

const providerTimeout = 10 * time.Second

type deliverRequest struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject,omitempty"`
	Body      string `json:"body"`
}

type deliverResponse struct {
	MessageID string `json:"message_id"`
}

// ProviderGateway implements the NotificationGW interface over the
// channel providers' HTTP APIs.
type ProviderGateway struct {
	email   *httpclient.Client
	push    *httpclient.Client
	retrier *retry.Retrier
}

// NewProviderGateway creates a new provider gateway
func NewProviderGateway(cfg *models.Config) notification.NotificationGW {
	return &ProviderGateway{
		email:   httpclient.NewClientWithAPIKey(cfg.Notification.Email.URL, cfg.Notification.Email.APIKey, providerTimeout),
		push:    httpclient.NewClientWithAPIKey(cfg.Notification.Push.URL, cfg.Notification.Push.APIKey, providerTimeout),
		retrier: retry.New(retry.DefaultConfig()),
	}
}

// Deliver hands the notification to the channel's provider and returns the
// provider message ID.
func (g *ProviderGateway) Deliver(ctx context.Context, req *models.SendNotificationRequest) (string, error) {
	var client *httpclient.Client
	switch req.Channel {
	case models.ChannelEmail:
		client = g.email
	case models.ChannelPush:
		client = g.push
	default:
		return "", notification.ErrUnknownChannel
	}

	var resp deliverResponse
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return client.PostJSON(ctx, "/v1/messages", deliverRequest{
			Recipient: req.Recipient,
			Subject:   req.Subject,
			Body:      req.Body,
		}, &resp)
	})
	if err != nil {
		return "", fmt.Errorf("failed to deliver via %s provider: %w", req.Channel, err)
	}

	if resp.MessageID == "" {
		return "", fmt.Errorf("%s provider returned no message ID", req.Channel)
	}

	return resp.MessageID, nil
}
