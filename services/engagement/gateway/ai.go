package gateway

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/fanloop/fanloop/internal/pkg/circuitbreaker"
	httpclient "github.com/fanloop/fanloop/internal/pkg/http"
	"github.com/fanloop/fanloop/internal/pkg/logger"
	"github.com/fanloop/fanloop/internal/pkg/models"
	"github.com/fanloop/fanloop/services/engagement"
)

// phraseBank is the offline reply pool used when the generation service is
// unreachable or returns junk.
var phraseBank = []string{
	"Love this! Thanks for sharing with the community.",
	"This made my day, keep them coming!",
	"Great post! The community is lucky to have you here.",
	"So good! Can't wait to see what you share next.",
	"Thanks for being part of the community, this is awesome!",
	"This is exactly the energy we love around here.",
}

type generateRequest struct {
	Content string `json:"content"`
}

type generateResponse struct {
	Reply string `json:"reply"`
}

// AIGateway implements the EngagementGW interface against the external
// text generation service.
type AIGateway struct {
	client  *httpclient.Client
	breaker *circuitbreaker.CircuitBreaker

	mu  sync.Mutex
	rng *rand.Rand
}

// NewAIGateway creates a new AI gateway
func NewAIGateway(cfg *models.Config) engagement.EngagementGW {
	var client *httpclient.Client
	if cfg.AI.URL != "" {
		client = httpclient.NewClientWithAPIKey(cfg.AI.URL, cfg.AI.APIKey, cfg.AI.Timeout)
	}

	return &AIGateway{
		client:  client,
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("ai-generation")),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateReply asks the generation service for reply text. Any failure
// falls back to the phrase bank; the caller always gets usable text.
func (g *AIGateway) GenerateReply(ctx context.Context, content string) string {
	if g.client == nil {
		return g.pickPhrase()
	}

	var resp generateResponse
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.client.PostJSON(ctx, "/v1/generate", generateRequest{Content: content}, &resp)
	})
	if err != nil {
		logger.Swallow("engagement", "generation_failed_phrase_fallback", err)
		return g.pickPhrase()
	}

	reply := strings.TrimSpace(resp.Reply)
	if reply == "" {
		return g.pickPhrase()
	}

	return reply
}

func (g *AIGateway) pickPhrase() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return phraseBank[g.rng.Intn(len(phraseBank))]
}
