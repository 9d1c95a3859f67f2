package engagement

import "context"

// EngagementGW defines the interface to the external text generation
// service. Implementations must always return usable text: generation
// failures fall back to a canned phrase rather than an error.
type EngagementGW interface {
	// GenerateReply produces reply text for a piece of member content
	GenerateReply(ctx context.Context, content string) string
}
