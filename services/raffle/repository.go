package raffle

import (
	"context"

	"github.com/fanloop/fanloop/internal/pkg/models"
	"github.com/google/uuid"
)

// RaffleRepo defines the interface for challenge and draw persistence
type RaffleRepo interface {
	// GetChallenge retrieves one challenge
	GetChallenge(ctx context.Context, challengeID uuid.UUID) (*models.Challenge, error)

	// ListEligibleParticipants returns the draw pool: participants both
	// approved and still eligible.
	ListEligibleParticipants(ctx context.Context, challengeID uuid.UUID) ([]models.ChallengeParticipant, error)

	// InsertDraw persists one winner record
	InsertDraw(ctx context.Context, draw *models.RaffleDraw) error

	// MarkWinnerIneligible flips the participant's eligible flag only while
	// it is still set. false means a concurrent draw claimed the win first.
	MarkWinnerIneligible(ctx context.Context, challengeID, userID uuid.UUID) (bool, error)
}
