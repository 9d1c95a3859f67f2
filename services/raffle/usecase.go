package raffle

import (
	"context"
	"errors"

	"github.com/fanloop/fanloop/internal/pkg/models"
	"github.com/google/uuid"
)

// Domain errors surfaced to handlers
var (
	ErrChallengeNotFound      = errors.New("challenge not found")
	ErrNoEligibleParticipants = errors.New("no eligible participants")
)

// RaffleUC defines the interface for prize draw use cases
type RaffleUC interface {
	// DrawWinners samples winners uniformly without replacement from the
	// challenge's approved and eligible participants, splits the prize
	// pool between them, and credits each winner's coin balance. Winners
	// lose eligibility for this challenge; non-winners stay in the pool
	// for future draws.
	DrawWinners(ctx context.Context, challengeID uuid.UUID) (models.DrawResult, error)
}
