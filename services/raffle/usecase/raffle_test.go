package usecase

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/fanloop/fanloop/internal/pkg/models"
	ledgermocks "github.com/fanloop/fanloop/services/ledger/mocks"
	"github.com/fanloop/fanloop/services/raffle"
	"github.com/fanloop/fanloop/services/raffle/mocks"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func raffleConfig(numWinners int) *models.Config {
	return &models.Config{
		Raffle: models.RaffleConfig{NumWinners: numWinners},
	}
}

func newTestRaffle(repo raffle.RaffleRepo, ledgerUC *ledgermocks.MockLedgerUC, numWinners int) *RaffleService {
	return &RaffleService{
		cfg:      raffleConfig(numWinners),
		repo:     repo,
		ledgerUC: ledgerUC,
		now:      func() time.Time { return testNow },
		rng:      rand.New(rand.NewSource(42)),
	}
}

func participants(challengeID uuid.UUID, n int) []models.ChallengeParticipant {
	pool := make([]models.ChallengeParticipant, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, models.ChallengeParticipant{
			ID:          uuid.New(),
			ChallengeID: challengeID,
			UserID:      uuid.New(),
			Status:      models.ParticipantStatusApproved,
			Eligible:    true,
		})
	}
	return pool
}

func TestDrawWinners_DistinctWinnersAndFullPayout(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRaffleRepo(ctrl)
	mockLedger := ledgermocks.NewMockLedgerUC(ctrl)
	uc := newTestRaffle(mockRepo, mockLedger, 3)

	challengeID := uuid.New()
	challenge := &models.Challenge{ID: challengeID, Title: "Fan art week", PrizePool: 100}
	pool := participants(challengeID, 10)

	mockRepo.EXPECT().GetChallenge(gomock.Any(), challengeID).Return(challenge, nil)
	mockRepo.EXPECT().ListEligibleParticipants(gomock.Any(), challengeID).Return(pool, nil)
	mockRepo.EXPECT().MarkWinnerIneligible(gomock.Any(), challengeID, gomock.Any()).Return(true, nil).Times(3)
	mockRepo.EXPECT().InsertDraw(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	credited := make(map[uuid.UUID]int64)
	mockLedger.EXPECT().
		Grant(gomock.Any(), gomock.Any(), models.CategoryRafflePrize, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, userID uuid.UUID, _ string, amount int64, _ models.TransactionRef) (models.GrantResult, error) {
			credited[userID] += amount
			return models.GrantResult{Granted: true, NewBalance: amount}, nil
		}).
		Times(3)

	// Act
	result, err := uc.DrawWinners(context.Background(), challengeID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, result.Winners, 3)

	// 100 / 3 = 33 each; the 1-coin remainder lands on the first winner.
	assert.Equal(t, int64(34), result.Winners[0].PrizeAmount)
	assert.Equal(t, int64(33), result.Winners[1].PrizeAmount)
	assert.Equal(t, int64(33), result.Winners[2].PrizeAmount)

	var total int64
	seen := make(map[uuid.UUID]bool)
	for _, draw := range result.Winners {
		assert.False(t, seen[draw.WinnerUserID], "winner drawn twice")
		seen[draw.WinnerUserID] = true
		total += draw.PrizeAmount
		assert.Equal(t, draw.PrizeAmount, credited[draw.WinnerUserID])
	}
	assert.Equal(t, int64(100), total)
}

func TestDrawWinners_WinnerCountCappedAtPoolSize(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRaffleRepo(ctrl)
	mockLedger := ledgermocks.NewMockLedgerUC(ctrl)
	uc := newTestRaffle(mockRepo, mockLedger, 5)

	challengeID := uuid.New()
	challenge := &models.Challenge{ID: challengeID, PrizePool: 90}
	pool := participants(challengeID, 2)

	mockRepo.EXPECT().GetChallenge(gomock.Any(), challengeID).Return(challenge, nil)
	mockRepo.EXPECT().ListEligibleParticipants(gomock.Any(), challengeID).Return(pool, nil)
	mockRepo.EXPECT().MarkWinnerIneligible(gomock.Any(), challengeID, gomock.Any()).Return(true, nil).Times(2)
	mockRepo.EXPECT().InsertDraw(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	mockLedger.EXPECT().
		Grant(gomock.Any(), gomock.Any(), models.CategoryRafflePrize, int64(45), gomock.Any()).
		Return(models.GrantResult{Granted: true}, nil).
		Times(2)

	// Act
	result, err := uc.DrawWinners(context.Background(), challengeID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, result.Winners, 2)
}

func TestDrawWinners_EmptyPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRaffleRepo(ctrl)
	mockLedger := ledgermocks.NewMockLedgerUC(ctrl)
	uc := newTestRaffle(mockRepo, mockLedger, 1)

	challengeID := uuid.New()
	mockRepo.EXPECT().GetChallenge(gomock.Any(), challengeID).Return(&models.Challenge{ID: challengeID, PrizePool: 100}, nil)
	mockRepo.EXPECT().ListEligibleParticipants(gomock.Any(), challengeID).Return(nil, nil)

	_, err := uc.DrawWinners(context.Background(), challengeID)
	assert.ErrorIs(t, err, raffle.ErrNoEligibleParticipants)
}

func TestDrawWinners_ConcurrentClaimSkipsPayout(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRaffleRepo(ctrl)
	mockLedger := ledgermocks.NewMockLedgerUC(ctrl)
	uc := newTestRaffle(mockRepo, mockLedger, 1)

	challengeID := uuid.New()
	challenge := &models.Challenge{ID: challengeID, PrizePool: 50}
	pool := participants(challengeID, 1)

	mockRepo.EXPECT().GetChallenge(gomock.Any(), challengeID).Return(challenge, nil)
	mockRepo.EXPECT().ListEligibleParticipants(gomock.Any(), challengeID).Return(pool, nil)

	// A parallel draw flipped the flag first: no draw row, no credit.
	mockRepo.EXPECT().MarkWinnerIneligible(gomock.Any(), challengeID, pool[0].UserID).Return(false, nil)

	// Act
	result, err := uc.DrawWinners(context.Background(), challengeID)

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, result.Winners)
}

func TestDrawWinners_SecondDrawNeverReselectsWinners(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRaffleRepo(ctrl)
	mockLedger := ledgermocks.NewMockLedgerUC(ctrl)
	uc := newTestRaffle(mockRepo, mockLedger, 1)

	challengeID := uuid.New()
	challenge := &models.Challenge{ID: challengeID, PrizePool: 50}
	pool := participants(challengeID, 3)

	// First draw takes one winner out of the pool.
	mockRepo.EXPECT().GetChallenge(gomock.Any(), challengeID).Return(challenge, nil)
	mockRepo.EXPECT().ListEligibleParticipants(gomock.Any(), challengeID).Return(pool, nil)
	mockRepo.EXPECT().MarkWinnerIneligible(gomock.Any(), challengeID, gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().InsertDraw(gomock.Any(), gomock.Any()).Return(nil)
	mockLedger.EXPECT().
		Grant(gomock.Any(), gomock.Any(), models.CategoryRafflePrize, int64(50), gomock.Any()).
		Return(models.GrantResult{Granted: true}, nil)

	first, err := uc.DrawWinners(context.Background(), challengeID)
	assert.NoError(t, err)
	assert.Len(t, first.Winners, 1)
	firstWinner := first.Winners[0].WinnerUserID

	// Second draw sees the reduced pool, as the repository would return it.
	remaining := make([]models.ChallengeParticipant, 0, 2)
	for _, p := range pool {
		if p.UserID != firstWinner {
			remaining = append(remaining, p)
		}
	}

	mockRepo.EXPECT().GetChallenge(gomock.Any(), challengeID).Return(challenge, nil)
	mockRepo.EXPECT().ListEligibleParticipants(gomock.Any(), challengeID).Return(remaining, nil)
	mockRepo.EXPECT().MarkWinnerIneligible(gomock.Any(), challengeID, gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().InsertDraw(gomock.Any(), gomock.Any()).Return(nil)
	mockLedger.EXPECT().
		Grant(gomock.Any(), gomock.Any(), models.CategoryRafflePrize, int64(50), gomock.Any()).
		Return(models.GrantResult{Granted: true}, nil)

	second, err := uc.DrawWinners(context.Background(), challengeID)
	assert.NoError(t, err)
	assert.Len(t, second.Winners, 1)
	assert.NotEqual(t, firstWinner, second.Winners[0].WinnerUserID)
}

func TestDrawWinners_RemainderFollowsFirstClaimedWinner(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRaffleRepo(ctrl)
	mockLedger := ledgermocks.NewMockLedgerUC(ctrl)
	uc := newTestRaffle(mockRepo, mockLedger, 2)

	challengeID := uuid.New()
	challenge := &models.Challenge{ID: challengeID, PrizePool: 101}
	pool := participants(challengeID, 2)

	mockRepo.EXPECT().GetChallenge(gomock.Any(), challengeID).Return(challenge, nil)
	mockRepo.EXPECT().ListEligibleParticipants(gomock.Any(), challengeID).Return(pool, nil)

	// The first drawn winner loses the eligibility race to a concurrent
	// draw; the odd coin must land on the winner that actually claimed.
	gomock.InOrder(
		mockRepo.EXPECT().MarkWinnerIneligible(gomock.Any(), challengeID, gomock.Any()).Return(false, nil),
		mockRepo.EXPECT().MarkWinnerIneligible(gomock.Any(), challengeID, gomock.Any()).Return(true, nil),
	)
	mockRepo.EXPECT().InsertDraw(gomock.Any(), gomock.Any()).Return(nil)
	mockLedger.EXPECT().
		Grant(gomock.Any(), gomock.Any(), models.CategoryRafflePrize, int64(51), gomock.Any()).
		Return(models.GrantResult{Granted: true}, nil)

	// Act
	result, err := uc.DrawWinners(context.Background(), challengeID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, result.Winners, 1)
	assert.Equal(t, int64(51), result.Winners[0].PrizeAmount)
}

func TestDrawWinners_ZeroShareWinnersRecordedWithoutCredit(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRaffleRepo(ctrl)
	mockLedger := ledgermocks.NewMockLedgerUC(ctrl)
	uc := newTestRaffle(mockRepo, mockLedger, 3)

	challengeID := uuid.New()
	challenge := &models.Challenge{ID: challengeID, PrizePool: 2}
	pool := participants(challengeID, 3)

	mockRepo.EXPECT().GetChallenge(gomock.Any(), challengeID).Return(challenge, nil)
	mockRepo.EXPECT().ListEligibleParticipants(gomock.Any(), challengeID).Return(pool, nil)
	mockRepo.EXPECT().MarkWinnerIneligible(gomock.Any(), challengeID, gomock.Any()).Return(true, nil).Times(3)
	mockRepo.EXPECT().InsertDraw(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	// Only the winner holding the remainder gets a credit; a zero-amount
	// grant would be rejected by the ledger.
	mockLedger.EXPECT().
		Grant(gomock.Any(), gomock.Any(), models.CategoryRafflePrize, int64(2), gomock.Any()).
		Return(models.GrantResult{Granted: true}, nil).
		Times(1)

	// Act
	result, err := uc.DrawWinners(context.Background(), challengeID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, result.Winners, 3)

	var paid int64
	for _, draw := range result.Winners {
		paid += draw.PrizeAmount
	}
	assert.Equal(t, int64(2), paid)
}
