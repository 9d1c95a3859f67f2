package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/fanloop/fanloop/internal/pkg/models"
	"github.com/fanloop/fanloop/services/ledger"
	"github.com/fanloop/fanloop/services/ledger/mocks"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestService(repo ledger.LedgerRepo, cfg *models.Config) *LedgerService {
	return &LedgerService{
		cfg:    cfg,
		repo:   repo,
		writer: &AtomicLedger{repo: repo},
		now:    func() time.Time { return testNow },
	}
}

func testConfig() *models.Config {
	return &models.Config{
		Ledger: models.LedgerConfig{
			Policies: map[string]models.RatePolicy{
				models.CategoryLikePost: {MaxPerHour: 20, MaxPerDay: 100},
			},
		},
	}
}

func TestGrant_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := newTestService(mockRepo, testConfig())
	userID := uuid.New()

	mockRepo.EXPECT().
		CountTransactionsSince(gomock.Any(), userID, models.CategoryLikePost, testNow.Add(-time.Hour)).
		Return(5, nil)
	mockRepo.EXPECT().
		CountTransactionsSince(gomock.Any(), userID, models.CategoryLikePost, testNow.Add(-24*time.Hour)).
		Return(40, nil)
	mockRepo.EXPECT().
		CreditAtomic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.CoinTransaction) (int64, error) {
			assert.Equal(t, userID, txn.UserID)
			assert.Equal(t, int64(2), txn.Amount)
			assert.Equal(t, models.CategoryLikePost, txn.Category)
			return 42, nil
		})

	// Act
	result, err := uc.Grant(context.Background(), userID, models.CategoryLikePost, 2, models.TransactionRef{})

	// Assert
	assert.NoError(t, err)
	assert.True(t, result.Granted)
	assert.Equal(t, int64(42), result.NewBalance)
}

func TestGrant_HourlyCapAbsorbsExcess(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := newTestService(mockRepo, testConfig())
	userID := uuid.New()

	// The 21st like of the hour is over the cap of 20. No credit happens;
	// the caller still gets a nil error and the unchanged balance.
	mockRepo.EXPECT().
		CountTransactionsSince(gomock.Any(), userID, models.CategoryLikePost, testNow.Add(-time.Hour)).
		Return(20, nil)
	mockRepo.EXPECT().GetBalance(gomock.Any(), userID).Return(int64(42), nil)

	// Act
	result, err := uc.Grant(context.Background(), userID, models.CategoryLikePost, 2, models.TransactionRef{})

	// Assert
	assert.NoError(t, err)
	assert.False(t, result.Granted)
	assert.Equal(t, int64(42), result.NewBalance)
}

func TestGrant_DailyCapAbsorbsExcess(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := newTestService(mockRepo, testConfig())
	userID := uuid.New()

	mockRepo.EXPECT().
		CountTransactionsSince(gomock.Any(), userID, models.CategoryLikePost, testNow.Add(-time.Hour)).
		Return(3, nil)
	mockRepo.EXPECT().
		CountTransactionsSince(gomock.Any(), userID, models.CategoryLikePost, testNow.Add(-24*time.Hour)).
		Return(100, nil)
	mockRepo.EXPECT().GetBalance(gomock.Any(), userID).Return(int64(7), nil)

	// Act
	result, err := uc.Grant(context.Background(), userID, models.CategoryLikePost, 2, models.TransactionRef{})

	// Assert
	assert.NoError(t, err)
	assert.False(t, result.Granted)
	assert.Equal(t, int64(7), result.NewBalance)
}

func TestGrant_UnknownCategorySkipsLimiter(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := newTestService(mockRepo, testConfig())
	userID := uuid.New()

	mockRepo.EXPECT().CreditAtomic(gomock.Any(), gomock.Any()).Return(int64(500), nil)

	// Act
	result, err := uc.Grant(context.Background(), userID, models.CategoryRafflePrize, 500, models.TransactionRef{
		ReferenceID:   uuid.New().String(),
		ReferenceType: "challenge",
	})

	// Assert
	assert.NoError(t, err)
	assert.True(t, result.Granted)
	assert.Equal(t, int64(500), result.NewBalance)
}

func TestGrant_RejectsNonPositiveAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := newTestService(mockRepo, testConfig())

	_, err := uc.Grant(context.Background(), uuid.New(), models.CategoryLikePost, 0, models.TransactionRef{})
	assert.Error(t, err)

	_, err = uc.Grant(context.Background(), uuid.New(), models.CategoryLikePost, -5, models.TransactionRef{})
	assert.Error(t, err)
}

func TestSpend_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := newTestService(mockRepo, testConfig())
	userID := uuid.New()

	mockRepo.EXPECT().
		DebitAtomic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.CoinTransaction) (int64, bool, error) {
			assert.Equal(t, int64(-30), txn.Amount)
			return 70, true, nil
		})

	// Act
	result, err := uc.Spend(context.Background(), userID, 30, models.TransactionRef{})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(70), result.NewBalance)
	assert.NotEqual(t, uuid.Nil, result.TransactionID)
}

func TestSpend_InsufficientBalance(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := newTestService(mockRepo, testConfig())
	userID := uuid.New()

	mockRepo.EXPECT().DebitAtomic(gomock.Any(), gomock.Any()).Return(int64(0), false, nil)

	// Act
	_, err := uc.Spend(context.Background(), userID, 30, models.TransactionRef{})

	// Assert
	assert.ErrorIs(t, err, ledger.ErrInsufficientBalance)
}

func TestClaimReward_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := newTestService(mockRepo, testConfig())
	userID := uuid.New()
	rewardID := uuid.New()

	reward := &models.Reward{ID: rewardID, Name: "Signed Poster", Cost: 100, Stock: 3}

	mockRepo.EXPECT().GetReward(gomock.Any(), rewardID).Return(reward, nil)
	mockRepo.EXPECT().DebitAtomic(gomock.Any(), gomock.Any()).Return(int64(50), true, nil)
	mockRepo.EXPECT().CreateRewardClaim(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().DecrementRewardStock(gomock.Any(), rewardID).Return(true, nil)

	// Act
	claim, err := uc.ClaimReward(context.Background(), userID, rewardID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, rewardID, claim.RewardID)
	assert.Equal(t, userID, claim.UserID)
	assert.Equal(t, int64(100), claim.Cost)
}

func TestClaimReward_OutOfStock(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := newTestService(mockRepo, testConfig())
	rewardID := uuid.New()

	mockRepo.EXPECT().GetReward(gomock.Any(), rewardID).
		Return(&models.Reward{ID: rewardID, Cost: 100, Stock: 0}, nil)

	// Act
	_, err := uc.ClaimReward(context.Background(), uuid.New(), rewardID)

	// Assert
	assert.ErrorIs(t, err, ledger.ErrRewardOutOfStock)
}

func TestClaimReward_ClaimCreateFailureRefundsSpend(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := newTestService(mockRepo, testConfig())
	userID := uuid.New()
	rewardID := uuid.New()

	mockRepo.EXPECT().GetReward(gomock.Any(), rewardID).
		Return(&models.Reward{ID: rewardID, Cost: 100, Stock: 3}, nil)
	mockRepo.EXPECT().DebitAtomic(gomock.Any(), gomock.Any()).Return(int64(50), true, nil)
	mockRepo.EXPECT().CreateRewardClaim(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	// The compensating refund re-credits with a REFUND transaction.
	mockRepo.EXPECT().
		CreditAtomic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.CoinTransaction) (int64, error) {
			assert.Equal(t, models.CategoryRefund, txn.Category)
			assert.Equal(t, int64(100), txn.Amount)
			return 150, nil
		})

	// Act
	_, err := uc.ClaimReward(context.Background(), userID, rewardID)

	// Assert
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ledger.ErrRewardOutOfStock)
}

func TestClaimReward_StockRaceRollsBackEverything(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := newTestService(mockRepo, testConfig())
	userID := uuid.New()
	rewardID := uuid.New()

	// Stock looked available at read time but another claim consumed the
	// last unit before the conditional decrement.
	mockRepo.EXPECT().GetReward(gomock.Any(), rewardID).
		Return(&models.Reward{ID: rewardID, Cost: 100, Stock: 1}, nil)
	mockRepo.EXPECT().DebitAtomic(gomock.Any(), gomock.Any()).Return(int64(50), true, nil)
	mockRepo.EXPECT().CreateRewardClaim(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().DecrementRewardStock(gomock.Any(), rewardID).Return(false, nil)
	mockRepo.EXPECT().DeleteRewardClaim(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().CreditAtomic(gomock.Any(), gomock.Any()).Return(int64(150), nil)

	// Act
	_, err := uc.ClaimReward(context.Background(), userID, rewardID)

	// Assert
	assert.ErrorIs(t, err, ledger.ErrRewardOutOfStock)
}

func TestRefund_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := newTestService(mockRepo, testConfig())
	userID := uuid.New()

	mockRepo.EXPECT().
		CreditAtomic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.CoinTransaction) (int64, error) {
			assert.Equal(t, models.CategoryRefund, txn.Category)
			return 130, nil
		})

	// Act
	result, err := uc.Refund(context.Background(), userID, 30, models.TransactionRef{})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(130), result.NewBalance)
}

func TestGetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := newTestService(mockRepo, testConfig())
	userID := uuid.New()

	mockRepo.EXPECT().GetBalance(gomock.Any(), userID).Return(int64(42), nil)

	balance, err := uc.GetBalance(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), balance)
}

func TestSelectWriter_AtomicWhenProbeSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	mockRepo.EXPECT().ProbeAtomicSupport(gomock.Any()).Return(nil)

	writer := selectWriter(context.Background(), mockRepo)
	assert.Equal(t, "atomic", writer.Name())
}

func TestSelectWriter_FallsBackWhenProbeFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	mockRepo.EXPECT().ProbeAtomicSupport(gomock.Any()).Return(errors.New("no transaction support"))

	writer := selectWriter(context.Background(), mockRepo)
	assert.Equal(t, "best-effort", writer.Name())
}

func TestBestEffortLedger_CreditAppliesThreeSteps(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	writer := &BestEffortLedger{repo: mockRepo}
	userID := uuid.New()

	txn := &models.CoinTransaction{ID: uuid.New(), UserID: userID, Amount: 10}

	mockRepo.EXPECT().GetBalance(gomock.Any(), userID).Return(int64(5), nil)
	mockRepo.EXPECT().UpsertBalance(gomock.Any(), userID, int64(15)).Return(nil)
	mockRepo.EXPECT().InsertTransaction(gomock.Any(), txn).Return(nil)

	// Act
	balance, err := writer.Credit(context.Background(), txn)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(15), balance)
}

func TestBestEffortLedger_PartialWriteSurfacesError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	writer := &BestEffortLedger{repo: mockRepo}
	userID := uuid.New()

	txn := &models.CoinTransaction{ID: uuid.New(), UserID: userID, Amount: 10}

	mockRepo.EXPECT().GetBalance(gomock.Any(), userID).Return(int64(5), nil)
	mockRepo.EXPECT().UpsertBalance(gomock.Any(), userID, int64(15)).Return(nil)
	mockRepo.EXPECT().InsertTransaction(gomock.Any(), txn).Return(errors.New("connection reset"))

	// Act
	_, err := writer.Credit(context.Background(), txn)

	// Assert
	assert.Error(t, err)
}

func TestReconcile_BalanceMatchesTransactionSum(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := newTestService(mockRepo, testConfig())
	userID := uuid.New()

	mockRepo.EXPECT().GetBalance(gomock.Any(), userID).Return(int64(45), nil)
	mockRepo.EXPECT().SumTransactionAmounts(gomock.Any(), userID).Return(int64(45), nil)

	// Act
	result, err := uc.Reconcile(context.Background(), userID)

	// Assert
	assert.NoError(t, err)
	assert.True(t, result.Consistent)
	assert.Equal(t, int64(45), result.Balance)
	assert.Equal(t, int64(45), result.TransactionSum)
}

func TestReconcile_DriftAfterInterruptedBestEffortWrite(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := newTestService(mockRepo, testConfig())
	userID := uuid.New()

	// A best-effort credit that died between the balance upsert and the
	// transaction insert leaves the cached balance ahead of the log.
	mockRepo.EXPECT().GetBalance(gomock.Any(), userID).Return(int64(50), nil)
	mockRepo.EXPECT().SumTransactionAmounts(gomock.Any(), userID).Return(int64(45), nil)

	// Act
	result, err := uc.Reconcile(context.Background(), userID)

	// Assert
	assert.NoError(t, err)
	assert.False(t, result.Consistent)
	assert.Equal(t, int64(50), result.Balance)
	assert.Equal(t, int64(45), result.TransactionSum)
}

func TestReconcile_BalanceReadFailureSurfaces(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := newTestService(mockRepo, testConfig())
	userID := uuid.New()

	mockRepo.EXPECT().GetBalance(gomock.Any(), userID).Return(int64(0), errors.New("connection reset"))

	// Act
	_, err := uc.Reconcile(context.Background(), userID)

	// Assert
	assert.Error(t, err)
}
