package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fanloop/fanloop/internal/pkg/logger"
	"github.com/fanloop/fanloop/internal/pkg/models"
	natspkg "github.com/fanloop/fanloop/internal/pkg/nats"
	"github.com/fanloop/fanloop/services/ledger"
	"github.com/google/uuid"
)

// LedgerService implements the ledger.LedgerUC interface
type LedgerService struct {
	cfg    *models.Config
	repo   ledger.LedgerRepo
	writer LedgerWriter
	pub    natspkg.Publisher
	now    func() time.Time
}

// NewLedgerUC creates a new ledger use case. It probes the store once to
// select the write strategy.
func NewLedgerUC(cfg *models.Config, repo ledger.LedgerRepo, pub natspkg.Publisher) ledger.LedgerUC {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	writer := selectWriter(ctx, repo)
	logger.Info("Ledger write strategy selected", logger.String("strategy", writer.Name()))

	return &LedgerService{
		cfg:    cfg,
		repo:   repo,
		writer: writer,
		pub:    pub,
		now:    time.Now,
	}
}

// Grant credits coins for a member action under the per-category rate
// policy. Counts are computed against the transaction log at call time,
// never cached. There is a check-then-write window during which parallel
// self-requests can exceed a cap by one; accepted and documented rather
// than locked around.
func (uc *LedgerService) Grant(ctx context.Context, userID uuid.UUID, category string, amount int64, ref models.TransactionRef) (models.GrantResult, error) {
	if amount <= 0 {
		return models.GrantResult{}, fmt.Errorf("grant amount must be positive")
	}

	limited, err := uc.rateLimited(ctx, userID, category)
	if err != nil {
		return models.GrantResult{}, err
	}
	if limited {
		// Fail-open for the user, fail-closed for the economy: the action
		// succeeds, the payout does not happen.
		logger.Swallow("ledger", "rate_limited", nil,
			logger.String("user_id", userID.String()),
			logger.String("category", category))

		balance, err := uc.repo.GetBalance(ctx, userID)
		if err != nil {
			return models.GrantResult{}, fmt.Errorf("failed to read balance: %w", err)
		}
		return models.GrantResult{Granted: false, NewBalance: balance}, nil
	}

	txn := &models.CoinTransaction{
		ID:            uuid.New(),
		UserID:        userID,
		Amount:        amount,
		Category:      category,
		ReferenceID:   ref.ReferenceID,
		ReferenceType: ref.ReferenceType,
		CreatedAt:     uc.now().UTC(),
	}

	newBalance, err := uc.writer.Credit(ctx, txn)
	if err != nil {
		return models.GrantResult{}, fmt.Errorf("failed to credit: %w", err)
	}

	uc.publishTransaction(txn, newBalance)

	return models.GrantResult{Granted: true, NewBalance: newBalance}, nil
}

// Spend debits coins with a conditional decrement so the balance can never
// go negative.
func (uc *LedgerService) Spend(ctx context.Context, userID uuid.UUID, amount int64, ref models.TransactionRef) (models.SpendResult, error) {
	if amount <= 0 {
		return models.SpendResult{}, fmt.Errorf("spend amount must be positive")
	}

	txn := &models.CoinTransaction{
		ID:            uuid.New(),
		UserID:        userID,
		Amount:        -amount,
		Category:      models.CategoryRewardClaim,
		ReferenceID:   ref.ReferenceID,
		ReferenceType: ref.ReferenceType,
		CreatedAt:     uc.now().UTC(),
	}

	newBalance, ok, err := uc.repo.DebitAtomic(ctx, txn)
	if err != nil {
		return models.SpendResult{}, fmt.Errorf("failed to debit: %w", err)
	}
	if !ok {
		return models.SpendResult{}, ledger.ErrInsufficientBalance
	}

	uc.publishTransaction(txn, newBalance)

	return models.SpendResult{NewBalance: newBalance, TransactionID: txn.ID}, nil
}

// Refund reverses a previous spend through the credit strategy
func (uc *LedgerService) Refund(ctx context.Context, userID uuid.UUID, amount int64, ref models.TransactionRef) (models.SpendResult, error) {
	if amount <= 0 {
		return models.SpendResult{}, fmt.Errorf("refund amount must be positive")
	}

	txn := &models.CoinTransaction{
		ID:            uuid.New(),
		UserID:        userID,
		Amount:        amount,
		Category:      models.CategoryRefund,
		ReferenceID:   ref.ReferenceID,
		ReferenceType: ref.ReferenceType,
		CreatedAt:     uc.now().UTC(),
	}

	newBalance, err := uc.writer.Credit(ctx, txn)
	if err != nil {
		return models.SpendResult{}, fmt.Errorf("failed to refund: %w", err)
	}

	uc.publishTransaction(txn, newBalance)

	return models.SpendResult{NewBalance: newBalance, TransactionID: txn.ID}, nil
}

// ClaimReward redeems a catalog reward. The member is never charged without
// the claim being delivered: every step applied before a failure is
// compensated in reverse order.
func (uc *LedgerService) ClaimReward(ctx context.Context, userID uuid.UUID, rewardID uuid.UUID) (*models.RewardClaim, error) {
	reward, err := uc.repo.GetReward(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	if reward.Stock <= 0 {
		return nil, ledger.ErrRewardOutOfStock
	}

	ref := models.TransactionRef{ReferenceID: reward.ID.String(), ReferenceType: "reward"}

	if _, err := uc.Spend(ctx, userID, reward.Cost, ref); err != nil {
		return nil, err
	}

	claim := &models.RewardClaim{
		ID:        uuid.New(),
		RewardID:  reward.ID,
		UserID:    userID,
		Cost:      reward.Cost,
		CreatedAt: uc.now().UTC(),
	}

	if err := uc.repo.CreateRewardClaim(ctx, claim); err != nil {
		uc.compensateSpend(ctx, userID, reward.Cost, ref)
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}

	ok, err := uc.repo.DecrementRewardStock(ctx, reward.ID)
	if err != nil || !ok {
		if delErr := uc.repo.DeleteRewardClaim(ctx, claim.ID); delErr != nil {
			logger.ErrorLog("Failed to remove claim during compensation",
				logger.Err(delErr),
				logger.String("claim_id", claim.ID.String()))
		}
		uc.compensateSpend(ctx, userID, reward.Cost, ref)
		if err != nil {
			return nil, fmt.Errorf("failed to decrement stock: %w", err)
		}
		return nil, ledger.ErrRewardOutOfStock
	}

	return claim, nil
}

// GetBalance returns the member's current coin balance
func (uc *LedgerService) GetBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	return uc.repo.GetBalance(ctx, userID)
}

// Reconcile compares the cached balance against the transaction log. The
// two only drift when a best-effort write was interrupted between steps;
// the report is the operator's signal to repair the balance row.
func (uc *LedgerService) Reconcile(ctx context.Context, userID uuid.UUID) (models.ReconcileResult, error) {
	balance, err := uc.repo.GetBalance(ctx, userID)
	if err != nil {
		return models.ReconcileResult{}, fmt.Errorf("failed to read balance: %w", err)
	}

	sum, err := uc.repo.SumTransactionAmounts(ctx, userID)
	if err != nil {
		return models.ReconcileResult{}, fmt.Errorf("failed to sum transactions: %w", err)
	}

	result := models.ReconcileResult{
		UserID:         userID,
		Balance:        balance,
		TransactionSum: sum,
		Consistent:     balance == sum,
	}
	if !result.Consistent {
		logger.Warn("Balance drift detected",
			logger.String("user_id", userID.String()),
			logger.Int64("balance", balance),
			logger.Int64("transaction_sum", sum))
	}

	return result, nil
}

// rateLimited checks the trailing 1h and 24h windows for the category
func (uc *LedgerService) rateLimited(ctx context.Context, userID uuid.UUID, category string) (bool, error) {
	policy, ok := uc.cfg.Ledger.Policies[category]
	if !ok {
		return false, nil
	}

	now := uc.now()

	if policy.MaxPerHour > 0 {
		count, err := uc.repo.CountTransactionsSince(ctx, userID, category, now.Add(-time.Hour))
		if err != nil {
			return false, fmt.Errorf("failed to count hourly transactions: %w", err)
		}
		if count >= policy.MaxPerHour {
			return true, nil
		}
	}

	if policy.MaxPerDay > 0 {
		count, err := uc.repo.CountTransactionsSince(ctx, userID, category, now.Add(-24*time.Hour))
		if err != nil {
			return false, fmt.Errorf("failed to count daily transactions: %w", err)
		}
		if count >= policy.MaxPerDay {
			return true, nil
		}
	}

	return false, nil
}

// compensateSpend refunds a spend during multi-step rollback, logging
// rather than bubbling because the caller already has a primary error.
func (uc *LedgerService) compensateSpend(ctx context.Context, userID uuid.UUID, amount int64, ref models.TransactionRef) {
	if _, err := uc.Refund(ctx, userID, amount, ref); err != nil {
		logger.ErrorLog("Failed to compensate spend",
			logger.Err(err),
			logger.String("user_id", userID.String()),
			logger.Int64("amount", amount))
	}
}

// publishTransaction emits the recorded-transaction event. Publishing is
// best-effort: a broker outage must not fail the member action.
func (uc *LedgerService) publishTransaction(txn *models.CoinTransaction, newBalance int64) {
	if uc.pub == nil {
		return
	}

	event := models.TransactionEvent{
		TransactionID: txn.ID,
		UserID:        txn.UserID,
		Amount:        txn.Amount,
		Category:      txn.Category,
		NewBalance:    newBalance,
		Timestamp:     time.Now().UTC(),
	}

	if err := uc.pub.PublishEvent(models.SubjectTransactionRecorded, event); err != nil {
		logger.Swallow("ledger", "event_publish_failed", err,
			logger.String("transaction_id", txn.ID.String()))
	}
}
