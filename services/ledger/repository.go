package ledger

import (
	"context"
	"time"

	"github.com/fanloop/fanloop/internal/pkg/models"
	"github.com/google/uuid"
)

// LedgerRepo defines the interface for coin ledger persistence
type LedgerRepo interface {
	// GetBalance returns the cached balance for a user. A user with no
	// balance row has balance 0.
	GetBalance(ctx context.Context, userID uuid.UUID) (int64, error)

	// SumTransactionAmounts returns the signed sum of all transactions for
	// a user, the source of truth the balance projection must agree with.
	SumTransactionAmounts(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountTransactionsSince counts positive transactions of one category
	// recorded for a user after the given instant.
	CountTransactionsSince(ctx context.Context, userID uuid.UUID, category string, since time.Time) (int, error)

	// ProbeAtomicSupport reports whether the store can perform the
	// balance-write-plus-insert as one atomic unit.
	ProbeAtomicSupport(ctx context.Context) error

	// CreditAtomic applies a positive transaction and its balance update
	// as a single atomic unit, returning the new balance.
	CreditAtomic(ctx context.Context, txn *models.CoinTransaction) (int64, error)

	// UpsertBalance overwrites a user's cached balance. Degraded-path
	// primitive only.
	UpsertBalance(ctx context.Context, userID uuid.UUID, balance int64) error

	// InsertTransaction appends one transaction row
	InsertTransaction(ctx context.Context, txn *models.CoinTransaction) error

	// DebitAtomic decrements a balance only while it stays non-negative and
	// records the negative transaction in the same atomic unit. ok is false
	// when the conditional decrement matched no row.
	DebitAtomic(ctx context.Context, txn *models.CoinTransaction) (newBalance int64, ok bool, err error)

	// Reward catalog operations for the redeem flow
	GetReward(ctx context.Context, rewardID uuid.UUID) (*models.Reward, error)
	CreateRewardClaim(ctx context.Context, claim *models.RewardClaim) error
	DeleteRewardClaim(ctx context.Context, claimID uuid.UUID) error
	DecrementRewardStock(ctx context.Context, rewardID uuid.UUID) (ok bool, err error)
}
