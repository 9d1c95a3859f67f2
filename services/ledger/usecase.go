package ledger

import (
	"context"
	"errors"

	"github.com/fanloop/fanloop/internal/pkg/models"
	"github.com/google/uuid"
)

// Domain errors surfaced to handlers
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrRewardNotFound      = errors.New("reward not found")
	ErrRewardOutOfStock    = errors.New("reward out of stock")
)

// LedgerUC defines the interface for coin economy use cases
type LedgerUC interface {
	// Grant credits coins for a member action. A grant absorbed by the
	// rate limiter returns Granted=false with a nil error: the earn path
	// never penalises the user-facing action.
	Grant(ctx context.Context, userID uuid.UUID, category string, amount int64, ref models.TransactionRef) (models.GrantResult, error)

	// Spend debits coins, failing with ErrInsufficientBalance when the
	// balance cannot cover the amount.
	Spend(ctx context.Context, userID uuid.UUID, amount int64, ref models.TransactionRef) (models.SpendResult, error)

	// Refund reverses a previous spend. It is the compensation primitive
	// for multi-step flows that fail after the decrement.
	Refund(ctx context.Context, userID uuid.UUID, amount int64, ref models.TransactionRef) (models.SpendResult, error)

	// ClaimReward runs the full redeem flow: spend, create claim,
	// decrement stock, compensating every applied step on failure.
	ClaimReward(ctx context.Context, userID uuid.UUID, rewardID uuid.UUID) (*models.RewardClaim, error)

	// GetBalance returns the member's current coin balance
	GetBalance(ctx context.Context, userID uuid.UUID) (int64, error)

	// Reconcile compares the cached balance against the sum of recorded
	// transaction amounts. Drift is expected only after best-effort
	// writes were interrupted.
	Reconcile(ctx context.Context, userID uuid.UUID) (models.ReconcileResult, error)
}
