package usecase

import (
	"context"
	"fmt"

	"github.com/fanloop/fanloop/internal/pkg/logger"
	"github.com/fanloop/fanloop/internal/pkg/models"
	"github.com/fanloop/fanloop/services/ledger"
)

// LedgerWriter is the strategy for recording a credit. The strategy is
// selected once at startup by a capability probe, not branched per call.
type LedgerWriter interface {
	Name() string
	Credit(ctx context.Context, txn *models.CoinTransaction) (int64, error)
}

// AtomicLedger records the balance update and the transaction insert as one
// atomic unit. This is the normal path.
type AtomicLedger struct {
	repo ledger.LedgerRepo
}

// Name identifies the strategy in logs
func (w *AtomicLedger) Name() string { return "atomic" }

// Credit applies the transaction atomically and returns the new balance
func (w *AtomicLedger) Credit(ctx context.Context, txn *models.CoinTransaction) (int64, error) {
	return w.repo.CreditAtomic(ctx, txn)
}

// BestEffortLedger performs read balance, write balance, insert transaction
// as three separate steps. A crash between steps leaves balance and
// transaction sum divergent until the next write. The gap is bounded by the
// same rate limiter that gates grants, and the strategy is only selected
// when the probe finds no atomic support. It is also not safe under
// concurrent writers to the same account.
type BestEffortLedger struct {
	repo ledger.LedgerRepo
}

// Name identifies the strategy in logs
func (w *BestEffortLedger) Name() string { return "best-effort" }

// Credit applies the transaction in three non-atomic steps
func (w *BestEffortLedger) Credit(ctx context.Context, txn *models.CoinTransaction) (int64, error) {
	balance, err := w.repo.GetBalance(ctx, txn.UserID)
	if err != nil {
		return 0, fmt.Errorf("failed to read balance: %w", err)
	}

	newBalance := balance + txn.Amount
	if err := w.repo.UpsertBalance(ctx, txn.UserID, newBalance); err != nil {
		return 0, fmt.Errorf("failed to write balance: %w", err)
	}

	if err := w.repo.InsertTransaction(ctx, txn); err != nil {
		// Balance already moved; the transaction row is missing until a
		// later write reconciles. Keep operators aware.
		logger.Swallow("ledger", "best_effort_partial_write", err,
			logger.String("user_id", txn.UserID.String()),
			logger.Int64("amount", txn.Amount))
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return newBalance, nil
}

// selectWriter probes the store once and picks the strongest available
// strategy.
func selectWriter(ctx context.Context, repo ledger.LedgerRepo) LedgerWriter {
	if err := repo.ProbeAtomicSupport(ctx); err != nil {
		logger.Swallow("ledger", "atomic_probe_failed", err)
		return &BestEffortLedger{repo: repo}
	}
	return &AtomicLedger{repo: repo}
}
