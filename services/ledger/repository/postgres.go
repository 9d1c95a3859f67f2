package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fanloop/fanloop/internal/pkg/models"
	"github.com/fanloop/fanloop/services/ledger"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// PostgresLedgerRepo implements the LedgerRepo interface
type PostgresLedgerRepo struct {
	db *sqlx.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *sqlx.DB) ledger.LedgerRepo {
	return &PostgresLedgerRepo{
		db: db,
	}
}

// GetBalance returns the cached balance for a user, 0 when no row exists
func (r *PostgresLedgerRepo) GetBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	var balance int64
	err := r.db.GetContext(ctx, &balance, `
		SELECT balance FROM coin_balances WHERE user_id = $1
	`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}

	return balance, nil
}

// SumTransactionAmounts returns the signed sum of all transactions for a user
func (r *PostgresLedgerRepo) SumTransactionAmounts(ctx context.Context, userID uuid.UUID) (int64, error) {
	var sum int64
	err := r.db.GetContext(ctx, &sum, `
		SELECT COALESCE(SUM(amount), 0) FROM coin_transactions WHERE user_id = $1
	`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to sum transactions: %w", err)
	}

	return sum, nil
}

// CountTransactionsSince counts positive transactions of one category
// recorded for a user after the given instant.
func (r *PostgresLedgerRepo) CountTransactionsSince(ctx context.Context, userID uuid.UUID, category string, since time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM coin_transactions
		WHERE user_id = $1 AND category = $2 AND amount > 0 AND created_at >= $3
	`, userID, category, since)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return count, nil
}

// ProbeAtomicSupport verifies the store can run the credit as one
// transactional unit. Called once at startup to pick the write strategy.
func (r *PostgresLedgerRepo) ProbeAtomicSupport(ctx context.Context) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin probe transaction: %w", err)
	}
	defer tx.Rollback()

	var one int
	if err := tx.GetContext(ctx, &one, `SELECT 1 FROM coin_balances LIMIT 1`); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to probe coin_balances: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit probe transaction: %w", err)
	}

	return nil
}

// CreditAtomic applies the balance upsert and the transaction insert in one
// database transaction, returning the new balance.
func (r *PostgresLedgerRepo) CreditAtomic(ctx context.Context, txn *models.CoinTransaction) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var newBalance int64
	err = tx.GetContext(ctx, &newBalance, `
		INSERT INTO coin_balances (user_id, balance, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET balance = coin_balances.balance + $2, updated_at = NOW()
		RETURNING balance
	`, txn.UserID, txn.Amount)
	if err != nil {
		return 0, fmt.Errorf("failed to update balance: %w", err)
	}

	if err := insertTransaction(ctx, tx, txn); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return newBalance, nil
}

// UpsertBalance overwrites a user's cached balance. Only the degraded
// best-effort write path uses this.
func (r *PostgresLedgerRepo) UpsertBalance(ctx context.Context, userID uuid.UUID, balance int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO coin_balances (user_id, balance, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET balance = $2, updated_at = NOW()
	`, userID, balance)
	if err != nil {
		return fmt.Errorf("failed to upsert balance: %w", err)
	}

	return nil
}

// InsertTransaction appends one transaction row
func (r *PostgresLedgerRepo) InsertTransaction(ctx context.Context, txn *models.CoinTransaction) error {
	return insertTransaction(ctx, r.db, txn)
}

// DebitAtomic decrements a balance only while it stays non-negative and
// records the negative transaction in the same database transaction.
func (r *PostgresLedgerRepo) DebitAtomic(ctx context.Context, txn *models.CoinTransaction) (int64, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	amount := -txn.Amount // txn.Amount is negative for debits

	var newBalance int64
	err = tx.GetContext(ctx, &newBalance, `
		UPDATE coin_balances
		SET balance = balance - $1, updated_at = NOW()
		WHERE user_id = $2 AND balance >= $1
		RETURNING balance
	`, amount, txn.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to debit balance: %w", err)
	}

	if err := insertTransaction(ctx, tx, txn); err != nil {
		return 0, false, err
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return newBalance, true, nil
}

// GetReward retrieves one catalog reward
func (r *PostgresLedgerRepo) GetReward(ctx context.Context, rewardID uuid.UUID) (*models.Reward, error) {
	var reward models.Reward
	err := r.db.GetContext(ctx, &reward, `
		SELECT id, name, cost, stock, created_at FROM rewards WHERE id = $1
	`, rewardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrRewardNotFound
		}
		return nil, fmt.Errorf("failed to get reward: %w", err)
	}

	return &reward, nil
}

// CreateRewardClaim records one redeemed reward
func (r *PostgresLedgerRepo) CreateRewardClaim(ctx context.Context, claim *models.RewardClaim) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO reward_claims (id, reward_id, user_id, cost, created_at)
		VALUES (:id, :reward_id, :user_id, :cost, :created_at)
	`, claim)
	if err != nil {
		return fmt.Errorf("failed to create reward claim: %w", err)
	}

	return nil
}

// DeleteRewardClaim removes a claim row during compensation
func (r *PostgresLedgerRepo) DeleteRewardClaim(ctx context.Context, claimID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM reward_claims WHERE id = $1
	`, claimID)
	if err != nil {
		return fmt.Errorf("failed to delete reward claim: %w", err)
	}

	return nil
}

// DecrementRewardStock decrements stock only while it stays non-negative
func (r *PostgresLedgerRepo) DecrementRewardStock(ctx context.Context, rewardID uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE rewards SET stock = stock - 1 WHERE id = $1 AND stock > 0
	`, rewardID)
	if err != nil {
		return false, fmt.Errorf("failed to decrement stock: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows > 0, nil
}

// execer covers *sqlx.DB and *sqlx.Tx for shared insert helpers
type execer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

func insertTransaction(ctx context.Context, e execer, txn *models.CoinTransaction) error {
	_, err := e.NamedExecContext(ctx, `
		INSERT INTO coin_transactions (
			id, user_id, amount, category, reference_id, reference_type, metadata, created_at
		) VALUES (
			:id, :user_id, :amount, :category, :reference_id, :reference_type, :metadata, :created_at
		)
	`, txn)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}
