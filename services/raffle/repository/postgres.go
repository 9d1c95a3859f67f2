package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/fanloop/fanloop/internal/pkg/models"
	"github.com/fanloop/fanloop/services/raffle"
)

// PostgresRaffleRepo implements the RaffleRepo interface
type PostgresRaffleRepo struct {
	db *sqlx.DB
}

// NewRaffleRepository creates a new raffle repository
func NewRaffleRepository(db *sqlx.DB) raffle.RaffleRepo {
	return &PostgresRaffleRepo{
		db: db,
	}
}

// GetChallenge retrieves one challenge
func (r *PostgresRaffleRepo) GetChallenge(ctx context.Context, challengeID uuid.UUID) (*models.Challenge, error) {
	var challenge models.Challenge
	err := r.db.GetContext(ctx, &challenge, `
		SELECT id, title, prize_pool, status, created_at
		FROM challenges WHERE id = $1
	`, challengeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, raffle.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	return &challenge, nil
}

// ListEligibleParticipants returns participants both approved and eligible
func (r *PostgresRaffleRepo) ListEligibleParticipants(ctx context.Context, challengeID uuid.UUID) ([]models.ChallengeParticipant, error) {
	var participants []models.ChallengeParticipant
	err := r.db.SelectContext(ctx, &participants, `
		SELECT id, challenge_id, user_id, status, eligible, created_at
		FROM challenge_participants
		WHERE challenge_id = $1 AND status = $2 AND eligible = TRUE
		ORDER BY created_at
	`, challengeID, models.ParticipantStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible participants: %w", err)
	}

	return participants, nil
}

// InsertDraw persists one winner record
func (r *PostgresRaffleRepo) InsertDraw(ctx context.Context, draw *models.RaffleDraw) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO raffle_draws (id, challenge_id, winner_user_id, prize_amount, drawn_at)
		VALUES (:id, :challenge_id, :winner_user_id, :prize_amount, :drawn_at)
	`, draw)
	if err != nil {
		return fmt.Errorf("failed to insert draw: %w", err)
	}

	return nil
}

// MarkWinnerIneligible flips the eligible flag only while it is still set
func (r *PostgresRaffleRepo) MarkWinnerIneligible(ctx context.Context, challengeID, userID uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE challenge_participants
		SET eligible = FALSE
		WHERE challenge_id = $1 AND user_id = $2 AND eligible = TRUE
	`, challengeID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to mark winner ineligible: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows > 0, nil
}
