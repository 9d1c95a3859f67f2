package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/fanloop/fanloop/internal/pkg/models"
	"github.com/fanloop/fanloop/services/engagement"
)

// PostgresEngagementRepo implements the EngagementRepo interface
type PostgresEngagementRepo struct {
	db *sqlx.DB
}

// NewEngagementRepository creates a new engagement repository
func NewEngagementRepository(db *sqlx.DB) engagement.EngagementRepo {
	return &PostgresEngagementRepo{
		db: db,
	}
}

// InsertAction persists one pending action. When the insert fails and the
// store does not even answer a ping, the error wraps
// ErrPersistenceUnavailable so the caller can degrade instead of dropping
// the action.
func (r *PostgresEngagementRepo) InsertAction(ctx context.Context, action *models.ScheduledAction) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO scheduled_actions (
			id, target_user_id, post_id, comment_id, action_kind, payload,
			scheduled_for, status, created_at
		) VALUES (
			:id, :target_user_id, :post_id, :comment_id, :action_kind, :payload,
			:scheduled_for, :status, :created_at
		)
	`, action)
	if err != nil {
		if pingErr := r.db.PingContext(ctx); pingErr != nil {
			return fmt.Errorf("%w: %v", engagement.ErrPersistenceUnavailable, err)
		}
		return fmt.Errorf("failed to insert action: %w", err)
	}

	return nil
}

// ClaimDueActions flips due pending rows to processing and returns them.
// SKIP LOCKED keeps concurrent workers from blocking on or double-claiming
// the same rows.
func (r *PostgresEngagementRepo) ClaimDueActions(ctx context.Context, now time.Time, limit int) ([]models.ScheduledAction, error) {
	var actions []models.ScheduledAction
	err := r.db.SelectContext(ctx, &actions, `
		UPDATE scheduled_actions
		SET status = $1
		WHERE id IN (
			SELECT id FROM scheduled_actions
			WHERE status = $2 AND scheduled_for <= $3
			ORDER BY scheduled_for
			LIMIT $4
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, target_user_id, post_id, comment_id, action_kind, payload,
			scheduled_for, status, executed_at, created_at
	`, models.ActionStatusProcessing, models.ActionStatusPending, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to claim due actions: %w", err)
	}

	return actions, nil
}

// MarkActionSent flips a processing row to sent
func (r *PostgresEngagementRepo) MarkActionSent(ctx context.Context, actionID uuid.UUID, executedAt time.Time) error {
	return r.markTerminal(ctx, actionID, models.ActionStatusSent, executedAt)
}

// MarkActionFailed flips a processing row to failed
func (r *PostgresEngagementRepo) MarkActionFailed(ctx context.Context, actionID uuid.UUID, executedAt time.Time) error {
	return r.markTerminal(ctx, actionID, models.ActionStatusFailed, executedAt)
}

func (r *PostgresEngagementRepo) markTerminal(ctx context.Context, actionID uuid.UUID, status string, executedAt time.Time) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE scheduled_actions
		SET status = $1, executed_at = $2
		WHERE id = $3 AND status = $4
	`, status, executedAt, actionID, models.ActionStatusProcessing)
	if err != nil {
		return fmt.Errorf("failed to mark action %s: %w", status, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("action %s is not in processing state", actionID)
	}

	return nil
}

// CancelPendingAction flips pending to cancelled. A claimed or terminal row
// matches nothing and reports false.
func (r *PostgresEngagementRepo) CancelPendingAction(ctx context.Context, actionID uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE scheduled_actions
		SET status = $1
		WHERE id = $2 AND status = $3
	`, models.ActionStatusCancelled, actionID, models.ActionStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to cancel action: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows > 0, nil
}

// ExecuteLike inserts the automated like and bumps the post counter in one
// database transaction. A like that already exists increments nothing.
func (r *PostgresEngagementRepo) ExecuteLike(ctx context.Context, action *models.ScheduledAction, botUserID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO post_likes (post_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (post_id, user_id) DO NOTHING
	`, action.PostID, botUserID)
	if err != nil {
		return fmt.Errorf("failed to insert like: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}

	if rows > 0 {
		if _, err := tx.ExecContext(ctx, `
			UPDATE posts SET like_count = like_count + 1 WHERE id = $1
		`, action.PostID); err != nil {
			return fmt.Errorf("failed to bump like count: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ExecuteComment inserts the automated comment and bumps the post counter
// in one database transaction.
func (r *PostgresEngagementRepo) ExecuteComment(ctx context.Context, action *models.ScheduledAction, botUserID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO comments (id, post_id, author_id, parent_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`, uuid.New(), action.PostID, botUserID, action.CommentID, action.Payload); err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE posts SET comment_count = comment_count + 1 WHERE id = $1
	`, action.PostID); err != nil {
		return fmt.Errorf("failed to bump comment count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListUnrespondedComments returns top-level member comments older than the
// cutoff that have no reply from the given user.
func (r *PostgresEngagementRepo) ListUnrespondedComments(ctx context.Context, botUserID uuid.UUID, olderThan time.Time, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, `
		SELECT c.id, c.post_id, c.author_id, c.parent_id, c.body, c.created_at
		FROM comments c
		WHERE c.author_id <> $1
		  AND c.parent_id IS NULL
		  AND c.created_at < $2
		  AND NOT EXISTS (
			SELECT 1 FROM comments r
			WHERE r.parent_id = c.id AND r.author_id = $1
		  )
		ORDER BY c.created_at
		LIMIT $3
	`, botUserID, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list unresponded comments: %w", err)
	}

	return comments, nil
}

// HasScheduledResponse reports whether any non-cancelled action already
// targets the comment.
func (r *PostgresEngagementRepo) HasScheduledResponse(ctx context.Context, commentID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS (
			SELECT 1 FROM scheduled_actions
			WHERE comment_id = $1 AND status <> $2
		)
	`, commentID, models.ActionStatusCancelled)
	if err != nil {
		return false, fmt.Errorf("failed to check scheduled response: %w", err)
	}

	return exists, nil
}
