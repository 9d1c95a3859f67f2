package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/fanloop/fanloop/internal/pkg/models"
	"github.com/fanloop/fanloop/services/notification"
)

// PostgresNotificationRepo implements the NotificationRepo interface
type PostgresNotificationRepo struct {
	db *sqlx.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *sqlx.DB) notification.NotificationRepo {
	return &PostgresNotificationRepo{
		db: db,
	}
}

// InsertNotification persists one outbound record
func (r *PostgresNotificationRepo) InsertNotification(ctx context.Context, record *models.NotificationRecord) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO notifications (
			id, external_id, channel, user_id, status, fallback_action_id,
			metadata, created_at, updated_at
		) VALUES (
			:id, :external_id, :channel, :user_id, :status, :fallback_action_id,
			:metadata, :created_at, :updated_at
		)
	`, record)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}

// GetByExternalID looks a record up by provider message ID within a
// channel. Unknown IDs return (nil, nil); providers send events for
// messages this service never recorded.
func (r *PostgresNotificationRepo) GetByExternalID(ctx context.Context, channel, externalID string) (*models.NotificationRecord, error) {
	var record models.NotificationRecord
	err := r.db.GetContext(ctx, &record, `
		SELECT id, external_id, channel, user_id, status, fallback_action_id,
			metadata, created_at, updated_at
		FROM notifications
		WHERE channel = $1 AND external_id = $2
	`, channel, externalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	return &record, nil
}

// AdvanceStatus updates status and metadata only while the current status
// is one of the replaceable set
func (r *PostgresNotificationRepo) AdvanceStatus(ctx context.Context, id uuid.UUID, newStatus string, replaceable []string, metadata string) (bool, error) {
	query, args, err := sqlx.In(`
		UPDATE notifications
		SET status = ?, metadata = ?, updated_at = NOW()
		WHERE id = ? AND status IN (?)
	`, newStatus, metadata, id, replaceable)
	if err != nil {
		return false, fmt.Errorf("failed to build status update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return false, fmt.Errorf("failed to advance status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows > 0, nil
}
