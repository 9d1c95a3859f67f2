package engagement

import (
	"context"
	"time"

	"github.com/fanloop/fanloop/internal/pkg/models"
	"github.com/google/uuid"
)

// EngagementRepo defines the interface for scheduled-action persistence
type EngagementRepo interface {
	// InsertAction persists one pending action. Failures caused by the
	// store being unreachable wrap ErrPersistenceUnavailable.
	InsertAction(ctx context.Context, action *models.ScheduledAction) error

	// ClaimDueActions atomically flips due pending rows to processing and
	// returns them. Rows claimed by a concurrent worker are skipped, never
	// returned twice.
	ClaimDueActions(ctx context.Context, now time.Time, limit int) ([]models.ScheduledAction, error)

	// MarkActionSent flips a processing row to sent
	MarkActionSent(ctx context.Context, actionID uuid.UUID, executedAt time.Time) error

	// MarkActionFailed flips a processing row to failed. Failed rows are
	// terminal; no retry path exists.
	MarkActionFailed(ctx context.Context, actionID uuid.UUID, executedAt time.Time) error

	// CancelPendingAction flips pending to cancelled, reporting false when
	// the row was not pending.
	CancelPendingAction(ctx context.Context, actionID uuid.UUID) (bool, error)

	// ExecuteLike inserts the automated like and bumps the post's like
	// counter in one database transaction.
	ExecuteLike(ctx context.Context, action *models.ScheduledAction, botUserID uuid.UUID) error

	// ExecuteComment inserts the automated comment and bumps the post's
	// comment counter in one database transaction.
	ExecuteComment(ctx context.Context, action *models.ScheduledAction, botUserID uuid.UUID) error

	// ListUnrespondedComments returns member comments older than the
	// cutoff with no reply from the given user.
	ListUnrespondedComments(ctx context.Context, botUserID uuid.UUID, olderThan time.Time, limit int) ([]models.Comment, error)

	// HasScheduledResponse reports whether any non-cancelled action
	// already targets the comment.
	HasScheduledResponse(ctx context.Context, commentID uuid.UUID) (bool, error)
}
