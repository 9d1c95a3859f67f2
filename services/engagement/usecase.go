package engagement

import (
	"context"
	"errors"
	"time"

	"github.com/fanloop/fanloop/internal/pkg/models"
	"github.com/google/uuid"
)

// ErrPersistenceUnavailable marks a store write that failed because the
// store itself could not take it. Callers may degrade to a weaker
// in-process fallback rather than drop the action.
var ErrPersistenceUnavailable = errors.New("persistence unavailable")

// EngagementUC defines the interface for scheduled-action use cases
type EngagementUC interface {
	// Schedule evaluates the identity, probability, and delay gates for a
	// piece of member content and persists the resulting action. A gated
	// skip returns Scheduled=false with a nil error.
	Schedule(ctx context.Context, target models.ActionTarget, kind string) (models.ScheduleResult, error)

	// ProcessDue claims due pending actions and executes them. Every
	// claimed action reaches a terminal status in the same run.
	ProcessDue(ctx context.Context, limit int) (models.ProcessReport, error)

	// Backfill scans member comments older than the cutoff that never got
	// a response and runs them through the scheduling gates. Re-invocation
	// over the same window schedules nothing new.
	Backfill(ctx context.Context, olderThan time.Time, limit int) (models.BackfillReport, error)

	// Cancel flips a pending action to cancelled. Actions already claimed
	// or terminal are left untouched and reported as not cancelled.
	Cancel(ctx context.Context, actionID uuid.UUID) (bool, error)
}
