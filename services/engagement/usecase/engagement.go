package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fanloop/fanloop/internal/pkg/logger"
	"github.com/fanloop/fanloop/internal/pkg/models"
	natspkg "github.com/fanloop/fanloop/internal/pkg/nats"
	"github.com/fanloop/fanloop/services/engagement"
)

// EngagementService implements the engagement.EngagementUC interface
type EngagementService struct {
	cfg   *models.Config
	repo  engagement.EngagementRepo
	gw    engagement.EngagementGW
	pub   natspkg.Publisher
	botID uuid.UUID
	now   func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngagementUC creates a new engagement use case
func NewEngagementUC(cfg *models.Config, repo engagement.EngagementRepo, gw engagement.EngagementGW, pub natspkg.Publisher) engagement.EngagementUC {
	botID, err := uuid.Parse(cfg.Engagement.BotUserID)
	if err != nil {
		logger.Warn("Invalid bot user ID, identity gate will never match",
			logger.String("bot_user_id", cfg.Engagement.BotUserID))
	}

	return &EngagementService{
		cfg:   cfg,
		repo:  repo,
		gw:    gw,
		pub:   pub,
		botID: botID,
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Schedule runs the three gates over a piece of member content. Content
// authored by the bot itself is never targeted, each kind fires with its
// configured probability, and a passing action lands at a uniformly random
// instant inside the kind's delay window.
func (uc *EngagementService) Schedule(ctx context.Context, target models.ActionTarget, kind string) (models.ScheduleResult, error) {
	policy, ok := uc.cfg.Engagement.Policies[kind]
	if !ok {
		return models.ScheduleResult{}, fmt.Errorf("no policy for action kind %s", kind)
	}

	if target.AuthorID == uc.botID {
		return models.ScheduleResult{Scheduled: false}, nil
	}

	if uc.roll() >= policy.Probability {
		return models.ScheduleResult{Scheduled: false}, nil
	}

	now := uc.now().UTC()
	scheduledFor := now.Add(uc.delayFor(policy))

	action := &models.ScheduledAction{
		ID:           uuid.New(),
		TargetUserID: target.AuthorID,
		PostID:       target.PostID,
		CommentID:    target.CommentID,
		ActionKind:   kind,
		ScheduledFor: scheduledFor,
		Status:       models.ActionStatusPending,
		CreatedAt:    now,
	}

	// Reply text is fixed at schedule time so the action replays exactly
	// what was decided, regardless of what the generator would say later.
	if kind == models.ActionKindComment || kind == models.ActionKindReply {
		action.Payload = uc.gw.GenerateReply(ctx, target.Text)
	}

	if err := uc.repo.InsertAction(ctx, action); err != nil {
		if !errors.Is(err, engagement.ErrPersistenceUnavailable) {
			return models.ScheduleResult{}, fmt.Errorf("failed to insert action: %w", err)
		}

		// The store is down. An in-process timer is strictly weaker than a
		// persisted row: it does not survive a restart and cannot be
		// cancelled through the API. Losing the action entirely is worse.
		logger.Swallow("engagement", "insert_unavailable_in_process_fallback", err,
			logger.String("action_id", action.ID.String()),
			logger.String("kind", kind))

		fallbackAt := now.Add(policy.MinDelay)
		action.ScheduledFor = fallbackAt
		uc.armInProcess(action, policy.MinDelay)

		return models.ScheduleResult{Scheduled: true, ActionID: action.ID, ScheduledFor: &fallbackAt}, nil
	}

	return models.ScheduleResult{Scheduled: true, ActionID: action.ID, ScheduledFor: &scheduledFor}, nil
}

// ProcessDue claims a batch of due actions and drives each to a terminal
// status. Claiming is exclusive, so concurrent runs split the due set
// rather than double-executing it.
func (uc *EngagementService) ProcessDue(ctx context.Context, limit int) (models.ProcessReport, error) {
	if limit <= 0 {
		limit = uc.cfg.Engagement.BatchLimit
	}

	actions, err := uc.repo.ClaimDueActions(ctx, uc.now().UTC(), limit)
	if err != nil {
		return models.ProcessReport{}, fmt.Errorf("failed to claim due actions: %w", err)
	}

	report := models.ProcessReport{Claimed: len(actions)}

	for i := range actions {
		if i > 0 && uc.cfg.Engagement.ItemPause > 0 {
			select {
			case <-ctx.Done():
				return report, ctx.Err()
			case <-time.After(uc.cfg.Engagement.ItemPause):
			}
		}

		action := &actions[i]
		executedAt := uc.now().UTC()

		if err := uc.execute(ctx, action); err != nil {
			logger.ErrorLog("Scheduled action failed",
				logger.Err(err),
				logger.String("action_id", action.ID.String()),
				logger.String("kind", action.ActionKind))

			if markErr := uc.repo.MarkActionFailed(ctx, action.ID, executedAt); markErr != nil {
				logger.ErrorLog("Failed to mark action failed",
					logger.Err(markErr),
					logger.String("action_id", action.ID.String()))
			}
			report.Failed++
			uc.publishExecuted(action, models.ActionStatusFailed)
			continue
		}

		if err := uc.repo.MarkActionSent(ctx, action.ID, executedAt); err != nil {
			logger.ErrorLog("Failed to mark action sent",
				logger.Err(err),
				logger.String("action_id", action.ID.String()))
		}
		report.Executed++
		uc.publishExecuted(action, models.ActionStatusSent)
	}

	return report, nil
}

// Backfill schedules replies to older comments the bot never answered.
// The existing-response check makes re-invocation over the same window a
// no-op.
func (uc *EngagementService) Backfill(ctx context.Context, olderThan time.Time, limit int) (models.BackfillReport, error) {
	comments, err := uc.repo.ListUnrespondedComments(ctx, uc.botID, olderThan, limit)
	if err != nil {
		return models.BackfillReport{}, fmt.Errorf("failed to list unresponded comments: %w", err)
	}

	report := models.BackfillReport{Scanned: len(comments)}

	for i := range comments {
		comment := &comments[i]

		exists, err := uc.repo.HasScheduledResponse(ctx, comment.ID)
		if err != nil {
			return report, fmt.Errorf("failed to check existing response: %w", err)
		}
		if exists {
			report.Skipped++
			continue
		}

		result, err := uc.Schedule(ctx, models.ActionTarget{
			AuthorID:  comment.AuthorID,
			PostID:    comment.PostID,
			CommentID: &comment.ID,
			Text:      comment.Body,
		}, models.ActionKindReply)
		if err != nil {
			return report, err
		}

		if result.Scheduled {
			report.Scheduled++
		} else {
			report.Skipped++
		}
	}

	return report, nil
}

// Cancel flips a pending action to cancelled
func (uc *EngagementService) Cancel(ctx context.Context, actionID uuid.UUID) (bool, error) {
	cancelled, err := uc.repo.CancelPendingAction(ctx, actionID)
	if err != nil {
		return false, fmt.Errorf("failed to cancel action: %w", err)
	}

	return cancelled, nil
}

// execute performs the action's side effect
func (uc *EngagementService) execute(ctx context.Context, action *models.ScheduledAction) error {
	switch action.ActionKind {
	case models.ActionKindLike:
		return uc.repo.ExecuteLike(ctx, action, uc.botID)
	case models.ActionKindComment, models.ActionKindReply:
		return uc.repo.ExecuteComment(ctx, action, uc.botID)
	default:
		return fmt.Errorf("unknown action kind %s", action.ActionKind)
	}
}

// armInProcess schedules a one-shot timer for an action that could not be
// persisted. The terminal status of such an action is log-only.
func (uc *EngagementService) armInProcess(action *models.ScheduledAction, delay time.Duration) {
	time.AfterFunc(delay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := uc.execute(ctx, action); err != nil {
			logger.ErrorLog("In-process fallback action failed",
				logger.Err(err),
				logger.String("action_id", action.ID.String()),
				logger.String("kind", action.ActionKind))
			uc.publishExecuted(action, models.ActionStatusFailed)
			return
		}

		logger.Info("In-process fallback action executed",
			logger.String("action_id", action.ID.String()),
			logger.String("kind", action.ActionKind))
		uc.publishExecuted(action, models.ActionStatusSent)
	})
}

// roll draws one probability sample. rand.Rand is not goroutine safe.
func (uc *EngagementService) roll() float64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.rng.Float64()
}

// delayFor draws a uniform delay inside the policy window
func (uc *EngagementService) delayFor(policy models.ActionPolicy) time.Duration {
	window := policy.MaxDelay - policy.MinDelay
	if window <= 0 {
		return policy.MinDelay
	}

	uc.mu.Lock()
	offset := time.Duration(uc.rng.Int63n(int64(window)))
	uc.mu.Unlock()

	return policy.MinDelay + offset
}

// publishExecuted emits the terminal-status event, best-effort
func (uc *EngagementService) publishExecuted(action *models.ScheduledAction, status string) {
	if uc.pub == nil {
		return
	}

	event := models.ActionExecutedEvent{
		ActionID:   action.ID,
		ActionKind: action.ActionKind,
		PostID:     action.PostID,
		Status:     status,
		Timestamp:  time.Now().UTC(),
	}

	if err := uc.pub.PublishEvent(models.SubjectActionExecuted, event); err != nil {
		logger.Swallow("engagement", "event_publish_failed", err,
			logger.String("action_id", action.ID.String()))
	}
}
