package models

import (
	"time"

	"github.com/google/uuid"
)

// Automated action kinds
const (
	ActionKindLike    = "bot_like"
	ActionKindComment = "bot_comment"
	ActionKindReply   = "bot_reply"
)

// Scheduled action statuses. A row is created as pending and moves one way:
// pending -> sent | failed | cancelled. processing is the transient claim
// state held by a worker between claim and terminal status.
const (
	ActionStatusPending    = "pending"
	ActionStatusProcessing = "processing"
	ActionStatusSent       = "sent"
	ActionStatusFailed     = "failed"
	ActionStatusCancelled  = "cancelled"
)

// ScheduledAction is a persisted instruction to perform one automated
// social interaction at a future time. The payload is generated at
// schedule time and replayed verbatim at execution time.
type ScheduledAction struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	TargetUserID uuid.UUID  `json:"target_user_id" db:"target_user_id"`
	PostID       uuid.UUID  `json:"post_id" db:"post_id"`
	CommentID    *uuid.UUID `json:"comment_id,omitempty" db:"comment_id"`
	ActionKind   string     `json:"action_kind" db:"action_kind"`
	Payload      string     `json:"payload" db:"payload"`
	ScheduledFor time.Time  `json:"scheduled_for" db:"scheduled_for"`
	Status       string     `json:"status" db:"status"`
	ExecutedAt   *time.Time `json:"executed_at,omitempty" db:"executed_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// ActionTarget identifies the content an automated action would respond to
type ActionTarget struct {
	AuthorID  uuid.UUID  `json:"author_id"`
	PostID    uuid.UUID  `json:"post_id"`
	CommentID *uuid.UUID `json:"comment_id,omitempty"`
	Text      string     `json:"text"`
}

// ScheduleResult reports whether an action passed the gates and, if so,
// when it will fire.
type ScheduleResult struct {
	Scheduled    bool       `json:"scheduled"`
	ActionID     uuid.UUID  `json:"action_id,omitempty"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
}

// ProcessReport summarises one worker run
type ProcessReport struct {
	Claimed  int `json:"claimed"`
	Executed int `json:"executed"`
	Failed   int `json:"failed"`
}

// BackfillReport summarises one backfill run
type BackfillReport struct {
	Scanned   int `json:"scanned"`
	Scheduled int `json:"scheduled"`
	Skipped   int `json:"skipped"`
}

// Comment is a member comment on a post, the unit the backfill scans
type Comment struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	PostID    uuid.UUID  `json:"post_id" db:"post_id"`
	AuthorID  uuid.UUID  `json:"author_id" db:"author_id"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty" db:"parent_id"`
	Body      string     `json:"body" db:"body"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}
