package models

import (
	"time"

	"github.com/google/uuid"
)

// NATS subjects for domain events
const (
	SubjectTransactionRecorded = "ledger.transaction.recorded"
	SubjectActionExecuted      = "engagement.action.executed"
	SubjectNotificationStatus  = "notification.status.changed"
	SubjectRaffleDrawn         = "raffle.winners.drawn"
)

// NATS subjects for community content events consumed by this service
const (
	SubjectPostCreated    = "community.post.created"
	SubjectCommentCreated = "community.comment.created"
	SubjectPostLiked      = "community.post.liked"
)

// PostCreatedEvent announces a new member post
type PostCreatedEvent struct {
	PostID    uuid.UUID `json:"post_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

// CommentCreatedEvent announces a new member comment
type CommentCreatedEvent struct {
	CommentID uuid.UUID  `json:"comment_id"`
	PostID    uuid.UUID  `json:"post_id"`
	AuthorID  uuid.UUID  `json:"author_id"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	Body      string     `json:"body"`
	Timestamp time.Time  `json:"timestamp"`
}

// PostLikedEvent announces a member liking a post
type PostLikedEvent struct {
	PostID    uuid.UUID `json:"post_id"`
	LikerID   uuid.UUID `json:"liker_id"`
	Timestamp time.Time `json:"timestamp"`
}

// TransactionEvent is published after each recorded ledger transaction
type TransactionEvent struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	UserID        uuid.UUID `json:"user_id"`
	Amount        int64     `json:"amount"`
	Category      string    `json:"category"`
	NewBalance    int64     `json:"new_balance"`
	Timestamp     time.Time `json:"timestamp"`
}

// ActionExecutedEvent is published after a scheduled action reaches a
// terminal status.
type ActionExecutedEvent struct {
	ActionID   uuid.UUID `json:"action_id"`
	ActionKind string    `json:"action_kind"`
	PostID     uuid.UUID `json:"post_id"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}

// NotificationStatusEvent is published on every accepted status transition
type NotificationStatusEvent struct {
	NotificationID uuid.UUID `json:"notification_id"`
	Channel        string    `json:"channel"`
	OldStatus      string    `json:"old_status"`
	NewStatus      string    `json:"new_status"`
	Timestamp      time.Time `json:"timestamp"`
}

// RaffleDrawnEvent is published after a completed draw
type RaffleDrawnEvent struct {
	ChallengeID uuid.UUID   `json:"challenge_id"`
	WinnerIDs   []uuid.UUID `json:"winner_ids"`
	PrizeTotal  int64       `json:"prize_total"`
	Timestamp   time.Time   `json:"timestamp"`
}
