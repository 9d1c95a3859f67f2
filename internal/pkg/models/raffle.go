package models

import (
	"time"

	"github.com/google/uuid"
)

// Participant statuses
const (
	ParticipantStatusPending  = "pending"
	ParticipantStatusApproved = "approved"
	ParticipantStatusRejected = "rejected"
)

// Challenge is the unit a raffle draws over
type Challenge struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	PrizePool int64     `json:"prize_pool" db:"prize_pool"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ChallengeParticipant is one member's entry in a challenge. Eligible
// flips to false once the member wins a draw for this challenge;
// non-winners stay eligible for future recurring draws.
type ChallengeParticipant struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ChallengeID uuid.UUID `json:"challenge_id" db:"challenge_id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Status      string    `json:"status" db:"status"`
	Eligible    bool      `json:"eligible" db:"eligible"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// RaffleDraw is one persisted winner record, retained for audit
type RaffleDraw struct {
	ID           uuid.UUID `json:"id" db:"id"`
	ChallengeID  uuid.UUID `json:"challenge_id" db:"challenge_id"`
	WinnerUserID uuid.UUID `json:"winner_user_id" db:"winner_user_id"`
	PrizeAmount  int64     `json:"prize_amount" db:"prize_amount"`
	DrawnAt      time.Time `json:"drawn_at" db:"drawn_at"`
}

// DrawResult reports the winners of one draw
type DrawResult struct {
	ChallengeID uuid.UUID    `json:"challenge_id"`
	Winners     []RaffleDraw `json:"winners"`
}
