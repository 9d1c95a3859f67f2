package models

import (
	"time"

	"github.com/google/uuid"
)

// Reward is a catalog item members spend coins on
type Reward struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Cost      int64     `json:"cost" db:"cost"`
	Stock     int       `json:"stock" db:"stock"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RewardClaim records one redeemed reward
type RewardClaim struct {
	ID        uuid.UUID `json:"id" db:"id"`
	RewardID  uuid.UUID `json:"reward_id" db:"reward_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Cost      int64     `json:"cost" db:"cost"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ClaimRewardRequest is the member-facing redeem request
type ClaimRewardRequest struct {
	RewardID uuid.UUID `json:"reward_id" validate:"required"`
}
