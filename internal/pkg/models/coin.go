package models

import (
	"time"

	"github.com/google/uuid"
)

// Earn and spend transaction categories
const (
	CategoryLikePost          = "LIKE_POST"
	CategoryCreatePost        = "CREATE_POST"
	CategoryCreateComment     = "CREATE_COMMENT"
	CategoryDailyCheckin      = "DAILY_CHECKIN"
	CategoryChallengeApproved = "CHALLENGE_APPROVED"
	CategoryRafflePrize       = "RAFFLE_PRIZE"
	CategoryRewardClaim       = "REWARD_CLAIM"
	CategoryRefund            = "REFUND"
)

// CoinBalance is the cached projection of a user's transaction history.
// It must never go negative.
type CoinBalance struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Balance   int64     `json:"balance" db:"balance"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CoinTransaction is one append-only ledger entry. Amount is signed:
// positive for grants, negative for spends. Rows are never mutated
// or deleted.
type CoinTransaction struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	Amount        int64     `json:"amount" db:"amount"`
	Category      string    `json:"category" db:"category"`
	ReferenceID   string    `json:"reference_id" db:"reference_id"`
	ReferenceType string    `json:"reference_type" db:"reference_type"`
	Metadata      string    `json:"metadata,omitempty" db:"metadata"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// TransactionRef identifies what a transaction was recorded for
type TransactionRef struct {
	ReferenceID   string `json:"reference_id"`
	ReferenceType string `json:"reference_type"`
}

// GrantResult is the outcome of an earn attempt. Granted is false when the
// rate limiter absorbed the grant; that is not an error.
type GrantResult struct {
	Granted    bool  `json:"granted"`
	NewBalance int64 `json:"new_balance"`
}

// SpendResult is the outcome of a successful spend
type SpendResult struct {
	NewBalance    int64     `json:"new_balance"`
	TransactionID uuid.UUID `json:"transaction_id"`
}

// ReconcileResult compares the cached balance with the transaction log.
// Consistent is false when best-effort writes left the two apart.
type ReconcileResult struct {
	UserID         uuid.UUID `json:"user_id"`
	Balance        int64     `json:"balance"`
	TransactionSum int64     `json:"transaction_sum"`
	Consistent     bool      `json:"consistent"`
}

// GrantRequest is the member-facing earn request payload. The payout
// amount is never client-supplied; it comes from the category's policy.
type GrantRequest struct {
	ActionKind    string `json:"action_kind" validate:"required"`
	ReferenceID   string `json:"reference_id"`
	ReferenceType string `json:"reference_type"`
}

// SpendRequest is the member-facing spend request payload
type SpendRequest struct {
	Amount        int64  `json:"amount" validate:"required"`
	ReferenceID   string `json:"reference_id"`
	ReferenceType string `json:"reference_type"`
}
