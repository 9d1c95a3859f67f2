package handler

import (
	"errors"
	"net/http"

	"github.com/fanloop/fanloop/internal/pkg/models"
	"github.com/fanloop/fanloop/internal/utils"
	"github.com/fanloop/fanloop/services/ledger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// LedgerHandler handles HTTP requests for coin economy operations
type LedgerHandler struct {
	ledgerUC ledger.LedgerUC
	cfg      *models.Config
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerUC ledger.LedgerUC, cfg *models.Config) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC: ledgerUC,
		cfg:      cfg,
	}
}

// GetBalance returns the authenticated member's coin balance
func (h *LedgerHandler) GetBalance(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	balance, err := h.ledgerUC.GetBalance(c.Request().Context(), userID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to get balance")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Balance retrieved", map[string]interface{}{
		"user_id": userID,
		"balance": balance,
	})
}

// Grant credits coins for a member action. The payout amount comes from
// the category's server-side policy, never from the request, so a member
// can only ever trigger the configured earn rates. A rate-limited grant is
// a 200 with granted=false: the earn path never surfaces an error for it.
func (h *LedgerHandler) Grant(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.GrantRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.ActionKind == "" {
		return utils.BadRequestResponse(c, "action_kind is required")
	}

	policy, ok := h.cfg.Ledger.Policies[req.ActionKind]
	if !ok || policy.Amount <= 0 {
		return utils.BadRequestResponse(c, "Unknown earn action")
	}

	result, err := h.ledgerUC.Grant(c.Request().Context(), userID, req.ActionKind, policy.Amount, models.TransactionRef{
		ReferenceID:   req.ReferenceID,
		ReferenceType: req.ReferenceType,
	})
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to process grant")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Grant processed", result)
}

// Spend debits coins from the authenticated member
func (h *LedgerHandler) Spend(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.SpendRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Amount <= 0 {
		return utils.BadRequestResponse(c, "A positive amount is required")
	}

	result, err := h.ledgerUC.Spend(c.Request().Context(), userID, req.Amount, models.TransactionRef{
		ReferenceID:   req.ReferenceID,
		ReferenceType: req.ReferenceType,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrInsufficientBalance) {
			return utils.UnprocessableEntityResponse(c, "Insufficient balance")
		}
		return utils.InternalServerErrorResponse(c, "Failed to process spend")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Spend processed", result)
}

// ClaimReward redeems a catalog reward for the authenticated member
func (h *LedgerHandler) ClaimReward(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ClaimRewardRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.RewardID == uuid.Nil {
		return utils.BadRequestResponse(c, "reward_id is required")
	}

	claim, err := h.ledgerUC.ClaimReward(c.Request().Context(), userID, req.RewardID)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrRewardNotFound):
			return utils.NotFoundResponse(c, "Reward not found")
		case errors.Is(err, ledger.ErrInsufficientBalance):
			return utils.UnprocessableEntityResponse(c, "Insufficient balance")
		case errors.Is(err, ledger.ErrRewardOutOfStock):
			return utils.ConflictResponse(c, "Reward out of stock")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to claim reward")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Reward claimed", claim)
}

// Reconcile reports whether a member's cached balance matches the sum of
// their recorded transactions. Operator tooling for the best-effort write
// path.
func (h *LedgerHandler) Reconcile(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	result, err := h.ledgerUC.Reconcile(c.Request().Context(), userID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to reconcile balance")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reconciliation computed", result)
}
