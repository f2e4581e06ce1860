package card

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campuscard/mealcard-api/internal/domain/menu"
	"github.com/campuscard/mealcard-api/internal/middleware"
	"github.com/campuscard/mealcard-api/internal/pkg/response"
	"github.com/campuscard/mealcard-api/internal/pkg/validator"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Dashboard returns the calling student's card and transaction history.
// GET /api/v1/students/me/dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, "unauthorized")
		return
	}

	c, txns, err := h.svc.Dashboard(userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "no card for this student")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, DashboardResponse{Card: c, Transactions: txns})
}

// Lookup resolves a card number to its student for the cashier.
// GET /api/v1/cards/lookup?card_number=C1001
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	cardNumber := r.URL.Query().Get("card_number")
	if cardNumber == "" {
		response.BadRequest(w, "card_number is required")
		return
	}
	if err := validator.ValidateVar(cardNumber, "card_number"); err != nil {
		response.BadRequest(w, "invalid card number format")
		return
	}

	student, c, err := h.svc.FindByCardNumber(cardNumber)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "card not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, LookupResponse{User: student, Card: c})
}

// Charge applies a cart against a card.
// POST /api/v1/purchases
func (h *Handler) Charge(w http.ResponseWriter, r *http.Request) {
	cashierID := middleware.GetUserID(r.Context())
	if cashierID == "" {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var req ChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid JSON body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ValidationError(w, details)
		return
	}

	lines := make([]CartLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, CartLine{MealID: l.MealID, Quantity: l.Quantity})
	}

	updated, txn, err := h.svc.Charge(req.CardID, lines, cashierID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAmount):
			response.BadRequest(w, "cart must contain at least one line with a positive quantity")
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "card not found")
		case errors.Is(err, menu.ErrNotFound):
			response.NotFound(w, "meal not found or not on sale")
		case errors.Is(err, ErrCardBlocked):
			response.Conflict(w, "card is blocked")
		case errors.Is(err, ErrInsufficientFunds):
			response.Conflict(w, "insufficient balance")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, ChargeResponse{NewBalance: updated.Balance, Transaction: txn})
}
