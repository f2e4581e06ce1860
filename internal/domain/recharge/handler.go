package recharge

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

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

// Submit creates a recharge request for review.
// POST /api/v1/recharges
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid JSON body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ValidationError(w, details)
		return
	}

	created, err := h.svc.Submit(req.CardID, userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAmount):
			response.BadRequest(w, "amount must be greater than zero")
		case errors.Is(err, ErrCardNotFound):
			response.NotFound(w, "card not found")
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, created)
}

// ListPending returns the manager review queue.
// GET /api/v1/recharges/pending
func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.svc.ListPending())
}

// Approve settles a pending request and credits the card.
// POST /api/v1/recharges/{id}/approve
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	reviewerID := middleware.GetUserID(r.Context())
	requestID := chi.URLParam(r, "id")

	req, c, err := h.svc.Approve(requestID, reviewerID)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyProcessed):
			response.Conflict(w, "request already processed")
		case errors.Is(err, ErrCardNotFound):
			response.NotFound(w, "card not found")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, map[string]interface{}{
		"request":     req,
		"new_balance": c.Balance,
	})
}

// Reject settles a pending request with notes.
// POST /api/v1/recharges/{id}/reject
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	reviewerID := middleware.GetUserID(r.Context())
	requestID := chi.URLParam(r, "id")

	var body RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "invalid JSON body")
		return
	}
	if details := validator.Validate(body); details != nil {
		response.ValidationError(w, details)
		return
	}

	req, err := h.svc.Reject(requestID, reviewerID, body.Notes)
	if err != nil {
		if errors.Is(err, ErrAlreadyProcessed) {
			response.Conflict(w, "request already processed")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, req)
}

// Routes wires the recharge endpoints. Submission is student-only;
// the review queue and settlement are manager-only.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)
	r.With(middleware.RequireStudent()).Post("/", h.Submit)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireManager())
		r.Get("/pending", h.ListPending)
		r.Post("/{id}/approve", h.Approve)
		r.Post("/{id}/reject", h.Reject)
	})
	return r
}
