package recharge

import (
	"github.com/rs/zerolog/log"

	"github.com/campuscard/mealcard-api/internal/domain/card"
	"github.com/campuscard/mealcard-api/internal/domain/user"
	"github.com/campuscard/mealcard-api/internal/pkg/money"
)

// Store is the slice of the ledger store the recharge workflow depends on.
// ApproveRecharge and RejectRecharge perform their pending-state guard and
// all effects atomically.
type Store interface {
	CardByID(id string) (card.Card, error)
	InsertRecharge(req Request) Request
	PendingRecharges() []Request
	ApproveRecharge(requestID, reviewerID string) (Request, card.Card, error)
	RejectRecharge(requestID, reviewerID, notes string) (Request, error)
	UserByID(id string) (user.User, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Submit creates a PENDING recharge request for a card.
func (s *Service) Submit(cardID, requesterID string, amount money.Amount) (Request, error) {
	if amount <= 0 {
		return Request{}, ErrInvalidAmount
	}
	if _, err := s.store.CardByID(cardID); err != nil {
		return Request{}, ErrCardNotFound
	}

	req := s.store.InsertRecharge(Request{
		CardID:      cardID,
		Amount:      amount,
		RequestedBy: requesterID,
	})

	log.Info().
		Str("request_id", req.ID).
		Str("card_id", cardID).
		Str("amount", amount.String()).
		Msg("recharge requested")

	return req, nil
}

// Approve settles a pending request: marks it APPROVED and credits the card,
// with the matching RECHARGE/CREDIT transaction, as one unit. A request that
// is missing or already reviewed fails with ErrAlreadyProcessed.
func (s *Service) Approve(requestID, reviewerID string) (Request, card.Card, error) {
	req, c, err := s.store.ApproveRecharge(requestID, reviewerID)
	if err != nil {
		return Request{}, card.Card{}, err
	}

	log.Info().
		Str("request_id", req.ID).
		Str("reviewer_id", reviewerID).
		Str("amount", req.Amount.String()).
		Str("new_balance", c.Balance.String()).
		Msg("recharge approved")

	return req, c, nil
}

// Reject settles a pending request with reviewer notes. No balance effect.
func (s *Service) Reject(requestID, reviewerID, notes string) (Request, error) {
	req, err := s.store.RejectRecharge(requestID, reviewerID, notes)
	if err != nil {
		return Request{}, err
	}

	log.Info().
		Str("request_id", req.ID).
		Str("reviewer_id", reviewerID).
		Msg("recharge rejected")

	return req, nil
}

// ListPending returns the manager review queue, joined with the requesting
// student's name and card number.
func (s *Service) ListPending() []PendingRequest {
	pending := s.store.PendingRecharges()
	out := make([]PendingRequest, 0, len(pending))
	for _, req := range pending {
		joined := PendingRequest{Request: req, StudentName: "Unknown", CardNumber: "Unknown"}
		if c, err := s.store.CardByID(req.CardID); err == nil {
			joined.CardNumber = c.CardNumber
			if student, err := s.store.UserByID(c.StudentID); err == nil {
				joined.StudentName = student.Name
			}
		}
		out = append(out, joined)
	}
	return out
}
