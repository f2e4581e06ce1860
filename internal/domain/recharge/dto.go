package recharge

import "github.com/campuscard/mealcard-api/internal/pkg/money"

// SubmitRequest is the student's recharge payload. Amount is a decimal
// string, e.g. "50.00".
type SubmitRequest struct {
	CardID string       `json:"card_id" validate:"required"`
	Amount money.Amount `json:"amount"`
}

// RejectRequest carries the manager's review notes.
type RejectRequest struct {
	Notes string `json:"notes" validate:"required,max=500"`
}
