package card

import (
	"github.com/campuscard/mealcard-api/internal/domain/user"
	"github.com/campuscard/mealcard-api/internal/pkg/money"
)

// ChargeRequest is the point-of-sale payload.
type ChargeRequest struct {
	CardID string     `json:"card_id" validate:"required"`
	Lines  []LineItem `json:"lines"`
}

// LineItem is one cart row in a charge request.
type LineItem struct {
	MealID   string `json:"meal_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// ChargeResponse returns the debited card state.
type ChargeResponse struct {
	NewBalance  money.Amount `json:"new_balance"`
	Transaction Transaction  `json:"transaction"`
}

// DashboardResponse is the student's card view.
type DashboardResponse struct {
	Card         Card          `json:"card"`
	Transactions []Transaction `json:"transactions"`
}

// LookupResponse resolves a card number for the cashier.
type LookupResponse struct {
	User user.Student `json:"user"`
	Card Card         `json:"card"`
}
