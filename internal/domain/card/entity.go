package card

import (
	"time"

	"github.com/campuscard/mealcard-api/internal/pkg/money"
)

// Status of a meal card.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusBlocked Status = "BLOCKED"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TransactionTypeRecharge   TransactionType = "RECHARGE"
	TransactionTypePurchase   TransactionType = "PURCHASE"
	TransactionTypeRefund     TransactionType = "REFUND"
	TransactionTypeAdjustment TransactionType = "ADJUSTMENT"
)

// Direction tells whether a transaction credited or debited the card.
type Direction string

const (
	DirectionCredit Direction = "CREDIT"
	DirectionDebit  Direction = "DEBIT"
)

// Card is a stored-value meal card tied to one student.
type Card struct {
	ID         string       `json:"id"`
	StudentID  string       `json:"student_id"`
	CardNumber string       `json:"card_number"`
	Balance    money.Amount `json:"balance"`
	Status     Status       `json:"status"`
}

// Transaction is an immutable ledger row. Amount is always positive;
// Direction says which way the balance moved.
type Transaction struct {
	ID          string          `json:"id"`
	CardID      string          `json:"card_id"`
	Type        TransactionType `json:"type"`
	Amount      money.Amount    `json:"amount"`
	Direction   Direction       `json:"direction"`
	CreatedAt   time.Time       `json:"created_at"`
	CashierID   string          `json:"cashier_id,omitempty"`
	CashierName string          `json:"cashier_name,omitempty"`
	Description string          `json:"description,omitempty"`
}

// CartLine is one row of a point-of-sale cart. Ephemeral, never persisted.
type CartLine struct {
	MealID   string `json:"meal_id"`
	Quantity int    `json:"quantity"`
}
