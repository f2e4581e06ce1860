package card

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/campuscard/mealcard-api/internal/domain/menu"
	"github.com/campuscard/mealcard-api/internal/domain/user"
	"github.com/campuscard/mealcard-api/internal/pkg/money"
)

// Store is the slice of the ledger store the card service depends on.
type Store interface {
	CardByID(id string) (Card, error)
	CardByNumber(number string) (Card, error)
	CardByStudent(studentID string) (Card, error)
	Debit(cardID string, amount money.Amount, txn Transaction) (Card, Transaction, error)
	TransactionsByCard(cardID string) []Transaction
	MealByID(id string) (menu.Meal, error)
	UserByID(id string) (user.User, error)
	ProfileByUserID(userID string) (user.StudentProfile, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Dashboard returns a student's card with its transaction history, newest
// first, with cashier display names resolved.
func (s *Service) Dashboard(studentID string) (Card, []Transaction, error) {
	c, err := s.store.CardByStudent(studentID)
	if err != nil {
		return Card{}, nil, err
	}

	txns := s.store.TransactionsByCard(c.ID)
	for i, t := range txns {
		if t.CashierID == "" {
			continue
		}
		if cashier, err := s.store.UserByID(t.CashierID); err == nil {
			txns[i].CashierName = cashier.Name
		} else {
			txns[i].CashierName = "Unknown Cashier"
		}
	}
	return c, txns, nil
}

// FindByCardNumber resolves a card number to the student and their card.
// Used at the point of sale before charging.
func (s *Service) FindByCardNumber(cardNumber string) (user.Student, Card, error) {
	c, err := s.store.CardByNumber(cardNumber)
	if err != nil {
		return user.Student{}, Card{}, err
	}

	u, err := s.store.UserByID(c.StudentID)
	if err != nil {
		return user.Student{}, Card{}, ErrNotFound
	}
	profile, err := s.store.ProfileByUserID(u.ID)
	if err != nil {
		return user.Student{}, Card{}, ErrNotFound
	}

	return user.Student{User: u, Profile: profile}, c, nil
}

// Charge applies a point-of-sale cart against a card as one all-or-nothing
// operation. An empty cart and non-positive quantities are rejected up front;
// the card checks (existence, blocked status, funds) and the paired
// balance-debit + transaction-append happen atomically in the store.
func (s *Service) Charge(cardID string, lines []CartLine, cashierID string) (Card, Transaction, error) {
	if len(lines) == 0 {
		return Card{}, Transaction{}, ErrInvalidAmount
	}

	var total money.Amount
	summary := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return Card{}, Transaction{}, ErrInvalidAmount
		}
		meal, err := s.store.MealByID(line.MealID)
		if err != nil || !meal.IsActive {
			return Card{}, Transaction{}, fmt.Errorf("%w: %s", menu.ErrNotFound, line.MealID)
		}
		total += meal.Price * money.Amount(line.Quantity)
		summary = append(summary, fmt.Sprintf("%s (x%d)", meal.Name, line.Quantity))
	}

	updated, txn, err := s.store.Debit(cardID, total, Transaction{
		Type:        TransactionTypePurchase,
		CashierID:   cashierID,
		Description: strings.Join(summary, ", "),
	})
	if err != nil {
		return Card{}, Transaction{}, err
	}

	log.Info().
		Str("card_id", cardID).
		Str("cashier_id", cashierID).
		Str("amount", total.String()).
		Str("new_balance", updated.Balance.String()).
		Msg("purchase applied")

	return updated, txn, nil
}

// IsExpected reports whether err belongs to the purchase error taxonomy,
// as opposed to an internal failure.
func IsExpected(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, menu.ErrNotFound) ||
		errors.Is(err, ErrCardBlocked) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidState)
}
