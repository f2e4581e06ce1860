package card_test

import (
	"errors"
	"testing"

	"github.com/campuscard/mealcard-api/internal/domain/card"
	"github.com/campuscard/mealcard-api/internal/domain/menu"
	"github.com/campuscard/mealcard-api/internal/domain/user"
	"github.com/campuscard/mealcard-api/internal/pkg/money"
	"github.com/campuscard/mealcard-api/internal/store"
)

type fixture struct {
	store *store.Store
	svc   *card.Service
	card  card.Card
}

func newFixture(t *testing.T, balance int64, status card.Status) *fixture {
	t.Helper()
	s := store.New()

	s.AddUser(user.User{ID: "user-student-1", Name: "Surya", Email: "surya@campus.edu", Role: user.RoleStudent})
	s.AddUser(user.User{ID: "user-cashier", Name: "Cashier User", Email: "cashier@campus.edu", Role: user.RoleCashier})
	s.AddProfile(user.StudentProfile{UserID: "user-student-1", EnrollmentNo: "ENR1001", Department: "Computer Science", Year: 1})

	c, err := s.AddCard(card.Card{
		StudentID:  "user-student-1",
		CardNumber: "C1001",
		Balance:    money.FromMinor(balance),
		Status:     status,
	})
	if err != nil {
		t.Fatalf("add card failed: %v", err)
	}

	s.AddMeal(menu.Meal{ID: "meal-burger", Name: "Veggie Burger", Price: money.FromMinor(2000), Category: "VEG", IsActive: true})
	s.AddMeal(menu.Meal{ID: "meal-coffee", Name: "Iced Coffee", Price: money.FromMinor(2500), Category: "BEVERAGES", IsActive: true})
	s.AddMeal(menu.Meal{ID: "meal-dosa", Name: "Masala Dosa", Price: money.FromMinor(4500), Category: "VEG", IsActive: false})

	return &fixture{store: s, svc: card.NewService(s), card: c}
}

func TestChargeSuccess(t *testing.T) {
	f := newFixture(t, 10000, card.StatusActive)

	updated, txn, err := f.svc.Charge(f.card.ID, []card.CartLine{
		{MealID: "meal-burger", Quantity: 2},
		{MealID: "meal-coffee", Quantity: 1},
	}, "user-cashier")
	if err != nil {
		t.Fatalf("charge failed: %v", err)
	}

	if updated.Balance.Minor() != 10000-6500 {
		t.Fatalf("expected balance 3500, got %d", updated.Balance.Minor())
	}
	if txn.Type != card.TransactionTypePurchase || txn.Direction != card.DirectionDebit {
		t.Fatalf("unexpected transaction kind: %+v", txn)
	}
	if txn.Amount.Minor() != 6500 {
		t.Fatalf("expected amount 6500, got %d", txn.Amount.Minor())
	}
	if txn.Description != "Veggie Burger (x2), Iced Coffee (x1)" {
		t.Fatalf("unexpected description: %q", txn.Description)
	}
	if txn.CashierID != "user-cashier" {
		t.Fatalf("cashier not recorded: %q", txn.CashierID)
	}
}

func TestChargeInsufficientFunds(t *testing.T) {
	f := newFixture(t, 4000, card.StatusActive)

	// 20.00 + 25.00 = 45.00 against a 40.00 balance.
	_, _, err := f.svc.Charge(f.card.ID, []card.CartLine{
		{MealID: "meal-burger", Quantity: 1},
		{MealID: "meal-coffee", Quantity: 1},
	}, "user-cashier")
	if !errors.Is(err, card.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	got, _ := f.store.CardByID(f.card.ID)
	if got.Balance.Minor() != 4000 {
		t.Fatalf("balance changed after failed charge: %d", got.Balance.Minor())
	}
	if n := len(f.store.TransactionsByCard(f.card.ID)); n != 0 {
		t.Fatalf("expected no transactions, got %d", n)
	}
}

func TestChargeBlockedCard(t *testing.T) {
	f := newFixture(t, 10000, card.StatusBlocked)

	_, _, err := f.svc.Charge(f.card.ID, []card.CartLine{{MealID: "meal-burger", Quantity: 1}}, "user-cashier")
	if !errors.Is(err, card.ErrCardBlocked) {
		t.Fatalf("expected ErrCardBlocked, got %v", err)
	}
	if n := len(f.store.TransactionsByCard(f.card.ID)); n != 0 {
		t.Fatalf("expected no transactions for blocked card, got %d", n)
	}
}

func TestChargeMissingCard(t *testing.T) {
	f := newFixture(t, 10000, card.StatusActive)

	_, _, err := f.svc.Charge("card-missing", []card.CartLine{{MealID: "meal-burger", Quantity: 1}}, "user-cashier")
	if !errors.Is(err, card.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestChargeEmptyCart(t *testing.T) {
	f := newFixture(t, 10000, card.StatusActive)

	_, _, err := f.svc.Charge(f.card.ID, nil, "user-cashier")
	if !errors.Is(err, card.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for empty cart, got %v", err)
	}
	got, _ := f.store.CardByID(f.card.ID)
	if got.Balance.Minor() != 10000 {
		t.Fatalf("balance changed by empty cart: %d", got.Balance.Minor())
	}
}

func TestChargeNonPositiveQuantity(t *testing.T) {
	f := newFixture(t, 10000, card.StatusActive)

	_, _, err := f.svc.Charge(f.card.ID, []card.CartLine{{MealID: "meal-burger", Quantity: 0}}, "user-cashier")
	if !errors.Is(err, card.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestChargeUnknownOrInactiveMeal(t *testing.T) {
	f := newFixture(t, 10000, card.StatusActive)

	_, _, err := f.svc.Charge(f.card.ID, []card.CartLine{{MealID: "meal-unknown", Quantity: 1}}, "user-cashier")
	if !errors.Is(err, menu.ErrNotFound) {
		t.Fatalf("expected menu.ErrNotFound for unknown meal, got %v", err)
	}

	_, _, err = f.svc.Charge(f.card.ID, []card.CartLine{{MealID: "meal-dosa", Quantity: 1}}, "user-cashier")
	if !errors.Is(err, menu.ErrNotFound) {
		t.Fatalf("expected menu.ErrNotFound for inactive meal, got %v", err)
	}
}

func TestDashboardResolvesCashierNames(t *testing.T) {
	f := newFixture(t, 10000, card.StatusActive)

	if _, _, err := f.svc.Charge(f.card.ID, []card.CartLine{{MealID: "meal-burger", Quantity: 1}}, "user-cashier"); err != nil {
		t.Fatalf("charge failed: %v", err)
	}

	c, txns, err := f.svc.Dashboard("user-student-1")
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if c.ID != f.card.ID {
		t.Fatalf("wrong card: %s", c.ID)
	}
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	if txns[0].CashierName != "Cashier User" {
		t.Fatalf("cashier name not resolved: %q", txns[0].CashierName)
	}
}

func TestDashboardNoCard(t *testing.T) {
	f := newFixture(t, 10000, card.StatusActive)
	if _, _, err := f.svc.Dashboard("user-without-card"); !errors.Is(err, card.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindByCardNumber(t *testing.T) {
	f := newFixture(t, 10000, card.StatusActive)

	student, c, err := f.svc.FindByCardNumber("c1001")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if student.Name != "Surya" || student.Profile.EnrollmentNo != "ENR1001" {
		t.Fatalf("unexpected student: %+v", student)
	}
	if c.ID != f.card.ID {
		t.Fatalf("wrong card: %s", c.ID)
	}

	if _, _, err := f.svc.FindByCardNumber("C9999"); !errors.Is(err, card.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
