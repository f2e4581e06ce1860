package recharge_test

import (
	"errors"
	"testing"

	"github.com/campuscard/mealcard-api/internal/domain/card"
	"github.com/campuscard/mealcard-api/internal/domain/recharge"
	"github.com/campuscard/mealcard-api/internal/domain/user"
	"github.com/campuscard/mealcard-api/internal/pkg/money"
	"github.com/campuscard/mealcard-api/internal/store"
)

func newFixture(t *testing.T, balance int64) (*store.Store, *recharge.Service, card.Card) {
	t.Helper()
	s := store.New()
	s.AddUser(user.User{ID: "user-student-1", Name: "Surya", Email: "surya@campus.edu", Role: user.RoleStudent})
	c, err := s.AddCard(card.Card{
		StudentID:  "user-student-1",
		CardNumber: "C1001",
		Balance:    money.FromMinor(balance),
		Status:     card.StatusActive,
	})
	if err != nil {
		t.Fatalf("add card failed: %v", err)
	}
	return s, recharge.NewService(s), c
}

func TestSubmitInvalidAmount(t *testing.T) {
	_, svc, c := newFixture(t, 0)

	if _, err := svc.Submit(c.ID, "user-student-1", 0); !errors.Is(err, recharge.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for zero, got %v", err)
	}
	if _, err := svc.Submit(c.ID, "user-student-1", money.FromMinor(-100)); !errors.Is(err, recharge.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for negative, got %v", err)
	}
}

func TestSubmitUnknownCard(t *testing.T) {
	_, svc, _ := newFixture(t, 0)
	if _, err := svc.Submit("card-missing", "user-student-1", money.FromMinor(5000)); !errors.Is(err, recharge.ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

func TestSubmitCreatesPending(t *testing.T) {
	_, svc, c := newFixture(t, 0)

	req, err := svc.Submit(c.ID, "user-student-1", money.FromMinor(5000))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if req.Status != recharge.StatusPending {
		t.Fatalf("expected PENDING, got %s", req.Status)
	}
	if req.ID == "" || req.RequestedAt.IsZero() {
		t.Fatalf("request not fully assigned: %+v", req)
	}
}

func TestApproveCreditsBalanceOnce(t *testing.T) {
	s, svc, c := newFixture(t, 10000)

	req, err := svc.Submit(c.ID, "user-student-1", money.FromMinor(5000))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	approved, updated, err := svc.Approve(req.ID, "user-manager")
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != recharge.StatusApproved || approved.ReviewedBy != "user-manager" || approved.ReviewedAt == nil {
		t.Fatalf("approval not recorded: %+v", approved)
	}
	if updated.Balance.Minor() != 15000 {
		t.Fatalf("expected balance 15000, got %d", updated.Balance.Minor())
	}

	txns := s.TransactionsByCard(c.ID)
	if len(txns) != 1 {
		t.Fatalf("expected exactly one transaction, got %d", len(txns))
	}
	if txns[0].Type != card.TransactionTypeRecharge || txns[0].Direction != card.DirectionCredit || txns[0].Amount.Minor() != 5000 {
		t.Fatalf("credit transaction mismatch: %+v", txns[0])
	}

	// Second settlement attempt is stale.
	if _, _, err := svc.Approve(req.ID, "user-manager"); !errors.Is(err, recharge.ErrAlreadyProcessed) {
		t.Fatalf("expected ErrAlreadyProcessed, got %v", err)
	}
	got, _ := s.CardByID(c.ID)
	if got.Balance.Minor() != 15000 {
		t.Fatalf("balance changed by stale approve: %d", got.Balance.Minor())
	}
}

func TestApproveUnknownRequest(t *testing.T) {
	_, svc, _ := newFixture(t, 0)
	if _, _, err := svc.Approve("req-missing", "user-manager"); !errors.Is(err, recharge.ErrAlreadyProcessed) {
		t.Fatalf("expected ErrAlreadyProcessed, got %v", err)
	}
}

func TestRejectStoresNotesAndBlocksApprove(t *testing.T) {
	s, svc, c := newFixture(t, 10000)

	req, err := svc.Submit(c.ID, "user-student-1", money.FromMinor(5000))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	rejected, err := svc.Reject(req.ID, "user-manager", "insufficient proof")
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if rejected.Status != recharge.StatusRejected || rejected.Notes != "insufficient proof" {
		t.Fatalf("rejection not recorded: %+v", rejected)
	}

	got, _ := s.CardByID(c.ID)
	if got.Balance.Minor() != 10000 {
		t.Fatalf("reject touched the balance: %d", got.Balance.Minor())
	}
	if n := len(s.TransactionsByCard(c.ID)); n != 0 {
		t.Fatalf("reject created a transaction: %d", n)
	}

	if _, _, err := svc.Approve(req.ID, "user-manager"); !errors.Is(err, recharge.ErrAlreadyProcessed) {
		t.Fatalf("expected ErrAlreadyProcessed after reject, got %v", err)
	}
}

func TestListPendingJoinsDisplayFields(t *testing.T) {
	_, svc, c := newFixture(t, 0)

	first, _ := svc.Submit(c.ID, "user-student-1", money.FromMinor(5000))
	second, _ := svc.Submit(c.ID, "user-student-1", money.FromMinor(2500))

	pending := svc.ListPending()
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(pending))
	}
	// Newest first.
	if pending[0].ID != second.ID || pending[1].ID != first.ID {
		t.Fatalf("pending not newest first: %+v", pending)
	}
	if pending[0].StudentName != "Surya" || pending[0].CardNumber != "C1001" {
		t.Fatalf("display fields not joined: %+v", pending[0])
	}

	if _, err := svc.Reject(first.ID, "user-manager", "duplicate"); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if n := len(svc.ListPending()); n != 1 {
		t.Fatalf("expected 1 pending after reject, got %d", n)
	}
}
