// Package store is the in-memory ledger backing the campus card service:
// users, cards, the meal catalog, the transaction log, and recharge requests.
// A single mutex serializes every operation, so composite updates (balance
// mutation + transaction append, recharge check-and-set) are atomic with
// respect to concurrent API requests. All methods copy data out; internal
// slices are never exposed.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campuscard/mealcard-api/internal/domain/card"
	"github.com/campuscard/mealcard-api/internal/domain/menu"
	"github.com/campuscard/mealcard-api/internal/domain/recharge"
	"github.com/campuscard/mealcard-api/internal/domain/user"
	"github.com/campuscard/mealcard-api/internal/pkg/money"
)

// Store owns all collections. Constructed once at process start, optionally
// seeded, and passed to the domain services; no package-level state.
type Store struct {
	mu           sync.Mutex
	users        []user.User
	profiles     []user.StudentProfile
	cards        []card.Card
	meals        []menu.Meal
	transactions []card.Transaction // newest first
	requests     []recharge.Request // newest first
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// ---------- Users ----------

// AddUser inserts a user. Used by seeding and tests.
func (s *Store) AddUser(u user.User) user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == "" {
		u.ID = "user-" + uuid.New().String()
	}
	s.users = append(s.users, u)
	return u
}

// AddProfile inserts a student profile.
func (s *Store) AddProfile(p user.StudentProfile) user.StudentProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = "profile-" + uuid.New().String()
	}
	s.profiles = append(s.profiles, p)
	return p
}

// UserByID returns the user with the given id.
func (s *Store) UserByID(id string) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

// FindUser looks a user up by email or name (case-insensitive) within a role.
// Empty email/name criteria are ignored; at least one must be set.
func (s *Store) FindUser(email, name string, role user.Role) (user.User, error) {
	if email == "" && name == "" {
		return user.User{}, user.ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Role != role {
			continue
		}
		if email != "" && !strings.EqualFold(u.Email, email) {
			continue
		}
		if name != "" && !strings.EqualFold(u.Name, name) {
			continue
		}
		return u, nil
	}
	return user.User{}, user.ErrNotFound
}

// UsersByRole returns all users with the given role, in insertion order.
func (s *Store) UsersByRole(role user.Role) []user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]user.User, 0)
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

// AllUsers returns every user in insertion order.
func (s *Store) AllUsers() []user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]user.User, len(s.users))
	copy(out, s.users)
	return out
}

// ProfileByUserID returns the student profile for a user.
func (s *Store) ProfileByUserID(userID string) (user.StudentProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return user.StudentProfile{}, user.ErrNotFound
}

// ---------- Cards ----------

// AddCard inserts a card. Card numbers must be unique.
func (s *Store) AddCard(c card.Card) (card.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.cards {
		if strings.EqualFold(existing.CardNumber, c.CardNumber) {
			return card.Card{}, card.ErrDuplicateCardNumber
		}
	}
	if c.ID == "" {
		c.ID = "card-" + uuid.New().String()
	}
	if c.Status == "" {
		c.Status = card.StatusActive
	}
	s.cards = append(s.cards, c)
	return c, nil
}

// CardByID returns the card with the given id.
func (s *Store) CardByID(id string) (card.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cardByIDLocked(id)
}

func (s *Store) cardByIDLocked(id string) (card.Card, error) {
	for _, c := range s.cards {
		if c.ID == id {
			return c, nil
		}
	}
	return card.Card{}, card.ErrNotFound
}

// CardByNumber looks a card up by its printed number (case-insensitive).
func (s *Store) CardByNumber(number string) (card.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cards {
		if strings.EqualFold(c.CardNumber, number) {
			return c, nil
		}
	}
	return card.Card{}, card.ErrNotFound
}

// CardByStudent returns the card owned by a student.
func (s *Store) CardByStudent(studentID string) (card.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cards {
		if c.StudentID == studentID {
			return c, nil
		}
	}
	return card.Card{}, card.ErrNotFound
}

// AllCards returns a snapshot of every card.
func (s *Store) AllCards() []card.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]card.Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// ---------- Ledger ----------

// Credit raises a card balance and appends the matching transaction record
// in one critical section. The passed transaction's Amount/Direction are set
// from the credit; ID and CreatedAt are assigned here.
func (s *Store) Credit(cardID string, amount money.Amount, txn card.Transaction) (card.Card, card.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.cardIndexLocked(cardID)
	if idx < 0 {
		return card.Card{}, card.Transaction{}, card.ErrNotFound
	}
	next := s.cards[idx].Balance + amount
	if next < 0 {
		return card.Card{}, card.Transaction{}, card.ErrInvalidState
	}

	s.cards[idx].Balance = next
	txn.CardID = cardID
	txn.Amount = amount
	txn.Direction = card.DirectionCredit
	txn = s.appendTransactionLocked(txn)
	return s.cards[idx], txn, nil
}

// Debit lowers a card balance and appends the matching transaction record in
// one critical section. Check order: existence, then blocked status, then
// funds. Nothing is written when any check fails.
func (s *Store) Debit(cardID string, amount money.Amount, txn card.Transaction) (card.Card, card.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.cardIndexLocked(cardID)
	if idx < 0 {
		return card.Card{}, card.Transaction{}, card.ErrNotFound
	}
	if s.cards[idx].Status == card.StatusBlocked {
		return card.Card{}, card.Transaction{}, card.ErrCardBlocked
	}
	if s.cards[idx].Balance < amount {
		return card.Card{}, card.Transaction{}, card.ErrInsufficientFunds
	}

	s.cards[idx].Balance -= amount
	txn.CardID = cardID
	txn.Amount = amount
	txn.Direction = card.DirectionDebit
	txn = s.appendTransactionLocked(txn)
	return s.cards[idx], txn, nil
}

func (s *Store) cardIndexLocked(cardID string) int {
	for i := range s.cards {
		if s.cards[i].ID == cardID {
			return i
		}
	}
	return -1
}

func (s *Store) appendTransactionLocked(txn card.Transaction) card.Transaction {
	if txn.ID == "" {
		txn.ID = "txn-" + uuid.New().String()
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = time.Now()
	}
	// Prepend: the log is kept newest first for display.
	s.transactions = append([]card.Transaction{txn}, s.transactions...)
	return txn
}

// AddTransaction appends a historical transaction. Used by seeding and tests.
func (s *Store) AddTransaction(txn card.Transaction) card.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendTransactionLocked(txn)
}

// TransactionsByCard returns a card's transactions, newest first.
func (s *Store) TransactionsByCard(cardID string) []card.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]card.Transaction, 0)
	for _, t := range s.transactions {
		if t.CardID == cardID {
			out = append(out, t)
		}
	}
	return out
}

// AllTransactions returns the full log, newest first.
func (s *Store) AllTransactions() []card.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]card.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// ---------- Meals ----------

// AddMeal inserts a catalog item.
func (s *Store) AddMeal(m menu.Meal) menu.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == "" {
		m.ID = "meal-" + uuid.New().String()
	}
	s.meals = append(s.meals, m)
	return m
}

// ActiveMeals returns catalog items currently on sale.
func (s *Store) ActiveMeals() []menu.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]menu.Meal, 0)
	for _, m := range s.meals {
		if m.IsActive {
			out = append(out, m)
		}
	}
	return out
}

// MealByID returns a catalog item by id.
func (s *Store) MealByID(id string) (menu.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.meals {
		if m.ID == id {
			return m, nil
		}
	}
	return menu.Meal{}, menu.ErrNotFound
}

// ---------- Recharge requests ----------

// InsertRecharge creates a request in PENDING state.
func (s *Store) InsertRecharge(req recharge.Request) recharge.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if req.ID == "" {
		req.ID = "req-" + uuid.New().String()
	}
	if req.RequestedAt.IsZero() {
		req.RequestedAt = time.Now()
	}
	req.Status = recharge.StatusPending
	s.requests = append([]recharge.Request{req}, s.requests...)
	return req
}

// RechargeByID returns a request by id.
func (s *Store) RechargeByID(id string) (recharge.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return recharge.Request{}, recharge.ErrAlreadyProcessed
}

// PendingRecharges returns all requests still awaiting review, newest first.
func (s *Store) PendingRecharges() []recharge.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]recharge.Request, 0)
	for _, r := range s.requests {
		if r.Status == recharge.StatusPending {
			out = append(out, r)
		}
	}
	return out
}

// ApproveRecharge performs the atomic check-and-set for approval: the PENDING
// guard, the request update, the balance credit, and the transaction append
// all happen inside one critical section. A request that is missing or no
// longer pending fails with ErrAlreadyProcessed and changes nothing.
func (s *Store) ApproveRecharge(requestID, reviewerID string) (recharge.Request, card.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ri := -1
	for i := range s.requests {
		if s.requests[i].ID == requestID {
			ri = i
			break
		}
	}
	if ri < 0 || s.requests[ri].Status != recharge.StatusPending {
		return recharge.Request{}, card.Card{}, recharge.ErrAlreadyProcessed
	}

	ci := s.cardIndexLocked(s.requests[ri].CardID)
	if ci < 0 {
		return recharge.Request{}, card.Card{}, recharge.ErrCardNotFound
	}

	now := time.Now()
	s.requests[ri].Status = recharge.StatusApproved
	s.requests[ri].ReviewedBy = reviewerID
	s.requests[ri].ReviewedAt = &now

	s.cards[ci].Balance += s.requests[ri].Amount
	s.appendTransactionLocked(card.Transaction{
		CardID:    s.cards[ci].ID,
		Type:      card.TransactionTypeRecharge,
		Amount:    s.requests[ri].Amount,
		Direction: card.DirectionCredit,
		CreatedAt: now,
	})

	return s.requests[ri], s.cards[ci], nil
}

// RejectRecharge marks a pending request rejected with reviewer notes.
// Same pending guard as approval; the balance is never touched.
func (s *Store) RejectRecharge(requestID, reviewerID, notes string) (recharge.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID != requestID {
			continue
		}
		if s.requests[i].Status != recharge.StatusPending {
			return recharge.Request{}, recharge.ErrAlreadyProcessed
		}
		now := time.Now()
		s.requests[i].Status = recharge.StatusRejected
		s.requests[i].ReviewedBy = reviewerID
		s.requests[i].ReviewedAt = &now
		s.requests[i].Notes = notes
		return s.requests[i], nil
	}
	return recharge.Request{}, recharge.ErrAlreadyProcessed
}
