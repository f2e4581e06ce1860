package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/campuscard/mealcard-api/internal/domain/card"
	"github.com/campuscard/mealcard-api/internal/domain/user"
	"github.com/campuscard/mealcard-api/internal/pkg/money"
	"github.com/campuscard/mealcard-api/internal/store"
)

// Overview is the admin statistics snapshot. Computed on demand from the
// ledger; nothing is cached.
type Overview struct {
	TotalStudents           int            `json:"total_students"`
	ActiveCards             int            `json:"active_cards"`
	TotalBalanceFloat       money.Amount   `json:"total_balance_float"`
	TodaysTransactionsCount int            `json:"todays_transactions_count"`
	TodaysTransactionsValue money.Amount   `json:"todays_transactions_value"`
	WeeklyTxns              []WeekdayCount `json:"weekly_txns"`
	TopMeals                []MealValue    `json:"top_meals"`
}

// WeekdayCount is one weekly-histogram bucket.
type WeekdayCount struct {
	Name     string `json:"name"`
	Recharge int    `json:"recharge"`
	Purchase int    `json:"purchase"`
}

// MealValue is one top-meals row.
type MealValue struct {
	Name  string       `json:"name"`
	Value money.Amount `json:"value"`
}

// Service derives read-side projections from the ledger store.
type Service struct {
	store *store.Store
}

func NewService(store *store.Store) *Service {
	return &Service{store: store}
}

// Overview computes the full admin snapshot.
func (s *Service) Overview() Overview {
	out := Overview{
		TotalStudents: len(s.store.UsersByRole(user.RoleStudent)),
	}

	for _, c := range s.store.AllCards() {
		if c.Status == card.StatusActive {
			out.ActiveCards++
		}
		out.TotalBalanceFloat += c.Balance
	}

	txns := s.store.AllTransactions()

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, t := range txns {
		if !t.CreatedAt.Before(midnight) {
			out.TodaysTransactionsCount++
			out.TodaysTransactionsValue += t.Amount
		}
	}

	out.WeeklyTxns = weeklyHistogram(txns)
	out.TopMeals = topMeals(txns, 5)
	return out
}

// weeklyHistogram groups all transactions by weekday name, counting
// recharges and purchases per day. Buckets appear in first-seen order.
func weeklyHistogram(txns []card.Transaction) []WeekdayCount {
	index := map[string]int{}
	out := make([]WeekdayCount, 0, 7)
	for _, t := range txns {
		day := t.CreatedAt.Weekday().String()[:3]
		i, ok := index[day]
		if !ok {
			i = len(out)
			index[day] = i
			out = append(out, WeekdayCount{Name: day})
		}
		switch t.Type {
		case card.TransactionTypeRecharge:
			out[i].Recharge++
		case card.TransactionTypePurchase:
			out[i].Purchase++
		}
	}
	return out
}

// topMeals ranks meals by cumulative purchase value derived from the
// transaction descriptions. A combined cart's whole amount counts toward the
// first meal of its summary. Ties keep first-seen order.
func topMeals(txns []card.Transaction, n int) []MealValue {
	index := map[string]int{}
	out := make([]MealValue, 0)
	for _, t := range txns {
		if t.Type != card.TransactionTypePurchase {
			continue
		}
		name := t.Description
		if i := strings.Index(name, " (x"); i >= 0 {
			name = name[:i]
		}
		if name == "" {
			name = "Unknown"
		}
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, MealValue{Name: name})
		}
		out[i].Value += t.Amount
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Value > out[b].Value
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
