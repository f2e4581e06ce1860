package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/campuscard/mealcard-api/internal/domain/card"
	"github.com/campuscard/mealcard-api/internal/domain/menu"
	"github.com/campuscard/mealcard-api/internal/domain/recharge"
	"github.com/campuscard/mealcard-api/internal/domain/user"
	"github.com/campuscard/mealcard-api/internal/pkg/money"
	"github.com/campuscard/mealcard-api/internal/pkg/password"
)

// Seed loads the demo dataset: three staff accounts, six students with
// profiles and cards, the meal catalog, a few historical transactions and two
// recharge requests. Demo passwords are "<role>@" (e.g. "student@").
func (s *Store) Seed() error {
	hashes := map[user.Role]string{}
	for _, r := range []user.Role{user.RoleAdmin, user.RoleManager, user.RoleCashier, user.RoleStudent} {
		h, err := password.Hash(strings.ToLower(string(r)) + "@")
		if err != nil {
			return fmt.Errorf("seed password hash: %w", err)
		}
		hashes[r] = h
	}

	s.AddUser(user.User{ID: "user-admin", Name: "Admin User", Email: "admin@campus.edu", Role: user.RoleAdmin, PasswordHash: hashes[user.RoleAdmin]})
	s.AddUser(user.User{ID: "user-manager", Name: "Manager User", Email: "manager@campus.edu", Role: user.RoleManager, PasswordHash: hashes[user.RoleManager]})
	s.AddUser(user.User{ID: "user-cashier", Name: "Cashier User", Email: "cashier@campus.edu", Role: user.RoleCashier, PasswordHash: hashes[user.RoleCashier]})

	students := []string{"surya", "syam", "varun", "saikiran", "murali", "ganesh"}
	departments := []string{"Computer Science", "Mechanical Engineering", "Electrical Engineering", "Biotechnology", "Civil Engineering", "Chemical Engineering"}
	balances := []int64{15075, 22550, 12000, 18025, 30000, 9950} // minor units

	for i, name := range students {
		studentID := fmt.Sprintf("user-student-%d", i+1)
		s.AddUser(user.User{
			ID:           studentID,
			Name:         strings.ToUpper(name[:1]) + name[1:],
			Email:        name + "@campus.edu",
			Role:         user.RoleStudent,
			PasswordHash: hashes[user.RoleStudent],
		})
		s.AddProfile(user.StudentProfile{
			ID:           fmt.Sprintf("profile-%d", i+1),
			UserID:       studentID,
			EnrollmentNo: fmt.Sprintf("ENR100%d", i+1),
			Department:   departments[i%len(departments)],
			Year:         i%4 + 1,
		})
		if _, err := s.AddCard(card.Card{
			ID:         fmt.Sprintf("card-%d", i+1),
			StudentID:  studentID,
			CardNumber: fmt.Sprintf("C100%d", i+1),
			Balance:    money.FromMinor(balances[i]),
			Status:     card.StatusActive,
		}); err != nil {
			return fmt.Errorf("seed card: %w", err)
		}
	}

	meals := []menu.Meal{
		{ID: "meal-1", Name: "Veggie Burger", Price: money.FromMinor(5000), Category: "VEG", IsActive: true},
		{ID: "meal-2", Name: "Chicken Curry", Price: money.FromMinor(7550), Category: "NON-VEG", IsActive: true},
		{ID: "meal-3", Name: "Paneer Tikka", Price: money.FromMinor(6500), Category: "VEG", IsActive: true},
		{ID: "meal-4", Name: "Fish and Chips", Price: money.FromMinor(8000), Category: "NON-VEG", IsActive: true},
		{ID: "meal-5", Name: "Dal Makhani", Price: money.FromMinor(6000), Category: "VEG", IsActive: true},
		{ID: "meal-6", Name: "Egg Fried Rice", Price: money.FromMinor(5525), Category: "NON-VEG", IsActive: true},
		{ID: "meal-7", Name: "Iced Coffee", Price: money.FromMinor(3000), Category: "BEVERAGES", IsActive: true},
		{ID: "meal-8", Name: "Masala Dosa", Price: money.FromMinor(4500), Category: "VEG", IsActive: false},
	}
	for _, m := range meals {
		s.AddMeal(m)
	}

	now := time.Now()
	s.AddTransaction(card.Transaction{
		ID: "txn-1", CardID: "card-1", Type: card.TransactionTypeRecharge,
		Amount: money.FromMinor(20000), Direction: card.DirectionCredit,
		CreatedAt: now.Add(-72 * time.Hour),
	})
	s.AddTransaction(card.Transaction{
		ID: "txn-2", CardID: "card-1", Type: card.TransactionTypePurchase,
		Amount: money.FromMinor(4925), Direction: card.DirectionDebit,
		CreatedAt: now.Add(-70 * time.Hour), CashierID: "user-cashier",
		Description: "Veggie Burger (x1)",
	})
	s.AddTransaction(card.Transaction{
		ID: "txn-3", CardID: "card-2", Type: card.TransactionTypeRecharge,
		Amount: money.FromMinor(10000), Direction: card.DirectionCredit,
		CreatedAt: now.Add(-48 * time.Hour),
	})
	s.AddTransaction(card.Transaction{
		ID: "txn-4", CardID: "card-2", Type: card.TransactionTypePurchase,
		Amount: money.FromMinor(7500), Direction: card.DirectionDebit,
		CreatedAt: now.Add(-44 * time.Hour), CashierID: "user-cashier",
		Description: "Chicken Curry (x1)",
	})

	s.InsertRecharge(recharge.Request{
		ID: "req-1", CardID: "card-2", Amount: money.FromMinor(10000),
		RequestedBy: "user-student-2", RequestedAt: now.Add(-24 * time.Hour),
	})
	// Historical request behind txn-1; already terminal, so it is written
	// directly instead of replaying the approval (the credit is part of the
	// seeded balance).
	reviewedAt := now.Add(-72 * time.Hour)
	s.mu.Lock()
	s.requests = append(s.requests, recharge.Request{
		ID: "req-2", CardID: "card-1", Amount: money.FromMinor(20000),
		Status: recharge.StatusApproved, RequestedBy: "user-student-1",
		RequestedAt: now.Add(-73 * time.Hour),
		ReviewedBy:  "user-manager", ReviewedAt: &reviewedAt,
	})
	s.mu.Unlock()

	return nil
}
