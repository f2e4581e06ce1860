package menu

import "github.com/campuscard/mealcard-api/internal/pkg/money"

// Meal is a catalog item sold at the point of sale.
type Meal struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Price    money.Amount `json:"price"`
	Category string       `json:"category"`
	IsActive bool         `json:"is_active"`
}
