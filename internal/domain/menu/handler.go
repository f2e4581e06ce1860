package menu

import (
	"net/http"

	"github.com/campuscard/mealcard-api/internal/pkg/response"
)

// Catalog is the slice of the ledger store the menu handler reads from.
type Catalog interface {
	ActiveMeals() []Meal
}

type Handler struct {
	catalog Catalog
}

func NewHandler(catalog Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// ListActive returns the meals currently on sale.
// GET /api/v1/meals
func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.catalog.ActiveMeals())
}
