// Package admin holds the administrative read-only projections: the user
// directory. Aggregate statistics live in the stats package.
package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campuscard/mealcard-api/internal/pkg/response"
	"github.com/campuscard/mealcard-api/internal/store"
)

type Handler struct {
	store *store.Store
}

func NewHandler(store *store.Store) *Handler {
	return &Handler{store: store}
}

// ListUsers returns every user for the admin directory.
// GET /api/v1/admin/users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.store.AllUsers())
}

// Routes wires the admin endpoints.
func (h *Handler) Routes(authMiddleware, requireAdmin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)
	r.Use(requireAdmin)
	r.Get("/users", h.ListUsers)
	return r
}
