package stats

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/campuscard/mealcard-api/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Overview returns the admin statistics snapshot.
// GET /api/v1/admin/stats
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.svc.Overview())
}

// WeeklyCSV exports the weekly histogram as a CSV download.
// GET /api/v1/admin/stats/weekly.csv
func (h *Handler) WeeklyCSV(w http.ResponseWriter, r *http.Request) {
	overview := h.svc.Overview()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="weekly-transactions.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Day", "Purchases", "Recharges"})
	for _, row := range overview.WeeklyTxns {
		_ = cw.Write([]string{row.Name, strconv.Itoa(row.Purchase), strconv.Itoa(row.Recharge)})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Error().Err(err).Msg("weekly csv export failed")
	}
}

// Routes wires the admin statistics endpoints.
func (h *Handler) Routes(authMiddleware, requireAdmin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)
	r.Use(requireAdmin)
	r.Get("/", h.Overview)
	r.Get("/weekly.csv", h.WeeklyCSV)
	return r
}
