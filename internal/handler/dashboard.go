package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/iamdanusabu/laundryapp/internal/ports"
	"github.com/iamdanusabu/laundryapp/internal/service"
)

// DashboardHandler computes summary metrics by folding over the fetched
// transaction set. Every range change re-fetches and re-reduces; there is no
// cache between calls.
type DashboardHandler struct {
	Repo     ports.TransactionStore
	Location *time.Location
}

func (h DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard/summary", h.summary)
}

func (h DashboardHandler) summary(w http.ResponseWriter, r *http.Request) {
	// Range bounds and day buckets share one zone, so a requested [from, to]
	// never yields a salesByDay entry dated outside it.
	loc := orLocal(h.Location)
	filter, ok := parseTransactionFilter(w, r, loc)
	if !ok {
		return
	}
	filter.Status = ""

	txs, err := h.Repo.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s := service.Summarize(txs, loc)
	series := make([]map[string]any, 0, len(s.Series))
	for _, p := range s.Series {
		series = append(series, map[string]any{
			"date":   p.Date,
			"amount": p.Amount,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"totalSales":       s.TotalSales,
		"transactionCount": s.TransactionCount,
		"garmentCount":     s.GarmentCount,
		"salesByDay":       series,
	})
}
