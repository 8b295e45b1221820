package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/iamdanusabu/laundryapp/internal/domain"
	"github.com/iamdanusabu/laundryapp/internal/ports"
	"github.com/iamdanusabu/laundryapp/internal/repository"
	"github.com/iamdanusabu/laundryapp/internal/service"
)

var validate = validator.New()

// TransactionHandler covers intake, the filtered list, and status updates.
// Location is the zone date-range bounds are interpreted in; nil means the
// server's local zone.
type TransactionHandler struct {
	Repo     ports.TransactionStore
	Statuses ports.StatusStore
	Policy   *service.TransitionPolicy
	Location *time.Location
}

func (h TransactionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/transactions", h.create)
	r.Get("/transactions", h.list)
	r.Get("/transactions/export", h.export)
	r.Put("/transactions/status", h.bulkUpdateStatus)
	r.Get("/transactions/{id}", h.get)
	r.Put("/transactions/{id}/status", h.updateStatus)
}

type intakePayload struct {
	CustomerPhone string       `json:"customerPhone" validate:"required"`
	CustomerName  string       `json:"customerName"`
	Items         []intakeItem `json:"items" validate:"required,min=1,dive"`
}

type intakeItem struct {
	Name      string   `json:"name" validate:"required"`
	Procedure string   `json:"procedure"`
	Quantity  int      `json:"quantity" validate:"min=0"`
	Price     int64    `json:"price" validate:"min=0"`
	Tags      []string `json:"tags"`
}

func (h TransactionHandler) create(w http.ResponseWriter, r *http.Request) {
	var req intakePayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items := make([]domain.TransactionItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.TransactionItem{
			Name:      it.Name,
			Procedure: it.Procedure,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Tags:      it.Tags,
		})
	}

	initial, err := h.Statuses.InitialName(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	tx, err := h.Repo.Create(r.Context(), domain.TransactionDraft{
		CustomerPhone: req.CustomerPhone,
		CustomerName:  req.CustomerName,
		Items:         items,
	}, initial)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toTransaction(*tx))
}

// list runs the two-stage filter: status/date predicates reach the store,
// the free-text term narrows the fetched set in-process.
func (h TransactionHandler) list(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseTransactionFilter(w, r, orLocal(h.Location))
	if !ok {
		return
	}
	txs, err := h.Repo.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	txs = domain.FilterBySearch(txs, r.URL.Query().Get("q"))

	resp := make([]map[string]any, 0, len(txs))
	for _, t := range txs {
		resp = append(resp, toTransaction(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h TransactionHandler) get(w http.ResponseWriter, r *http.Request) {
	t, err := h.Repo.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toTransaction(*t))
}

func (h TransactionHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Status == "" {
		writeError(w, http.StatusBadRequest, "status is required")
		return
	}
	if h.Policy.Restrictive() {
		current, err := h.Repo.StatusesByID(r.Context(), []string{id})
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		from, ok := current[id]
		if !ok {
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}
		if !h.Policy.Allows(from, req.Status) {
			writeError(w, http.StatusConflict, service.ErrTransitionNotAllowed.Error())
			return
		}
	}
	if err := h.Repo.UpdateStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// bulkUpdateStatus moves every selected transaction to one status in a
// single batched statement. On failure nothing moves, so the caller keeps
// its selection and can retry.
func (h TransactionHandler) bulkUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs    []string `json:"ids"`
		Status string   `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if len(req.IDs) == 0 || req.Status == "" {
		writeError(w, http.StatusBadRequest, "ids and status are required")
		return
	}
	if h.Policy.Restrictive() {
		current, err := h.Repo.StatusesByID(r.Context(), req.IDs)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		for _, id := range req.IDs {
			from, ok := current[id]
			if !ok {
				continue
			}
			if !h.Policy.Allows(from, req.Status) {
				writeError(w, http.StatusConflict, service.ErrTransitionNotAllowed.Error())
				return
			}
		}
	}
	updated, err := h.Repo.BulkUpdateStatus(r.Context(), req.IDs, req.Status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"updated": updated})
}

func parseTransactionFilter(w http.ResponseWriter, r *http.Request, loc *time.Location) (domain.TransactionFilter, bool) {
	from, err := parseDateQuery(r, "from", loc)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date")
		return domain.TransactionFilter{}, false
	}
	to, err := parseDateQuery(r, "to", loc)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date")
		return domain.TransactionFilter{}, false
	}
	if from != nil && to != nil && from.After(*to) {
		writeError(w, http.StatusBadRequest, "from must be before to")
		return domain.TransactionFilter{}, false
	}
	return domain.TransactionFilter{
		Status: r.URL.Query().Get("status"),
		From:   from,
		To:     endOfDay(to),
	}, true
}

func toTransaction(t domain.Transaction) map[string]any {
	items := make([]map[string]any, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, map[string]any{
			"name":      it.Name,
			"procedure": it.Procedure,
			"quantity":  it.Quantity,
			"price":     it.Price,
			"tags":      it.Tags,
		})
	}
	return map[string]any{
		"id":            t.ID,
		"customerPhone": t.CustomerPhone,
		"items":         items,
		"status":        t.Status,
		"totalAmount":   t.TotalAmount,
		"createdAt":     t.CreatedAt.Format(time.RFC3339),
		"updatedAt":     t.UpdatedAt.Format(time.RFC3339),
	}
}

func itemSummary(items []domain.TransactionItem) string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, strconv.Itoa(it.Quantity)+"x "+it.Name)
	}
	return strings.Join(names, ", ")
}
