package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/iamdanusabu/laundryapp/internal/ports"
	"github.com/iamdanusabu/laundryapp/internal/repository"
)

// PublicStatusHandler lets a customer check a receipt without signing in.
type PublicStatusHandler struct {
	Repo ports.PublicStatusStore
}

func (h PublicStatusHandler) RegisterRoutes(r chi.Router) {
	r.Get("/public/transactions/{id}", h.check)
}

func (h PublicStatusHandler) check(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.Repo.GetPublic(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":        p.ID,
		"status":    p.Status,
		"createdAt": p.CreatedAt.Format(time.RFC3339),
		"updatedAt": p.UpdatedAt.Format(time.RFC3339),
	})
}
