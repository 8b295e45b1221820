package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/iamdanusabu/laundryapp/internal/domain"
	"github.com/iamdanusabu/laundryapp/internal/ports"
	"github.com/iamdanusabu/laundryapp/internal/repository"
)

type CustomerHandler struct {
	Repo ports.CustomerStore
}

func (h CustomerHandler) RegisterRoutes(r chi.Router) {
	r.Get("/customers", h.list)
	r.Get("/customers/{phone}", h.lookup)
	r.Post("/customers", h.create)
}

func (h CustomerHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context(), 500)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, c := range items {
		resp = append(resp, toCustomer(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// lookup is the intake form's exact-match "customer exists" check.
func (h CustomerHandler) lookup(w http.ResponseWriter, r *http.Request) {
	phone := chi.URLParam(r, "phone")
	c, err := h.Repo.GetByPhone(r.Context(), phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "customer not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toCustomer(*c))
}

func (h CustomerHandler) create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phone   string `json:"phone"`
		Name    string `json:"name"`
		Address string `json:"address"`
		Tag     string `json:"tag"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Name == "" || req.Phone == "" {
		writeError(w, http.StatusBadRequest, "name and phone are required")
		return
	}
	saved, err := h.Repo.Create(r.Context(), domain.Customer{
		Phone:   req.Phone,
		Name:    req.Name,
		Address: req.Address,
		Tag:     req.Tag,
	})
	if err != nil {
		if repository.IsDuplicate(err) {
			writeError(w, http.StatusConflict, "customer already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toCustomer(*saved))
}

func toCustomer(c domain.Customer) map[string]any {
	return map[string]any{
		"phone":   c.Phone,
		"name":    c.Name,
		"address": c.Address,
		"tag":     c.Tag,
	}
}
