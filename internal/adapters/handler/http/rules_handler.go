package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/thecivicscenter/prereg/internal/core/domain"
	"github.com/thecivicscenter/prereg/internal/core/ports"
)

type RulesHandler struct {
	service ports.RulesService
}

func NewRulesHandler(service ports.RulesService) *RulesHandler {
	return &RulesHandler{
		service: service,
	}
}

func (h *RulesHandler) GetStateRules(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		http.Error(w, "missing state slug", http.StatusBadRequest)
		return
	}

	rules, err := h.service.StateRules(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrStateNotFound) {
			http.Error(w, "state not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rules); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
