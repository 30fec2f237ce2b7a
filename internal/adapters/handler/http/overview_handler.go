package http

import (
	"encoding/json"
	"net/http"

	"github.com/thecivicscenter/prereg/internal/core/ports"
)

type OverviewHandler struct {
	service ports.OverviewService
}

func NewOverviewHandler(service ports.OverviewService) *OverviewHandler {
	return &OverviewHandler{
		service: service,
	}
}

func (h *OverviewHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.TableRows(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rows); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *OverviewHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.MapEntries(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
