package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

type marketSearchRequest struct {
	ItemName string `json:"item_name"`
}

// handleMarketSearch runs the market price lookup for one item name.
func (s *Server) handleMarketSearch(w http.ResponseWriter, r *http.Request) {
	if s.market == nil {
		jsonError(w, "market search is not configured", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 4096)

	var req marketSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.ItemName) == "" {
		jsonError(w, "item_name is required", http.StatusBadRequest)
		return
	}

	report, err := s.market.Lookup(r.Context(), req.ItemName)
	if err != nil {
		s.log.Error("market lookup failed", "item", req.ItemName, "error", err)
		jsonError(w, "market search failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
