package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	roster "swimclub/internal/roster/domain"
)

// CoachLister loads the full coach roster.
type CoachLister interface {
	List(ctx context.Context) ([]roster.Coach, error)
}

// CoachHandler serves the read-only coach listing used to populate the
// invoice UI's coach selector.
type CoachHandler struct {
	coaches CoachLister
}

// NewCoachHandler constructs a handler.
func NewCoachHandler(coaches CoachLister) (*CoachHandler, error) {
	if coaches == nil {
		return nil, errors.New("coach handler: nil lister")
	}
	return &CoachHandler{coaches: coaches}, nil
}

// ServeHTTP handles GET /api/v1/coaches.
func (h *CoachHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	coaches, err := h.coaches.List(r.Context())
	if err != nil {
		http.Error(w, "coach listing failed", http.StatusInternalServerError)
		return
	}
	if coaches == nil {
		coaches = []roster.Coach{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(coaches)
}
