package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// handleCreateCheckoutSession starts a Stripe subscription checkout and
// returns the hosted payment page URL.
func (s *Server) handleCreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor := requireUser(w, r)
	if actor == nil {
		return
	}

	if s.checkout == nil {
		apiError(w, "billing not configured", http.StatusServiceUnavailable)
		return
	}

	var req struct {
		PriceID string `json:"priceId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.PriceID == "" {
		apiError(w, "priceId is required", http.StatusBadRequest)
		return
	}

	url, err := s.checkout.CreateSession(req.PriceID)
	if err != nil {
		slog.Error("creating checkout session", "user_id", actor.ID, "error", err)
		apiError(w, "creating checkout session", http.StatusInternalServerError)
		return
	}

	apiJSON(w, map[string]string{"url": url}, http.StatusOK)
}
