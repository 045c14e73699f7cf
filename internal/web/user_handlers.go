package web

import "net/http"

// handleMe returns the authenticated user.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor := requireUser(w, r)
	if actor == nil {
		return
	}

	apiJSON(w, actor, http.StatusOK)
}

// handleSubscribePremium flips the caller's subscription flag. Called by
// the frontend after a successful checkout redirect.
func (s *Server) handleSubscribePremium(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor := requireUser(w, r)
	if actor == nil {
		return
	}

	if err := s.users.SetSubscription(actor.ID, true); err != nil {
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	apiJSON(w, map[string]bool{"subscription": true}, http.StatusOK)
}
