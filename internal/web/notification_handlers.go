package web

import (
	"net/http"

	"github.com/uninest/uninest/internal/notification"
)

// handleNotifications serves GET /api/notifications.
func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor := requireUser(w, r)
	if actor == nil {
		return
	}

	notes, err := s.notifications.ListByUser(actor.ID)
	if err != nil {
		apiError(w, "listing notifications", http.StatusInternalServerError)
		return
	}
	if notes == nil {
		notes = make([]*notification.Notification, 0)
	}

	apiJSON(w, notes, http.StatusOK)
}
