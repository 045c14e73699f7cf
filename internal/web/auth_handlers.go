package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/uninest/uninest/internal/email"
	"github.com/uninest/uninest/internal/user"
)

// handleLogin accepts an email and sends a magic link. Unknown emails are
// registered on the fly; the response never reveals whether the account
// already existed.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Role  string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	addr := strings.TrimSpace(strings.ToLower(req.Email))
	if addr == "" || !strings.Contains(addr, "@") {
		apiError(w, "valid email is required", http.StatusBadRequest)
		return
	}

	if _, err := s.users.GetByEmail(addr); err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			apiError(w, "internal error", http.StatusInternalServerError)
			return
		}
		role := user.RoleTenant
		if req.Role == string(user.RoleLandowner) {
			role = user.RoleLandowner
		}
		if _, err := s.users.Create(addr, req.Name, role); err != nil {
			apiError(w, "internal error", http.StatusInternalServerError)
			return
		}
	}

	token, err := s.tokens.Create(addr)
	if err != nil {
		slog.Error("creating login token", "error", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	link := fmt.Sprintf("%s/auth/verify?token=%s", strings.TrimSuffix(s.cfg.BaseURL, "/"), token)
	msg := email.Message{
		To:      addr,
		Subject: "Your uninest login link",
		Text:    fmt.Sprintf("Click to log in: %s\n\nThis link expires in 15 minutes.", link),
	}
	if err := s.sender.Send(msg); err != nil {
		slog.Error("sending magic link", "to", addr, "error", err)
	}

	apiJSON(w, map[string]string{
		"message": "A login link has been sent. Check your inbox.",
	}, http.StatusOK)
}

// handleVerify validates a magic link token and creates a session.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		apiError(w, "token is required", http.StatusBadRequest)
		return
	}

	addr, err := s.tokens.Validate(token)
	if err != nil {
		apiError(w, "invalid or expired login link", http.StatusUnauthorized)
		return
	}

	u, err := s.users.GetByEmail(addr)
	if err != nil {
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := s.sessions.Create(w, u.ID); err != nil {
		slog.Error("creating session", "error", err)
		apiError(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, s.cfg.FrontendURL, http.StatusSeeOther)
}

// handleLogout destroys the session.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := s.sessions.Destroy(w, r); err != nil {
		slog.Error("destroying session", "error", err)
	}

	apiJSON(w, map[string]bool{"success": true}, http.StatusOK)
}
