package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/uninest/uninest/internal/auth"
	"github.com/uninest/uninest/internal/property"
	"github.com/uninest/uninest/internal/user"
)

// userFrom returns the session user, or nil for anonymous requests.
func userFrom(r *http.Request) *user.User {
	return auth.UserFromContext(r.Context())
}

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// serviceError maps sentinel errors to HTTP status codes.
func serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, property.ErrNotFound):
		apiError(w, "property not found", http.StatusNotFound)
	case errors.Is(err, property.ErrForbidden):
		apiError(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, property.ErrInvalid):
		apiError(w, err.Error(), http.StatusBadRequest)
	default:
		apiError(w, "internal error", http.StatusInternalServerError)
	}
}

// requireUser returns the authenticated user or writes a 401.
func requireUser(w http.ResponseWriter, r *http.Request) *user.User {
	u := userFrom(r)
	if u == nil {
		apiError(w, "authentication required", http.StatusUnauthorized)
	}
	return u
}
