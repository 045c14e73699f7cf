package auth

import (
	"context"
	"net/http"

	"github.com/uninest/uninest/internal/user"
)

type contextKey string

const userKey contextKey = "user"

// WithUser returns a copy of ctx carrying the given user.
func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromContext returns the authenticated user, or nil for anonymous requests.
func UserFromContext(ctx context.Context) *user.User {
	u, _ := ctx.Value(userKey).(*user.User)
	return u
}

// Resolve is middleware that loads the session user, if any, into the request
// context. It never rejects: handlers decide what anonymous callers may do.
func Resolve(sessions *SessionStore, users *user.Store, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := sessions.Validate(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		u, err := users.GetByID(userID)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}
