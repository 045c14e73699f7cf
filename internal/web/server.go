// Package web provides the HTTP server and JSON API handlers for uninest.
package web

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/uninest/uninest/internal/auth"
	"github.com/uninest/uninest/internal/billing"
	"github.com/uninest/uninest/internal/bookmark"
	"github.com/uninest/uninest/internal/config"
	"github.com/uninest/uninest/internal/email"
	"github.com/uninest/uninest/internal/logging"
	"github.com/uninest/uninest/internal/notification"
	"github.com/uninest/uninest/internal/property"
	"github.com/uninest/uninest/internal/user"
)

// Server is the uninest HTTP server.
type Server struct {
	cfg config.Config

	users         *user.Store
	tokens        *auth.TokenStore
	sessions      *auth.SessionStore
	propRepo      *property.Repository
	propService   *property.Service
	bookmarks     *bookmark.Repository
	notifications *notification.Repository
	sender        email.Sender
	checkout      billing.CheckoutProvider

	mux     *http.ServeMux
	handler http.Handler
}

// NewServer wires all stores and services against the given database.
func NewServer(db *sql.DB, cfg config.Config) *Server {
	var sender email.Sender
	if cfg.DevMode || !cfg.SMTP.IsConfigured() {
		sender = email.LogSender{}
	} else {
		sender = email.NewSMTPSender(cfg.SMTP)
	}

	propRepo := property.NewRepository(db)
	bookmarks := bookmark.NewRepository(db)
	notifications := notification.NewRepository(db)
	notifier := property.NewNotifier(bookmarks, propRepo, notifications, sender, cfg.FrontendURL)

	s := &Server{
		cfg:           cfg,
		users:         user.NewStore(db),
		tokens:        auth.NewTokenStore(db),
		sessions:      auth.NewSessionStore(db),
		propRepo:      propRepo,
		propService:   property.NewService(propRepo, notifier),
		bookmarks:     bookmarks,
		notifications: notifications,
		sender:        sender,
		mux:           http.NewServeMux(),
	}

	if cfg.StripeSecretKey != "" {
		s.checkout = billing.NewStripeProvider(cfg.StripeSecretKey, cfg.FrontendURL)
	}

	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/auth/login", s.handleLogin)
	s.mux.HandleFunc("/auth/verify", s.handleVerify)
	s.mux.HandleFunc("/auth/logout", s.handleLogout)
	s.mux.HandleFunc("/api/me", s.handleMe)
	s.mux.HandleFunc("/api/me/subscribe-premium", s.handleSubscribePremium)
	s.mux.HandleFunc("/api/properties", s.handleProperties)
	s.mux.HandleFunc("/api/properties/", s.handleProperties)
	s.mux.HandleFunc("/api/bookmarks", s.handleBookmarks)
	s.mux.HandleFunc("/api/bookmarks/", s.handleBookmarks)
	s.mux.HandleFunc("/api/notifications", s.handleNotifications)
	s.mux.HandleFunc("/api/billing/create-checkout-session", s.handleCreateCheckoutSession)

	s.handler = logging.RequestLogger(auth.Resolve(s.sessions, s.users, s.mux))

	return s
}

// EnsureAdmin creates the admin account if it does not exist yet.
func (s *Server) EnsureAdmin(email string) (*user.User, error) {
	return s.users.EnsureAdmin(email)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	return http.ListenAndServe(addr, s)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
