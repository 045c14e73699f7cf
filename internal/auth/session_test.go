package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/uninest/uninest/internal/user"
)

func TestSessionCreateAndValidate(t *testing.T) {
	d := testDB(t)
	u, err := user.NewStore(d).Create("test@example.com", "", user.RoleTenant)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	store := NewSessionStore(d)

	w := httptest.NewRecorder()
	if err := store.Create(w, u.ID); err != nil {
		t.Fatalf("create session: %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != "un_session" {
		t.Errorf("cookie name = %q", cookie.Name)
	}
	if !cookie.HttpOnly {
		t.Error("cookie should be HttpOnly")
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookie)

	userID, err := store.Validate(r)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if userID != u.ID {
		t.Errorf("user id = %d, want %d", userID, u.ID)
	}
}

func TestSessionValidateNoCookie(t *testing.T) {
	store := NewSessionStore(testDB(t))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := store.Validate(r); err == nil {
		t.Error("expected error without cookie")
	}
}

func TestSessionValidateUnknownCookie(t *testing.T) {
	store := NewSessionStore(testDB(t))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "un_session", Value: "bogus"})
	if _, err := store.Validate(r); err == nil {
		t.Error("expected error for unknown session")
	}
}

func TestSessionExpired(t *testing.T) {
	d := testDB(t)
	u, err := user.NewStore(d).Create("test@example.com", "", user.RoleTenant)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	store := NewSessionStore(d)

	w := httptest.NewRecorder()
	if err := store.Create(w, u.ID); err != nil {
		t.Fatalf("create session: %v", err)
	}
	cookie := w.Result().Cookies()[0]

	if _, err := d.Exec(
		"UPDATE sessions SET expires_at = ? WHERE id = ?",
		time.Now().Add(-time.Minute), cookie.Value,
	); err != nil {
		t.Fatalf("backdate: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookie)
	if _, err := store.Validate(r); err == nil {
		t.Error("expected error for expired session")
	}

	// Expired session rows are removed on validation
	var count int
	if err := d.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("got %d sessions after expired validate, want 0", count)
	}
}

func TestSessionDestroy(t *testing.T) {
	d := testDB(t)
	u, err := user.NewStore(d).Create("test@example.com", "", user.RoleTenant)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	store := NewSessionStore(d)

	w := httptest.NewRecorder()
	if err := store.Create(w, u.ID); err != nil {
		t.Fatalf("create session: %v", err)
	}
	cookie := w.Result().Cookies()[0]

	r := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	r.AddCookie(cookie)
	w2 := httptest.NewRecorder()
	if err := store.Destroy(w2, r); err != nil {
		t.Fatalf("destroy: %v", err)
	}

	cleared := w2.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge != -1 {
		t.Errorf("expected clearing cookie, got %+v", cleared)
	}

	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(cookie)
	if _, err := store.Validate(r2); err == nil {
		t.Error("expected error after destroy")
	}
}

func TestSessionDestroyWithoutCookie(t *testing.T) {
	store := NewSessionStore(testDB(t))

	r := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	if err := store.Destroy(httptest.NewRecorder(), r); err != nil {
		t.Errorf("destroy without cookie should be a no-op, got %v", err)
	}
}
