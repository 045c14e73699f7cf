package auth

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/uninest/uninest/internal/db"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	d, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if err := d.Close(); err != nil {
			t.Errorf("close db: %v", err)
		}
	})
	return d
}

func TestTokenCreateAndValidate(t *testing.T) {
	store := NewTokenStore(testDB(t))

	token, err := store.Create("Test@Example.com")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	email, err := store.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if email != "test@example.com" {
		t.Errorf("email = %q, want lowercased test@example.com", email)
	}
}

func TestTokenSingleUse(t *testing.T) {
	store := NewTokenStore(testDB(t))

	token, err := store.Create("test@example.com")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := store.Validate(token); err != nil {
		t.Fatalf("first validate: %v", err)
	}
	if _, err := store.Validate(token); err == nil {
		t.Error("expected error on second use")
	}
}

func TestTokenInvalid(t *testing.T) {
	store := NewTokenStore(testDB(t))

	if _, err := store.Validate("bogus"); err == nil {
		t.Error("expected error for unknown token")
	}
}

func TestTokenExpired(t *testing.T) {
	d := testDB(t)
	store := NewTokenStore(d)

	token, err := store.Create("test@example.com")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Backdate the expiry
	if _, err := d.Exec(
		"UPDATE auth_tokens SET expires_at = ? WHERE token = ?",
		time.Now().Add(-time.Minute), token,
	); err != nil {
		t.Fatalf("backdate: %v", err)
	}

	if _, err := store.Validate(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestTokenCleanup(t *testing.T) {
	d := testDB(t)
	store := NewTokenStore(d)

	token, err := store.Create("test@example.com")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := d.Exec(
		"UPDATE auth_tokens SET expires_at = ? WHERE token = ?",
		time.Now().Add(-time.Hour), token,
	); err != nil {
		t.Fatalf("backdate: %v", err)
	}

	if err := store.Cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	var count int
	if err := d.QueryRow("SELECT COUNT(*) FROM auth_tokens").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("got %d tokens after cleanup, want 0", count)
	}
}
