package user

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/uninest/uninest/internal/db"
)

func TestCreateAndGet(t *testing.T) {
	store := testStore(t)

	u, err := store.Create("Tenant@Example.com", "Tina", RoleTenant)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 {
		t.Error("expected non-zero ID")
	}
	if u.Email != "tenant@example.com" {
		t.Errorf("email = %q, want lowercased", u.Email)
	}
	if u.Role != RoleTenant {
		t.Errorf("role = %q, want tenant", u.Role)
	}
	if u.IsLandownerVerified || u.Subscription {
		t.Error("expected flags false by default")
	}

	got, err := store.GetByEmail("TENANT@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("id = %d, want %d", got.ID, u.ID)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	store := testStore(t)

	if _, err := store.Create("dupe@example.com", "", RoleTenant); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := store.Create("dupe@example.com", "", RoleLandowner); err == nil {
		t.Fatal("expected error for duplicate email")
	}
}

func TestCreateInvalidRole(t *testing.T) {
	store := testStore(t)

	if _, err := store.Create("x@example.com", "", Role("superuser")); err == nil {
		t.Fatal("expected error for invalid role")
	}
}

func TestGetByIDNotFound(t *testing.T) {
	store := testStore(t)

	_, err := store.GetByID(9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSetLandownerVerified(t *testing.T) {
	store := testStore(t)

	u, err := store.Create("owner@example.com", "Olly", RoleLandowner)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.IsVerifiedLandowner() {
		t.Error("expected unverified landowner initially")
	}

	if err := store.SetLandownerVerified(u.ID, true); err != nil {
		t.Fatalf("verify: %v", err)
	}

	got, err := store.GetByID(u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.IsVerifiedLandowner() {
		t.Error("expected verified landowner after update")
	}
}

func TestSetSubscription(t *testing.T) {
	store := testStore(t)

	u, err := store.Create("premium@example.com", "", RoleTenant)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := store.SetSubscription(u.ID, true); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	got, err := store.GetByID(u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Subscription {
		t.Error("expected subscription flag set")
	}
}

func TestSetSubscriptionNotFound(t *testing.T) {
	store := testStore(t)

	err := store.SetSubscription(9999, true)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestEnsureAdmin(t *testing.T) {
	store := testStore(t)

	u, err := store.EnsureAdmin("admin@example.com")
	if err != nil {
		t.Fatalf("ensure admin: %v", err)
	}
	if !u.IsAdmin() {
		t.Errorf("role = %q, want admin", u.Role)
	}

	// Second call resolves the same account
	again, err := store.EnsureAdmin("admin@example.com")
	if err != nil {
		t.Fatalf("ensure admin again: %v", err)
	}
	if again.ID != u.ID {
		t.Errorf("id = %d, want %d", again.ID, u.ID)
	}
}

func testStore(t *testing.T) *Store {
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
	return NewStore(d)
}
