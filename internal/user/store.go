package user

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("user not found")

// Store manages users in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a user store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectColumns = "id, email, name, role, is_landowner_verified, subscription, created_at"

// Create adds a new user with the given role.
func (s *Store) Create(email, name string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %q", role)
	}

	result, err := s.db.Exec(
		"INSERT INTO users (email, name, role) VALUES (?, ?, ?)",
		email, name, string(role),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return nil, fmt.Errorf("user already exists: %s", email)
		}
		return nil, fmt.Errorf("adding user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting user ID: %w", err)
	}

	return s.GetByID(id)
}

// GetByID returns a user by ID.
func (s *Store) GetByID(id int64) (*User, error) {
	row := s.db.QueryRow(
		fmt.Sprintf("SELECT %s FROM users WHERE id = ?", selectColumns), id,
	)
	return scanUser(row)
}

// GetByEmail returns a user by email, case-insensitively.
func (s *Store) GetByEmail(email string) (*User, error) {
	row := s.db.QueryRow(
		fmt.Sprintf("SELECT %s FROM users WHERE LOWER(email) = ?", selectColumns),
		strings.ToLower(strings.TrimSpace(email)),
	)
	return scanUser(row)
}

// SetLandownerVerified flips the landowner verification flag.
func (s *Store) SetLandownerVerified(id int64, verified bool) error {
	return s.setFlag(id, "is_landowner_verified", verified)
}

// SetSubscription flips the subscription flag. Called by the
// payment-success callback after checkout completes.
func (s *Store) SetSubscription(id int64, active bool) error {
	return s.setFlag(id, "subscription", active)
}

func (s *Store) setFlag(id int64, column string, value bool) error {
	v := 0
	if value {
		v = 1
	}

	result, err := s.db.Exec(
		fmt.Sprintf("UPDATE users SET %s = ? WHERE id = ?", column), v, id,
	)
	if err != nil {
		return fmt.Errorf("updating %s: %w", column, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// EnsureAdmin creates the admin account if it does not exist yet.
// Called at startup with the configured admin email.
func (s *Store) EnsureAdmin(email string) (*User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("admin email is required")
	}

	u, err := s.GetByEmail(email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	return s.Create(email, "", RoleAdmin)
}

func scanUser(row *sql.Row) (*User, error) {
	var u User
	var role string
	var verified, subscription int

	err := row.Scan(&u.ID, &u.Email, &u.Name, &role, &verified, &subscription, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}

	u.Role = Role(role)
	u.IsLandownerVerified = verified != 0
	u.Subscription = subscription != 0

	return &u, nil
}
