package notification

import (
	"database/sql"
	"fmt"
)

// Repository provides notification persistence.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a notification repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Add appends a notification for a user.
func (r *Repository) Add(userID int64, message string) (*Notification, error) {
	result, err := r.db.Exec(
		"INSERT INTO notifications (user_id, message) VALUES (?, ?)",
		userID, message,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting notification: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	var n Notification
	err = r.db.QueryRow(
		"SELECT id, user_id, message, created_at FROM notifications WHERE id = ?", id,
	).Scan(&n.ID, &n.UserID, &n.Message, &n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("reading back notification: %w", err)
	}

	return &n, nil
}

// ListByUser returns all notifications for a user, newest first.
func (r *Repository) ListByUser(userID int64) ([]*Notification, error) {
	rows, err := r.db.Query(
		"SELECT id, user_id, message, created_at FROM notifications WHERE user_id = ? ORDER BY created_at DESC, id DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var notifications []*Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notifications: %w", err)
	}

	return notifications, nil
}

// CountByUser returns how many notifications a user has.
func (r *Repository) CountByUser(userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM notifications WHERE user_id = ?", userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting notifications: %w", err)
	}
	return count, nil
}
