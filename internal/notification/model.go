// Package notification provides append-only in-app notifications.
package notification

import "time"

// Notification is a message addressed to a user. Never mutated once written.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
