// Package bookmark provides saved user interests in marketplace items.
package bookmark

import "time"

// ItemType identifies what kind of item a bookmark points at.
type ItemType string

// ItemTypeProperty is the only item type the notify workflow consumes.
const ItemTypeProperty ItemType = "PROPERTY"

// Bookmark represents a saved user interest in a specific item.
// Immutable once created, except by deletion.
type Bookmark struct {
	ID        int64     `json:"id"`
	ItemType  ItemType  `json:"item_type"`
	ItemID    int64     `json:"item_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// WithUser pairs a bookmark with the owning user's contact details,
// as needed by the match-and-notify workflow.
type WithUser struct {
	Bookmark
	UserEmail string `json:"user_email"`
	UserName  string `json:"user_name"`
}
