package bookmark

import (
	"database/sql"
	"fmt"
)

// Repository provides bookmark persistence.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a bookmark repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Add records a new bookmark for a user.
// The target item is not checked for existence: bookmarks may dangle.
func (r *Repository) Add(itemType ItemType, itemID, userID int64) (*Bookmark, error) {
	result, err := r.db.Exec(
		"INSERT INTO bookmarks (item_type, item_id, user_id) VALUES (?, ?, ?)",
		string(itemType), itemID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting bookmark: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	var b Bookmark
	var it string
	err = r.db.QueryRow(
		"SELECT id, item_type, item_id, user_id, created_at FROM bookmarks WHERE id = ?", id,
	).Scan(&b.ID, &it, &b.ItemID, &b.UserID, &b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("reading back bookmark: %w", err)
	}
	b.ItemType = ItemType(it)

	return &b, nil
}

// ListByItemType returns all bookmarks of the given item type,
// each joined with the owning user's email and name.
func (r *Repository) ListByItemType(itemType ItemType) ([]*WithUser, error) {
	rows, err := r.db.Query(
		`SELECT b.id, b.item_type, b.item_id, b.user_id, b.created_at, u.email, u.name
		 FROM bookmarks b
		 INNER JOIN users u ON u.id = b.user_id
		 WHERE b.item_type = ?
		 ORDER BY b.id`,
		string(itemType),
	)
	if err != nil {
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var bookmarks []*WithUser
	for rows.Next() {
		var b WithUser
		var it string
		if err := rows.Scan(&b.ID, &it, &b.ItemID, &b.UserID, &b.CreatedAt, &b.UserEmail, &b.UserName); err != nil {
			return nil, fmt.Errorf("scanning bookmark: %w", err)
		}
		b.ItemType = ItemType(it)
		bookmarks = append(bookmarks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bookmarks: %w", err)
	}

	return bookmarks, nil
}

// ListByUser returns a user's bookmarks, newest first.
func (r *Repository) ListByUser(userID int64) ([]*Bookmark, error) {
	rows, err := r.db.Query(
		`SELECT id, item_type, item_id, user_id, created_at
		 FROM bookmarks WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing user bookmarks: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var bookmarks []*Bookmark
	for rows.Next() {
		var b Bookmark
		var it string
		if err := rows.Scan(&b.ID, &it, &b.ItemID, &b.UserID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning bookmark: %w", err)
		}
		b.ItemType = ItemType(it)
		bookmarks = append(bookmarks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bookmarks: %w", err)
	}

	return bookmarks, nil
}

// Delete removes a bookmark by ID.
func (r *Repository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM bookmarks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting bookmark: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("bookmark %d not found", id)
	}

	return nil
}
