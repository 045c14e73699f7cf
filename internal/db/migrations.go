package db

import (
	"database/sql"
	"fmt"
)

// migrations is an ordered list of SQL statements to run.
//
// bookmarks.item_id deliberately has no foreign key: a bookmark may outlive
// the property it points at, and the notify workflow skips such rows.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                    INTEGER PRIMARY KEY AUTOINCREMENT,
		email                 TEXT    NOT NULL UNIQUE,
		name                  TEXT    NOT NULL DEFAULT '',
		role                  TEXT    NOT NULL DEFAULT 'tenant',
		is_landowner_verified INTEGER NOT NULL DEFAULT 0,
		subscription          INTEGER NOT NULL DEFAULT 0,
		created_at            DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS properties (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		title        TEXT    NOT NULL,
		location     TEXT    NOT NULL,
		price        INTEGER NOT NULL CHECK (price >= 0),
		type         TEXT    NOT NULL,
		photos       TEXT    NOT NULL DEFAULT '[]',
		description  TEXT    NOT NULL DEFAULT '',
		amenities    TEXT    NOT NULL DEFAULT '[]',
		terms        TEXT    NOT NULL DEFAULT '',
		is_rented    INTEGER NOT NULL DEFAULT 0,
		duration     TEXT    NOT NULL,
		landowner_id INTEGER NOT NULL REFERENCES users(id),
		created_at   DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at   DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS bookmarks (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		item_type  TEXT    NOT NULL,
		item_id    INTEGER NOT NULL,
		user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		message    TEXT    NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS auth_tokens (
		id         INTEGER  PRIMARY KEY AUTOINCREMENT,
		token      TEXT     NOT NULL UNIQUE,
		email      TEXT     NOT NULL,
		expires_at DATETIME NOT NULL,
		used       INTEGER  DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id         TEXT     PRIMARY KEY,
		user_id    INTEGER  NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		expires_at DATETIME NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_landowner ON properties(landowner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookmarks_item_type ON bookmarks(item_type)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id)`,
}

// migrate runs all migrations in order.
func migrate(db *sql.DB) error {
	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
