package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. The items table is the sole persisted
// entity; settings holds the auto-generated JWT secret so tokens survive
// restarts when no secret is configured.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id           INTEGER PRIMARY KEY,
    title        TEXT NOT NULL,
    description  TEXT NOT NULL,
    category     TEXT NOT NULL CHECK (category IN ('lost', 'found')),
    location     TEXT NOT NULL,
    item_date    TEXT NOT NULL,
    contact_info TEXT NOT NULL,
    status       TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'claimed', 'resolved')),
    photo        BLOB,
    photo_mime   TEXT,
    created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_items_board
    ON items(category, status, created_at);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
