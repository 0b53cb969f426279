// Package store is the persistence accessor for item reports. All reads and
// writes go through parameterized queries; nothing in this package is aware
// of the lifecycle rules layered on top of it.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quest-campus/lostfound/internal/model"
)

const itemColumns = `id, title, description, category, location, item_date,
	contact_info, status, photo_mime, created_at, updated_at`

// CreateItem inserts a new report. Status is always forced to pending on
// creation, regardless of what the submission carried.
func CreateItem(ctx context.Context, db *sql.DB, item *model.Item) (*model.Item, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO items (title, description, category, location, item_date, contact_info, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.Title, item.Description, item.Category, item.Location,
		item.ItemDate, item.ContactInfo, model.StatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns a report by ID, or nil if it does not exist.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	item := &model.Item{}
	var photoMime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &item.Title, &item.Description, &item.Category, &item.Location,
		&item.ItemDate, &item.ContactInfo, &item.Status, &photoMime,
		&item.CreatedAt, &item.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	item.PhotoMime = photoMime.String
	return item, nil
}

// ListItems returns reports ordered newest-first, optionally filtered by
// category and/or status equality. Empty filter values match everything.
func ListItems(ctx context.Context, db *sql.DB, category, status string) ([]model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items`
	var clauses []string
	var args []any

	if category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, category)
	}
	if status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, status)
	}
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		var photoMime sql.NullString
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Category,
			&item.Location, &item.ItemDate, &item.ContactInfo, &item.Status, &photoMime,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		item.PhotoMime = photoMime.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// ReplaceItem overwrites every report field. Returns false if no row with
// the given id exists.
func ReplaceItem(ctx context.Context, db *sql.DB, id int64, item *model.Item) (bool, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE items
		 SET title = ?, description = ?, category = ?, location = ?,
		     item_date = ?, contact_info = ?, status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		item.Title, item.Description, item.Category, item.Location,
		item.ItemDate, item.ContactInfo, item.Status, id,
	)
	if err != nil {
		return false, fmt.Errorf("replacing item: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("replacing item: %w", err)
	}
	return n > 0, nil
}

// UpdateItemStatus rewrites a report's status and category in a single
// atomic statement. The category flip on claim is decided by the caller;
// this accessor stays agnostic to that rule.
func UpdateItemStatus(ctx context.Context, db *sql.DB, id int64, status, category string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET status = ?, category = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		status, category, id,
	)
	if err != nil {
		return fmt.Errorf("updating item status: %w", err)
	}
	return nil
}

// DeleteItem permanently removes a report. Returns false if no row with the
// given id exists.
func DeleteItem(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting item: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting item: %w", err)
	}
	return n > 0, nil
}

// SetItemPhoto stores a report's photo. Returns false if no row with the
// given id exists.
func SetItemPhoto(ctx context.Context, db *sql.DB, id int64, photo []byte, mime string) (bool, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE items SET photo = ?, photo_mime = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		photo, mime, id,
	)
	if err != nil {
		return false, fmt.Errorf("setting item photo: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("setting item photo: %w", err)
	}
	return n > 0, nil
}

// GetItemPhoto returns a report's photo data and MIME type. Data is nil when
// the report does not exist or has no photo.
func GetItemPhoto(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var photo []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT photo, photo_mime FROM items WHERE id = ?`, id,
	).Scan(&photo, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item photo: %w", err)
	}
	return photo, mime.String, nil
}
