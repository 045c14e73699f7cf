package property

import (
	"database/sql"
	"fmt"
	"strings"
)

// Repository provides CRUD operations for properties.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a property repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const insertSQL = `INSERT INTO properties
	(title, location, price, type, photos, description, amenities, terms, is_rented, duration, landowner_id)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const selectColumns = `id, title, location, price, type, photos, description, amenities, terms, is_rented, duration, landowner_id, created_at, updated_at`

// Insert adds a new property and returns it with its generated ID.
func (r *Repository) Insert(p *Property) (*Property, error) {
	isRented := 0
	if p.IsRented {
		isRented = 1
	}

	result, err := r.db.Exec(insertSQL,
		p.Title, p.Location, p.Price, string(p.Type),
		encodeStrings(p.Photos), p.Description, encodeStrings(p.Amenities), p.Terms,
		isRented, string(p.Duration), p.LandownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting property: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	return r.GetByID(id)
}

// GetByID returns a property by its ID.
func (r *Repository) GetByID(id int64) (*Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties WHERE id = ?", selectColumns)
	row := r.db.QueryRow(query, id)

	p, err := scanProperty(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying property %d: %w", id, err)
	}

	return p, nil
}

// ListOptions controls filtering for List. Zero values mean "no constraint".
type ListOptions struct {
	Location string   // case-insensitive substring match
	Type     Type     // exact match
	MaxPrice *int64   // price <= MaxPrice
	Duration Duration // exact match; "Flexible" applies no constraint
}

// List returns matching properties, newest first.
func (r *Repository) List(opts ListOptions) ([]*Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties", selectColumns)
	var args []interface{}
	var conditions []string

	if opts.Location != "" {
		conditions = append(conditions, "LOWER(location) LIKE ?")
		args = append(args, "%"+strings.ToLower(opts.Location)+"%")
	}

	if opts.Type != "" {
		conditions = append(conditions, "type = ?")
		args = append(args, string(opts.Type))
	}

	if opts.MaxPrice != nil {
		conditions = append(conditions, "price <= ?")
		args = append(args, *opts.MaxPrice)
	}

	// "Flexible" is a sentinel meaning any duration matches
	if opts.Duration != "" && opts.Duration != DurationFlexible {
		conditions = append(conditions, "duration = ?")
		args = append(args, string(opts.Duration))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC, id DESC"

	return r.queryProperties(query, args...)
}

// ListByLandowner returns all properties owned by a landowner, newest first.
func (r *Repository) ListByLandowner(landownerID int64) ([]*Property, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM properties WHERE landowner_id = ? ORDER BY created_at DESC, id DESC",
		selectColumns,
	)
	return r.queryProperties(query, landownerID)
}

func (r *Repository) queryProperties(query string, args ...interface{}) ([]*Property, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var properties []*Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning property: %w", err)
		}
		properties = append(properties, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating properties: %w", err)
	}

	return properties, nil
}

// Update rewrites a property's mutable columns.
// LandownerID is never changed: ownership is fixed at creation.
func (r *Repository) Update(p *Property) (*Property, error) {
	isRented := 0
	if p.IsRented {
		isRented = 1
	}

	result, err := r.db.Exec(
		`UPDATE properties SET
			title = ?, location = ?, price = ?, type = ?, photos = ?,
			description = ?, amenities = ?, terms = ?, is_rented = ?, duration = ?,
			updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		p.Title, p.Location, p.Price, string(p.Type), encodeStrings(p.Photos),
		p.Description, encodeStrings(p.Amenities), p.Terms, isRented, string(p.Duration),
		p.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating property: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(p.ID)
}

// Delete removes a property by ID.
func (r *Repository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM properties WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting property: %w", err)
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
