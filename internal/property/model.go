// Package property provides the property domain model, data access,
// authorization, and the location-match notification workflow.
package property

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors surfaced across the package. Handlers map these to
// HTTP statuses with errors.Is.
var (
	ErrNotFound  = errors.New("property not found")
	ErrForbidden = errors.New("forbidden")
	ErrInvalid   = errors.New("invalid property")
)

// Type represents the kind of housing on offer.
type Type string

const (
	TypeApartment Type = "Apartment"
	TypeRoom      Type = "Room"
	TypeStudio    Type = "Studio"
)

// ValidTypes is the set of allowed property types.
var ValidTypes = []Type{TypeApartment, TypeRoom, TypeStudio}

// IsValid checks if a property type is recognized.
func (t Type) IsValid() bool {
	for _, v := range ValidTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Duration represents a rental term.
type Duration string

const (
	DurationSemester Duration = "1 semester"
	DurationOneYear  Duration = "1 year"
	DurationTwoYears Duration = "2 years"
	// DurationFlexible doubles as a listing-filter sentinel: filtering on
	// "Flexible" means no duration constraint at all.
	DurationFlexible Duration = "Flexible"
)

// ValidDurations is the set of allowed rental terms.
var ValidDurations = []Duration{DurationSemester, DurationOneYear, DurationTwoYears, DurationFlexible}

// IsValid checks if a duration is recognized.
func (d Duration) IsValid() bool {
	for _, v := range ValidDurations {
		if d == v {
			return true
		}
	}
	return false
}

// Property represents a housing listing owned by exactly one landowner.
type Property struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Price       int64     `json:"price"`
	Type        Type      `json:"type"`
	Photos      []string  `json:"photos"`
	Description string    `json:"description"`
	Amenities   []string  `json:"amenities"`
	Terms       string    `json:"terms"`
	IsRented    bool      `json:"is_rented"`
	Duration    Duration  `json:"duration"`
	LandownerID int64     `json:"landowner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks the property fields against the domain rules.
func (p *Property) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if p.Location == "" {
		return fmt.Errorf("%w: location is required", ErrInvalid)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalid)
	}
	if !p.Type.IsValid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalid, p.Type)
	}
	if !p.Duration.IsValid() {
		return fmt.Errorf("%w: unknown duration %q", ErrInvalid, p.Duration)
	}
	return nil
}

// scanProperty scans a property from a database row.
func scanProperty(row interface{ Scan(...interface{}) error }) (*Property, error) {
	var p Property
	var typ, duration, photos, amenities string
	var isRented int

	err := row.Scan(
		&p.ID, &p.Title, &p.Location, &p.Price, &typ,
		&photos, &p.Description, &amenities, &p.Terms,
		&isRented, &duration, &p.LandownerID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Type = Type(typ)
	p.Duration = Duration(duration)
	p.IsRented = isRented != 0
	p.Photos = decodeStrings(photos)
	p.Amenities = decodeStrings(amenities)

	return &p, nil
}

// decodeStrings parses a JSON array column, tolerating malformed content.
func decodeStrings(raw string) []string {
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return []string{}
	}
	if out == nil {
		out = []string{}
	}
	return out
}

// encodeStrings renders a string slice as a JSON array column value.
func encodeStrings(values []string) string {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(b)
}
