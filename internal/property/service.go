package property

import (
	"fmt"
	"log/slog"

	"github.com/uninest/uninest/internal/user"
)

// Service provides property business logic: authorization, validation,
// persistence, and the post-creation notify workflow.
type Service struct {
	repo     *Repository
	notifier *Notifier
}

// NewService creates a property service. notifier may be nil, in which
// case creation skips the notify workflow.
func NewService(repo *Repository, notifier *Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// CreateInput is the validated payload for creating a property.
type CreateInput struct {
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Price       int64    `json:"price"`
	Type        Type     `json:"type"`
	Photos      []string `json:"photos"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Terms       string   `json:"terms"`
	Duration    Duration `json:"duration"`
}

// Create persists a new property for the actor and triggers the
// match-and-notify workflow. The property's landowner is always the
// actor, regardless of anything in the input.
func (s *Service) Create(actor *user.User, in CreateInput) (*Property, error) {
	if err := Authorize(actor, CapCreate, nil); err != nil {
		return nil, err
	}

	p := &Property{
		Title:       in.Title,
		Location:    in.Location,
		Price:       in.Price,
		Type:        in.Type,
		Photos:      in.Photos,
		Description: in.Description,
		Amenities:   in.Amenities,
		Terms:       in.Terms,
		Duration:    in.Duration,
		LandownerID: actor.ID,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.repo.Insert(p)
	if err != nil {
		return nil, fmt.Errorf("saving property: %w", err)
	}

	slog.Info("property created",
		"property_id", saved.ID, "title", saved.Title, "location", saved.Location)

	// Best-effort: the caller gets the created property no matter what
	// happens inside the notify workflow.
	if s.notifier != nil {
		s.notifier.PropertyCreated(saved)
	}

	return saved, nil
}

// UpdateInput carries optional field changes; nil means "leave unchanged".
type UpdateInput struct {
	Title       *string   `json:"title"`
	Location    *string   `json:"location"`
	Price       *int64    `json:"price"`
	Type        *Type     `json:"type"`
	Photos      *[]string `json:"photos"`
	Description *string   `json:"description"`
	Amenities   *[]string `json:"amenities"`
	Terms       *string   `json:"terms"`
	IsRented    *bool     `json:"is_rented"`
	Duration    *Duration `json:"duration"`
}

// Update applies changes to a property owned by the actor (or any
// property, for an admin).
func (s *Service) Update(actor *user.User, id int64, in UpdateInput) (*Property, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := Authorize(actor, CapUpdate, p); err != nil {
		return nil, err
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Type != nil {
		p.Type = *in.Type
	}
	if in.Photos != nil {
		p.Photos = *in.Photos
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Amenities != nil {
		p.Amenities = *in.Amenities
	}
	if in.Terms != nil {
		p.Terms = *in.Terms
	}
	if in.IsRented != nil {
		p.IsRented = *in.IsRented
	}
	if in.Duration != nil {
		p.Duration = *in.Duration
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Update(p)
}

// Delete removes a property owned by the actor (or any, for an admin).
func (s *Service) Delete(actor *user.User, id int64) error {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	if err := Authorize(actor, CapDelete, p); err != nil {
		return err
	}

	return s.repo.Delete(id)
}
