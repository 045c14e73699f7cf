package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/uninest/uninest/internal/property"
)

// handleProperties routes /api/properties requests.
func (s *Server) handleProperties(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/properties")
	path = strings.TrimPrefix(path, "/")

	// /api/properties — list or create
	if path == "" {
		switch r.Method {
		case http.MethodGet:
			s.apiListProperties(w, r)
		case http.MethodPost:
			s.apiCreateProperty(w, r)
		default:
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// /api/properties/landowner/my-properties
	if path == "landowner/my-properties" {
		if r.Method != http.MethodGet {
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.apiMyProperties(w, r)
		return
	}

	// /api/properties/{id}
	id, err := strconv.ParseInt(path, 10, 64)
	if err != nil {
		apiError(w, "invalid property ID", http.StatusBadRequest)
		return
	}
	switch r.Method {
	case http.MethodGet:
		s.apiGetProperty(w, id)
	case http.MethodPut:
		s.apiUpdateProperty(w, r, id)
	case http.MethodDelete:
		s.apiDeleteProperty(w, r, id)
	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// apiListProperties returns properties matching the query filters.
func (s *Server) apiListProperties(w http.ResponseWriter, r *http.Request) {
	opts := property.ListOptions{
		Location: strings.TrimSpace(r.URL.Query().Get("location")),
	}

	if t := r.URL.Query().Get("type"); t != "" {
		typ := property.Type(t)
		if !typ.IsValid() {
			apiError(w, "invalid type", http.StatusBadRequest)
			return
		}
		opts.Type = typ
	}

	if p := r.URL.Query().Get("maxPrice"); p != "" {
		max, err := strconv.ParseInt(p, 10, 64)
		if err != nil || max < 0 {
			apiError(w, "maxPrice must be a non-negative integer", http.StatusBadRequest)
			return
		}
		opts.MaxPrice = &max
	}

	if d := r.URL.Query().Get("duration"); d != "" {
		dur := property.Duration(d)
		if !dur.IsValid() {
			apiError(w, "invalid duration", http.StatusBadRequest)
			return
		}
		opts.Duration = dur
	}

	props, err := s.propRepo.List(opts)
	if err != nil {
		apiError(w, "listing properties", http.StatusInternalServerError)
		return
	}
	if props == nil {
		props = make([]*property.Property, 0)
	}

	apiJSON(w, props, http.StatusOK)
}

// apiCreateProperty creates a property for the authenticated actor.
func (s *Server) apiCreateProperty(w http.ResponseWriter, r *http.Request) {
	actor := requireUser(w, r)
	if actor == nil {
		return
	}

	var in property.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	p, err := s.propService.Create(actor, in)
	if err != nil {
		serviceError(w, err)
		return
	}

	apiJSON(w, p, http.StatusCreated)
}

// apiGetProperty returns a single property.
func (s *Server) apiGetProperty(w http.ResponseWriter, id int64) {
	p, err := s.propRepo.GetByID(id)
	if err != nil {
		serviceError(w, err)
		return
	}
	apiJSON(w, p, http.StatusOK)
}

// apiMyProperties returns the caller's own properties, newest first.
func (s *Server) apiMyProperties(w http.ResponseWriter, r *http.Request) {
	actor := requireUser(w, r)
	if actor == nil {
		return
	}

	props, err := s.propRepo.ListByLandowner(actor.ID)
	if err != nil {
		apiError(w, "listing properties", http.StatusInternalServerError)
		return
	}
	if props == nil {
		props = make([]*property.Property, 0)
	}

	apiJSON(w, props, http.StatusOK)
}

// apiUpdateProperty applies changes to a property owned by the actor.
func (s *Server) apiUpdateProperty(w http.ResponseWriter, r *http.Request, id int64) {
	actor := requireUser(w, r)
	if actor == nil {
		return
	}

	var in property.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	p, err := s.propService.Update(actor, id, in)
	if err != nil {
		serviceError(w, err)
		return
	}

	apiJSON(w, p, http.StatusOK)
}

// apiDeleteProperty removes a property owned by the actor.
func (s *Server) apiDeleteProperty(w http.ResponseWriter, r *http.Request, id int64) {
	actor := requireUser(w, r)
	if actor == nil {
		return
	}

	if err := s.propService.Delete(actor, id); err != nil {
		serviceError(w, err)
		return
	}

	apiJSON(w, map[string]bool{"success": true}, http.StatusOK)
}
