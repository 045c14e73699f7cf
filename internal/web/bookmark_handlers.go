package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/uninest/uninest/internal/bookmark"
)

// handleBookmarks routes /api/bookmarks requests.
func (s *Server) handleBookmarks(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/bookmarks")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			s.apiListBookmarks(w, r)
		case http.MethodPost:
			s.apiAddBookmark(w, r)
		default:
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// /api/bookmarks/{id}
	id, err := strconv.ParseInt(path, 10, 64)
	if err != nil {
		apiError(w, "invalid bookmark ID", http.StatusBadRequest)
		return
	}
	if r.Method != http.MethodDelete {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.apiDeleteBookmark(w, r, id)
}

// apiListBookmarks returns the caller's bookmarks, newest first.
func (s *Server) apiListBookmarks(w http.ResponseWriter, r *http.Request) {
	actor := requireUser(w, r)
	if actor == nil {
		return
	}

	bookmarks, err := s.bookmarks.ListByUser(actor.ID)
	if err != nil {
		apiError(w, "listing bookmarks", http.StatusInternalServerError)
		return
	}
	if bookmarks == nil {
		bookmarks = make([]*bookmark.Bookmark, 0)
	}

	apiJSON(w, bookmarks, http.StatusOK)
}

// apiAddBookmark records a bookmark for the caller. The target item is
// not checked for existence.
func (s *Server) apiAddBookmark(w http.ResponseWriter, r *http.Request) {
	actor := requireUser(w, r)
	if actor == nil {
		return
	}

	var req struct {
		ItemType string `json:"itemType"`
		ItemID   int64  `json:"itemId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.ItemType == "" {
		req.ItemType = string(bookmark.ItemTypeProperty)
	}
	if req.ItemType != string(bookmark.ItemTypeProperty) {
		apiError(w, "unsupported item type", http.StatusBadRequest)
		return
	}
	if req.ItemID <= 0 {
		apiError(w, "itemId is required", http.StatusBadRequest)
		return
	}

	b, err := s.bookmarks.Add(bookmark.ItemType(req.ItemType), req.ItemID, actor.ID)
	if err != nil {
		apiError(w, "adding bookmark", http.StatusInternalServerError)
		return
	}

	apiJSON(w, b, http.StatusCreated)
}

// apiDeleteBookmark removes one of the caller's bookmarks.
func (s *Server) apiDeleteBookmark(w http.ResponseWriter, r *http.Request, id int64) {
	actor := requireUser(w, r)
	if actor == nil {
		return
	}

	// Only the owner may remove a bookmark
	owned, err := s.bookmarks.ListByUser(actor.ID)
	if err != nil {
		apiError(w, "loading bookmarks", http.StatusInternalServerError)
		return
	}
	mine := false
	for _, b := range owned {
		if b.ID == id {
			mine = true
			break
		}
	}
	if !mine {
		apiError(w, "bookmark not found", http.StatusNotFound)
		return
	}

	if err := s.bookmarks.Delete(id); err != nil {
		apiError(w, "deleting bookmark", http.StatusInternalServerError)
		return
	}

	apiJSON(w, map[string]bool{"success": true}, http.StatusOK)
}
