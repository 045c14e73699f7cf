package property

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/uninest/uninest/internal/bookmark"
	"github.com/uninest/uninest/internal/email"
	"github.com/uninest/uninest/internal/notification"
)

// Notifier alerts users whose bookmarked property's location overlaps a
// newly created property's location. The whole workflow is best-effort:
// it runs after the property is persisted and must never affect the
// outcome of the creation request, so every failure is logged and
// processing moves on to the next bookmark.
type Notifier struct {
	bookmarks     *bookmark.Repository
	properties    *Repository
	notifications *notification.Repository
	sender        email.Sender
	frontendURL   string
}

// NewNotifier creates a notifier.
func NewNotifier(
	bookmarks *bookmark.Repository,
	properties *Repository,
	notifications *notification.Repository,
	sender email.Sender,
	frontendURL string,
) *Notifier {
	return &Notifier{
		bookmarks:     bookmarks,
		properties:    properties,
		notifications: notifications,
		sender:        sender,
		frontendURL:   strings.TrimSuffix(frontendURL, "/"),
	}
}

// PropertyCreated runs the match-and-notify workflow for a newly created
// property: one notification and one email per bookmark whose property's
// location overlaps the new property's location.
func (n *Notifier) PropertyCreated(p *Property) {
	bookmarks, err := n.bookmarks.ListByItemType(bookmark.ItemTypeProperty)
	if err != nil {
		slog.Error("notify: listing bookmarks", "property_id", p.ID, "error", err)
		return
	}

	for _, b := range bookmarks {
		bookmarked, err := n.properties.GetByID(b.ItemID)
		if err != nil {
			// Bookmark target gone (or unreadable): skip, never fail the loop
			slog.Warn("notify: skipping bookmark without valid property",
				"bookmark_id", b.ID, "item_id", b.ItemID, "error", err)
			continue
		}

		if !LocationsMatch(p.Location, bookmarked.Location) {
			continue
		}

		if _, err := n.notifications.Add(b.UserID, alertMessage(p)); err != nil {
			slog.Error("notify: storing notification",
				"bookmark_id", b.ID, "user_id", b.UserID, "error", err)
		}

		msg := email.Message{
			To:      b.UserEmail,
			Subject: "New Rent Alert",
			Text:    alertEmailText(b.UserName, p, n.frontendURL),
		}
		if err := n.sender.Send(msg); err != nil {
			slog.Error("notify: sending email",
				"bookmark_id", b.ID, "to", b.UserEmail, "error", err)
		}
	}
}

// LocationsMatch reports whether two location strings overlap.
// The test is a deliberately loose bidirectional substring containment on
// the lowercased strings, so "Melbourne" matches "Melbourne CBD".
func LocationsMatch(a, b string) bool {
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

func alertMessage(p *Property) string {
	return fmt.Sprintf("New property available in your preferred location: %s", p.Title)
}

func alertEmailText(name string, p *Property, frontendURL string) string {
	greeting := "Hi"
	if name != "" {
		greeting = fmt.Sprintf("Hi %s", name)
	}
	return fmt.Sprintf(
		"%s,\n\nA new property in your preferred location (%s) is now available: %s\n\nView: %s/property/%d",
		greeting, p.Location, p.Title, frontendURL, p.ID,
	)
}
