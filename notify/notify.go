package notify

import (
	"context"

	"github.com/perchgoods/storefront/gateway"
	"github.com/perchgoods/storefront/overlay"
)

// Item is one notification in a mixed list. Exactly two variants exist:
// User (server-scoped, server-tracked read state) and Global (broadcast,
// device-tracked read state). The variant determines where "read" lives;
// no field probing at runtime.
type Item interface {
	NotificationID() string
	notification()
}

// User is a server-scoped notification. It is unread while read_at is null.
type User struct {
	gateway.UserNotification
}

func (u User) NotificationID() string { return u.ID }
func (User) notification()            {}

// Global is a broadcast notification with no server read state; the device
// overlay decides whether it has been seen.
type Global struct {
	gateway.GlobalNotification
}

func (g Global) NotificationID() string { return g.ID }
func (Global) notification()            {}

// WrapUser adapts a page of user notifications into Items.
func WrapUser(notifications []gateway.UserNotification) []Item {
	items := make([]Item, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, User{n})
	}
	return items
}

// WrapGlobal adapts a page of global notifications into Items.
func WrapGlobal(notifications []gateway.GlobalNotification) []Item {
	items := make([]Item, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, Global{n})
	}
	return items
}

// ServerMarker is the slice of the gateway the reconciler needs for the
// server-scoped branch of mark-all-read.
type ServerMarker interface {
	MarkNotificationsRead(ctx context.Context) error
}

// Reconciler merges the two read-state sources into one unread predicate.
type Reconciler struct {
	reads  *overlay.ReadSet
	server ServerMarker
}

// NewReconciler builds a Reconciler over the device overlay and the server
// mark-read endpoint.
func NewReconciler(reads *overlay.ReadSet, server ServerMarker) *Reconciler {
	return &Reconciler{reads: reads, server: server}
}

// Unread reports whether the user has yet to see the item.
func (r *Reconciler) Unread(item Item) bool {
	switch v := item.(type) {
	case User:
		return v.ReadAt == nil
	case Global:
		return !r.reads.IsRead(v.ID)
	}
	return false
}

// UnreadCount counts unread items, feeding the badge.
func (r *Reconciler) UnreadCount(items []Item) int {
	count := 0
	for _, item := range items {
		if r.Unread(item) {
			count++
		}
	}
	return count
}

// MarkAllRead marks every visible item read. Global items go to the device
// overlay in one bulk write. If any server-scoped item is present, the
// server endpoint is called too; its error propagates and the caller
// refetches on success to pick up the new read_at stamps.
func (r *Reconciler) MarkAllRead(ctx context.Context, items []Item) error {
	var globalIDs []string
	hasUser := false
	for _, item := range items {
		switch v := item.(type) {
		case User:
			hasUser = true
		case Global:
			globalIDs = append(globalIDs, v.ID)
		}
	}

	r.reads.MarkAllRead(globalIDs)

	if hasUser {
		return r.server.MarkNotificationsRead(ctx)
	}
	return nil
}
