package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/perchgoods/storefront/gateway"
	"github.com/perchgoods/storefront/overlay"
	"github.com/perchgoods/storefront/storage"
)

type fakeMarker struct {
	calls int
	err   error
}

func (f *fakeMarker) MarkNotificationsRead(context.Context) error {
	f.calls++
	return f.err
}

func newReconciler(t *testing.T) (*Reconciler, *overlay.ReadSet, *fakeMarker) {
	t.Helper()
	reads := overlay.Load(storage.NewMemStore(), zerolog.Nop())
	marker := &fakeMarker{}
	return NewReconciler(reads, marker), reads, marker
}

func TestUnread_BranchesByVariant(t *testing.T) {
	r, reads, _ := newReconciler(t)
	readAt := time.Now()

	tests := []struct {
		name string
		item Item
		prep func()
		want bool
	}{
		{
			name: "user notification without read_at is unread",
			item: User{gateway.UserNotification{ID: "u1"}},
			want: true,
		},
		{
			name: "user notification with read_at is read",
			item: User{gateway.UserNotification{ID: "u2", ReadAt: &readAt}},
			want: false,
		},
		{
			name: "global notification unseen on device is unread",
			item: Global{gateway.GlobalNotification{ID: "g1"}},
			want: true,
		},
		{
			name: "global notification in device read set is read",
			item: Global{gateway.GlobalNotification{ID: "g2"}},
			prep: func() { reads.MarkRead("g2") },
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prep != nil {
				tt.prep()
			}
			if got := r.Unread(tt.item); got != tt.want {
				t.Fatalf("Unread = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnreadCount(t *testing.T) {
	r, reads, _ := newReconciler(t)
	reads.MarkRead("g1")
	readAt := time.Now()

	items := []Item{
		User{gateway.UserNotification{ID: "u1"}},                 // unread
		User{gateway.UserNotification{ID: "u2", ReadAt: &readAt}}, // read
		Global{gateway.GlobalNotification{ID: "g1"}},             // read on device
		Global{gateway.GlobalNotification{ID: "g2"}},             // unread
	}
	if got := r.UnreadCount(items); got != 2 {
		t.Fatalf("UnreadCount = %d, want 2", got)
	}
}

func TestMarkAllRead_GlobalOnlySkipsServer(t *testing.T) {
	r, reads, marker := newReconciler(t)

	items := WrapGlobal([]gateway.GlobalNotification{{ID: "g1"}, {ID: "g2"}})
	if err := r.MarkAllRead(context.Background(), items); err != nil {
		t.Fatalf("MarkAllRead returned error: %v", err)
	}
	reads.Flush()

	if marker.calls != 0 {
		t.Fatalf("server calls = %d for global-only list, want 0", marker.calls)
	}
	for _, item := range items {
		if r.Unread(item) {
			t.Fatalf("item %s still unread after MarkAllRead", item.NotificationID())
		}
	}
}

func TestMarkAllRead_UserItemsHitServer(t *testing.T) {
	r, _, marker := newReconciler(t)

	items := append(
		WrapUser([]gateway.UserNotification{{ID: "u1"}}),
		WrapGlobal([]gateway.GlobalNotification{{ID: "g1"}})...,
	)
	if err := r.MarkAllRead(context.Background(), items); err != nil {
		t.Fatalf("MarkAllRead returned error: %v", err)
	}
	if marker.calls != 1 {
		t.Fatalf("server calls = %d, want 1", marker.calls)
	}

	// Server failure propagates; the device branch still applied.
	marker.err = errors.New("server down")
	err := r.MarkAllRead(context.Background(), items)
	if err == nil {
		t.Fatal("MarkAllRead returned nil error, want server failure")
	}
	if !r.Unread(items[0]) {
		// read_at only flips after a refetch; the local item is unchanged
		t.Fatal("user item flipped to read without refetch")
	}
}
