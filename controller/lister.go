package controller

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/perchgoods/storefront/collection"
	"github.com/perchgoods/storefront/gateway"
)

// PageFunc fetches one page of a resource and returns the page's items plus
// the server-reported total.
type PageFunc[T any] func(ctx context.Context, req gateway.PageRequest) ([]T, int, error)

// Lister owns the pagination cursor for one list screen: the current page,
// the page size, and the active filters. It drives fetches through a PageFunc
// and merges results into its collection store.
//
// List fetch errors are absorbed into the store's status rather than
// returned; screens render the stale list and an optional retry affordance.
type Lister[T any] struct {
	store *collection.Store[T]
	fetch PageFunc[T]
	size  int
	log   zerolog.Logger

	mu      sync.Mutex
	page    int
	filters map[string]string
}

// NewLister builds a Lister with an empty store and the cursor at page 1.
func NewLister[T any](fetch PageFunc[T], size int, log zerolog.Logger) *Lister[T] {
	if size <= 0 {
		size = 10
	}
	return &Lister[T]{
		store: &collection.Store[T]{},
		fetch: fetch,
		size:  size,
		log:   log,
		page:  1,
	}
}

// Snapshot returns the current collection state.
func (l *Lister[T]) Snapshot() collection.Snapshot[T] {
	return l.store.Snapshot()
}

// HasMore reports whether the server holds more items than accumulated.
func (l *Lister[T]) HasMore() bool {
	return l.store.HasMore()
}

// Filters returns a copy of the active filters.
func (l *Lister[T]) Filters() map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneFilters(l.filters)
}

// Refresh fetches page 1 under the current filters. Page 1 replaces the
// accumulated items, so this backs both initial load and pull-to-refresh.
func (l *Lister[T]) Refresh(ctx context.Context) {
	l.mu.Lock()
	l.page = 1
	filters := cloneFilters(l.filters)
	l.mu.Unlock()

	l.fetchPage(ctx, 1, filters)
}

// LoadMore fetches the next page. It is a no-op while a fetch is in flight
// or when the accumulated items already cover the server total.
func (l *Lister[T]) LoadMore(ctx context.Context) {
	if l.store.Snapshot().Status == collection.Loading {
		return
	}
	if !l.store.HasMore() {
		return
	}

	l.mu.Lock()
	next := l.page + 1
	filters := cloneFilters(l.filters)
	l.mu.Unlock()

	l.fetchPage(ctx, next, filters)
}

// Reset empties the store and returns the cursor to page 1 without fetching.
// The next Refresh populates fresh data; an in-flight fetch started before
// the reset is discarded by the store's epoch guard.
func (l *Lister[T]) Reset() {
	l.mu.Lock()
	l.page = 1
	l.mu.Unlock()
	l.store.Reset()
}

// SetFilters replaces the filter set and atomically restarts the list:
// clear, cursor to page 1, fresh page-1 fetch. Stale items from the old
// filter context never coexist with the new one.
func (l *Lister[T]) SetFilters(ctx context.Context, filters map[string]string) {
	l.mu.Lock()
	l.filters = cloneFilters(filters)
	l.page = 1
	l.mu.Unlock()

	l.store.Reset()
	l.fetchPage(ctx, 1, cloneFilters(filters))
}

func (l *Lister[T]) fetchPage(ctx context.Context, page int, filters map[string]string) {
	epoch := l.store.Begin()

	items, total, err := l.fetch(ctx, gateway.PageRequest{
		Page:    page,
		Size:    l.size,
		Filters: filters,
	})
	if err != nil {
		if l.store.Fail(epoch, err) {
			l.log.Warn().Err(err).Int("page", page).Msg("list fetch failed")
		}
		return
	}
	if l.store.ApplyPage(epoch, page, items, total) {
		l.mu.Lock()
		l.page = page
		l.mu.Unlock()
	}
}

func cloneFilters(filters map[string]string) map[string]string {
	if len(filters) == 0 {
		return nil
	}
	dup := make(map[string]string, len(filters))
	for k, v := range filters {
		dup[k] = v
	}
	return dup
}
