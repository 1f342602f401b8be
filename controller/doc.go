// Package controller drives paginated list screens.
//
// # Overview
//
// A Lister is the per-screen pagination controller: it owns the cursor
// (page, size, filters), issues fetches through a PageFunc, and merges
// results into a collection.Store. The presentation layer reads snapshots
// from the store and calls Refresh, LoadMore, Reset, and SetFilters in
// response to mount, scroll, pull-to-refresh, and filter edits.
//
// # Fetch Discipline
//
//   - Refresh: page-1 fetch; replaces accumulated items on success.
//   - LoadMore: next-page fetch; no-op while loading or when the list is
//     already complete.
//   - SetFilters: explicit clear-then-refetch. Filter changes never leave
//     old-filter items visible next to new-filter items.
//   - Reset: clear only; the caller decides when to refetch.
//
// List fetch failures are absorbed into the store (status failed, error
// recorded, stale items kept) instead of being returned. Mutating actions
// live elsewhere and do propagate their errors.
//
// # Debounce
//
// Debouncer coalesces the scroll-near-end signal. One timer per instance:
// the first signal arms it, signals during the window are dropped, the
// callback fires once when the window elapses. Wire it between the scroll
// handler and LoadMore.
package controller
