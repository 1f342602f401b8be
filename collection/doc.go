// Package collection implements the paginated collection store.
//
// # Overview
//
// Every list-bearing screen in the client (products, orders, notifications,
// chats, messages, addresses, wishlist) accumulates server pages into one
// in-memory list and keys its infinite-scroll behavior off the server's
// reported total. This package is that shared state container: one generic
// Store per resource-plus-filter context.
//
// # Merge Rule
//
// A fetch for page 1 replaces the accumulated items entirely; a fetch for
// any later page appends the page's items to the end, preserving arrival
// order. No de-duplication is performed: the store does not defend against
// the server delivering the same item on two pages.
//
// # State Machine
//
//	idle → loading → {succeeded, failed}
//
// succeeded and failed re-enter loading on any further fetch. Only Reset
// returns a store to idle. A failed fetch preserves the previously
// accumulated items and total, so screens show stale data rather than
// blanking out.
//
// # Epoch Guard
//
// The store tolerates in-flight fetches that outlive a reset or filter
// change. Begin returns the current epoch; Reset bumps it. ApplyPage and
// Fail discard updates carrying a stale epoch, which prevents a late page
// response from appending items that belong to an abandoned filter context.
//
// # Concurrency
//
// All access is mutex-guarded and Snapshot returns defensive copies, the
// same discipline the rest of the client uses for shared state read by the
// presentation layer.
package collection
