// Package storefront is the engine of a mobile storefront client: catalog
// browsing, cart, checkout, order tracking, chat, and notifications over a
// REST backend, with the state layer every list screen shares.
//
// # Architecture
//
// The core is the paginated list synchronization pattern the screens
// repeat: accumulate server pages into an in-memory list, key load-more off
// the server-reported total, reset and refetch when a filter changes, and
// overlay device-local state (cart contents, read receipts) on top of
// server data.
//
//	config     → client settings (TOML + env)
//	gateway    → typed HTTP client for the REST API
//	storage    → device-local key-value persistence
//	collection → generic paginated collection store
//	controller → per-screen pagination cursor + debounce
//	cart       → device-local cart and checkout
//	overlay    → device-scoped read-state set
//	notify     → read-state reconciliation across both scopes
//	account    → session and auth flows
//
// App in this package composes the pieces; screens take their listers and
// engines from it by dependency injection rather than ambient globals.
//
// # Error Policy
//
// List fetches absorb failures into collection state so screens keep
// showing the last good data. Mutating actions (checkout, login, address
// creation, wishlist toggle) propagate their errors for alert display.
// Device storage failures are fatal for the cart, best-effort everywhere
// else.
package storefront
