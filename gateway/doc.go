// Package gateway provides the HTTP client for the storefront REST API.
//
// # Overview
//
// Every server interaction in the client goes through this package: catalog
// browsing, orders, addresses, chat, notifications, wishlist, profile, and
// authentication. It handles URL construction, JSON encoding/decoding, the
// bearer token header, and translation of non-2xx responses into APIError
// values.
//
// # Envelopes
//
// List endpoints answer with the standard envelope:
//
//	{ "data": [...], "meta": { "total": N }, "links": {...} }
//
// meta.total is the server's authoritative count of all items matching the
// filter, independent of page size; the pagination layer keys its has-more
// decision off it. Detail endpoints answer { "data": {...} } and mutations
// answer { "message": "...", "data": {...} }.
//
// # Error Model
//
// Transport failures come back wrapped with context ("execute request: ...").
// Non-2xx responses decode into *APIError carrying the HTTP status and the
// server's message field when the body provides one, so mutating screens can
// surface the server's own wording. The client performs no retries and no
// request cancellation beyond honoring the caller's context.
//
// # Pagination
//
// PageRequest carries page (1-based), size, and a flat filter map; blank
// filter values are dropped from the query string.
package gateway
