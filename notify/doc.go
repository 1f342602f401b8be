// Package notify reconciles the two notification read-state sources.
//
// User-scoped notifications carry read_at from the server; broadcast
// notifications carry nothing, so the device overlay tracks them. The two
// shapes are explicit variants (User, Global) rather than one struct with
// optional fields, and Reconciler.Unread branches on the variant:
//
//	User   → unread while read_at is null
//	Global → unread while the id is absent from the device read set
//
// MarkAllRead fans out the same way: global ids into the overlay, one
// server call when user-scoped items are present.
package notify
