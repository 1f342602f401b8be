// Package overlay tracks device-local read state for notifications.
//
// Global (broadcast) notifications carry no server-side read tracking, so
// the device records which ids the user has seen. The set is loaded once at
// startup, mutated synchronously in memory, and persisted asynchronously:
// a storage failure costs durability, never the interaction. Loading
// degrades to an empty set on any failure — "nothing read" is the safe
// default.
package overlay
