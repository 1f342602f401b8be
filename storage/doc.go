// Package storage provides device-local persistent key-value storage.
//
// # Overview
//
// The storefront core keeps a handful of values on the device itself, with no
// server round-trip: the cart, the set of locally-read global notification
// ids, the auth token, and a stable device identifier. This package defines
// the Store interface those features persist through, plus two
// implementations:
//
//   - FileStore: one JSON file per key under the configured data directory
//   - MemStore: in-memory, for tests
//
// # Write Semantics
//
// Set overwrites the entire value for a key. Persistence is not atomic across
// a process crash mid-write; callers serialize the whole value each time and
// tolerate a torn write by treating unparseable state as absent.
//
// FileStore serializes access per key with a dedicated mutex. The UI event
// loop is effectively single-threaded, but best-effort persistence runs on
// background goroutines, so two writers for the same key must not interleave.
//
// # Error Model
//
// Backend failures wrap ErrStorage; reads of never-written keys return
// ErrNotFound. Callers decide severity: the cart treats storage failure as
// fatal to the operation, the read-state overlay degrades to an empty set.
package storage
