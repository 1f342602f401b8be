package collection

import (
	"sync"
)

// Status is the fetch lifecycle state of a collection.
type Status int

const (
	// Idle is the pre-fetch state; only Reset returns a store to it.
	Idle Status = iota
	Loading
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Snapshot is an immutable view of a collection at a point in time.
type Snapshot[T any] struct {
	Items  []T
	Total  int
	Status Status
	Err    string
}

// HasMore reports whether the server holds items beyond what has been
// accumulated. Total may drift between polls; the comparison never assumes
// strict equality.
func (s Snapshot[T]) HasMore() bool {
	return len(s.Items) < s.Total
}

// Store accumulates one paginated resource list plus its fetch status and
// the server-reported total. Page 1 replaces the accumulated items, later
// pages append in arrival order without de-duplication.
//
// Every fetch runs under the epoch current at Begin time. Reset bumps the
// epoch, so a response from a superseded fetch is discarded instead of
// appending stale items after a reset or filter change.
type Store[T any] struct {
	mu     sync.RWMutex
	items  []T
	total  int
	status Status
	err    string
	epoch  uint64
}

// Begin marks the store loading and returns the epoch the caller must hand
// back to ApplyPage or Fail.
func (s *Store[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = Loading
	s.err = ""
	return s.epoch
}

// ApplyPage merges one fetched page. Page 1 replaces the accumulated items,
// any later page appends. Returns false when the epoch is stale and the page
// was discarded.
func (s *Store[T]) ApplyPage(epoch uint64, page int, items []T, total int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		return false
	}
	if page <= 1 {
		s.items = cloneItems(items)
	} else {
		s.items = append(s.items, items...)
	}
	s.total = total
	s.status = Succeeded
	s.err = ""
	return true
}

// Fail records a fetch failure. Accumulated items and total are preserved so
// screens keep showing stale-but-available data. Returns false when the
// epoch is stale.
func (s *Store[T]) Fail(epoch uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		return false
	}
	s.status = Failed
	if err != nil {
		s.err = err.Error()
	} else {
		s.err = "fetch failed"
	}
	return true
}

// Reset empties the store, returns it to Idle, and bumps the epoch so any
// in-flight fetch started before the reset is discarded on arrival.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.total = 0
	s.status = Idle
	s.err = ""
	s.epoch++
}

// Snapshot returns a defensive copy of the current state.
func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot[T]{
		Items:  cloneItems(s.items),
		Total:  s.total,
		Status: s.status,
		Err:    s.err,
	}
}

// HasMore reports whether another page exists beyond the accumulated items.
func (s *Store[T]) HasMore() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items) < s.total
}

// Len returns the number of accumulated items.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func cloneItems[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
