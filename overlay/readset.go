package overlay

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/perchgoods/storefront/storage"
)

// ReadSet tracks which global notification ids this device has seen. The
// in-memory set is the source of truth; persistence is best-effort and
// asynchronous. A mutation returns as soon as memory is updated, and a
// failed write is logged, never propagated.
type ReadSet struct {
	store storage.Store
	log   zerolog.Logger

	mu  sync.Mutex
	ids map[string]struct{}

	pending sync.WaitGroup
}

// Load reads the persisted id set. Absence, backend failure, and parse
// failure all degrade to an empty set: the worst outcome is notifications
// showing unread again.
func Load(store storage.Store, log zerolog.Logger) *ReadSet {
	r := &ReadSet{
		store: store,
		log:   log,
		ids:   make(map[string]struct{}),
	}

	bytes, err := store.Get(storage.KeyReadSet)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Warn().Err(err).Msg("read-state load failed, starting empty")
		}
		return r
	}
	var ids []string
	if err := json.Unmarshal(bytes, &ids); err != nil {
		log.Warn().Err(err).Msg("read-state unparseable, starting empty")
		return r
	}
	for _, id := range ids {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			r.ids[trimmed] = struct{}{}
		}
	}
	return r
}

// IsRead reports whether id has been marked read. Blank ids are never read.
func (r *ReadSet) IsRead(id string) bool {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.ids[trimmed]
	return ok
}

// MarkRead adds id to the set. Idempotent: marking an already-read id does
// not rewrite storage.
func (r *ReadSet) MarkRead(id string) {
	r.MarkAllRead([]string{id})
}

// MarkAllRead adds every id in bulk, persisting once. A call that adds
// nothing new is a no-op.
func (r *ReadSet) MarkAllRead(ids []string) {
	r.mu.Lock()
	changed := false
	for _, id := range ids {
		trimmed := strings.TrimSpace(id)
		if trimmed == "" {
			continue
		}
		if _, ok := r.ids[trimmed]; !ok {
			r.ids[trimmed] = struct{}{}
			changed = true
		}
	}
	var snapshot []string
	if changed {
		snapshot = r.snapshotLocked()
	}
	r.mu.Unlock()

	if changed {
		r.persistAsync(snapshot)
	}
}

// Clear empties the set. The in-memory set clears even when the persisted
// record cannot be removed.
func (r *ReadSet) Clear() {
	r.mu.Lock()
	r.ids = make(map[string]struct{})
	r.mu.Unlock()

	r.pending.Add(1)
	go func() {
		defer r.pending.Done()
		if err := r.store.Remove(storage.KeyReadSet); err != nil {
			r.log.Warn().Err(err).Msg("read-state clear failed")
		}
	}()
}

// Len returns the number of read ids.
func (r *ReadSet) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ids)
}

// Flush waits for in-flight persistence writes. Call it on shutdown and in
// tests; normal mutation paths never block on it.
func (r *ReadSet) Flush() {
	r.pending.Wait()
}

func (r *ReadSet) snapshotLocked() []string {
	ids := make([]string, 0, len(r.ids))
	for id := range r.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (r *ReadSet) persistAsync(ids []string) {
	r.pending.Add(1)
	go func() {
		defer r.pending.Done()
		encoded, err := json.Marshal(ids)
		if err != nil {
			r.log.Warn().Err(err).Msg("read-state encode failed")
			return
		}
		if err := r.store.Set(storage.KeyReadSet, encoded); err != nil {
			r.log.Warn().Err(err).Msg("read-state persist failed")
		}
	}()
}
