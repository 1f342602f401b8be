package controller

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of trigger signals into one callback per
// window. A single timer backs each instance: the first Trigger arms it,
// further Triggers while it is armed are dropped, and firing clears the
// timer so the next Trigger can arm a fresh one.
//
// The scroll-near-end signal of every list screen runs through one of
// these so a burst of scroll events produces at most one LoadMore.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// DefaultDelay matches the observed 500ms scroll debounce.
const DefaultDelay = 500 * time.Millisecond

// NewDebouncer builds a Debouncer with the given window.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger requests fn after the debounce window. While a timer is armed,
// additional Triggers are dropped; their fn is never called.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		return
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
}

// Stop cancels any armed timer. A pending callback that has not fired yet
// is dropped.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
