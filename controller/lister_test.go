package controller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/perchgoods/storefront/collection"
	"github.com/perchgoods/storefront/gateway"
)

// pages fakes a server holding a fixed item list, slicing it per request.
func pages(all []string) PageFunc[string] {
	return func(_ context.Context, req gateway.PageRequest) ([]string, int, error) {
		start := (req.Page - 1) * req.Size
		if start >= len(all) {
			return nil, len(all), nil
		}
		end := start + req.Size
		if end > len(all) {
			end = len(all)
		}
		return all[start:end], len(all), nil
	}
}

func TestLister_RefreshThenLoadMoreAccumulates(t *testing.T) {
	all := []string{"a", "b", "c", "d", "e"}
	l := NewLister(pages(all), 2, zerolog.Nop())

	l.Refresh(context.Background())
	snap := l.Snapshot()
	if len(snap.Items) != 2 || snap.Items[0] != "a" {
		t.Fatalf("items after refresh = %v, want [a b]", snap.Items)
	}
	if snap.Total != 5 || !l.HasMore() {
		t.Fatalf("total = %d hasMore = %v, want 5/true", snap.Total, l.HasMore())
	}

	l.LoadMore(context.Background())
	l.LoadMore(context.Background())
	snap = l.Snapshot()
	if len(snap.Items) != 5 {
		t.Fatalf("items = %v, want all 5", snap.Items)
	}
	if l.HasMore() {
		t.Fatal("HasMore() = true after full accumulation")
	}

	// Further LoadMore calls are no-ops.
	l.LoadMore(context.Background())
	if got := l.Snapshot(); len(got.Items) != 5 {
		t.Fatalf("items = %v after extra LoadMore, want unchanged", got.Items)
	}
}

func TestLister_LoadMoreNoOpBeforeFirstPage(t *testing.T) {
	var calls atomic.Int32
	fetch := func(context.Context, gateway.PageRequest) ([]string, int, error) {
		calls.Add(1)
		return nil, 0, nil
	}
	l := NewLister(fetch, 10, zerolog.Nop())

	// Empty store: items(0) == total(0), so there is nothing more to load.
	l.LoadMore(context.Background())
	if calls.Load() != 0 {
		t.Fatalf("fetch calls = %d, want 0 before initial refresh", calls.Load())
	}
}

func TestLister_LoadMoreNoOpWhileLoading(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	fetch := func(context.Context, gateway.PageRequest) ([]string, int, error) {
		if calls.Add(1) == 1 {
			close(entered)
			<-release
		}
		return []string{"a"}, 3, nil
	}
	l := NewLister(fetch, 1, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Refresh(context.Background())
	}()

	<-entered
	l.LoadMore(context.Background()) // store is Loading; must not fetch
	if calls.Load() != 1 {
		t.Fatalf("fetch calls = %d during in-flight fetch, want 1", calls.Load())
	}
	close(release)
	<-done

	l.LoadMore(context.Background())
	if calls.Load() != 2 {
		t.Fatalf("fetch calls = %d after load-more, want 2", calls.Load())
	}
}

func TestLister_SetFiltersRestartsFromPageOne(t *testing.T) {
	var gotFilters []map[string]string
	var gotPages []int
	fetch := func(_ context.Context, req gateway.PageRequest) ([]string, int, error) {
		gotFilters = append(gotFilters, req.Filters)
		gotPages = append(gotPages, req.Page)
		return []string{"item-" + req.Filters["search"]}, 1, nil
	}
	l := NewLister(fetch, 10, zerolog.Nop())

	l.SetFilters(context.Background(), map[string]string{"search": "oak"})
	snap := l.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0] != "item-oak" {
		t.Fatalf("items = %v, want [item-oak]", snap.Items)
	}

	l.SetFilters(context.Background(), map[string]string{"search": "pine"})
	snap = l.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0] != "item-pine" {
		t.Fatalf("items = %v, want only new-filter items", snap.Items)
	}

	for i, page := range gotPages {
		if page != 1 {
			t.Fatalf("fetch %d used page %d, want 1 after filter change", i, page)
		}
	}
	if gotFilters[0]["search"] != "oak" || gotFilters[1]["search"] != "pine" {
		t.Fatalf("filters = %v, want oak then pine", gotFilters)
	}
}

func TestLister_ResetDiscardsInFlightResponse(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	fetch := func(context.Context, gateway.PageRequest) ([]string, int, error) {
		close(entered)
		<-release
		return []string{"stale"}, 10, nil
	}
	l := NewLister(fetch, 10, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Refresh(context.Background())
	}()

	<-entered
	l.Reset() // supersedes the in-flight fetch
	close(release)
	<-done

	snap := l.Snapshot()
	if len(snap.Items) != 0 || snap.Total != 0 {
		t.Fatalf("snapshot = %+v, want stale response discarded", snap)
	}
	if snap.Status != collection.Idle {
		t.Fatalf("status = %v, want idle after reset", snap.Status)
	}
}

func TestLister_FetchErrorAbsorbedIntoStore(t *testing.T) {
	fetch := func(context.Context, gateway.PageRequest) ([]string, int, error) {
		return nil, 0, errors.New("gateway down")
	}
	l := NewLister(fetch, 10, zerolog.Nop())

	l.Refresh(context.Background())
	snap := l.Snapshot()
	if snap.Status != collection.Failed {
		t.Fatalf("status = %v, want failed", snap.Status)
	}
	if snap.Err != "gateway down" {
		t.Fatalf("err = %q, want gateway down", snap.Err)
	}
}

func TestDebouncer_CollapsesBursts(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	t.Cleanup(d.Stop)

	var fired atomic.Int32
	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		d.Trigger(func() {
			fired.Add(1)
			close(done)
		})
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced callback never fired")
	}
	// Give any spurious extra callbacks a chance to land.
	time.Sleep(60 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Fatalf("callback fired %d times for 10 triggers, want 1", got)
	}
}

func TestDebouncer_ReArmsAfterFire(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	t.Cleanup(d.Stop)

	var fired atomic.Int32
	first := make(chan struct{})
	d.Trigger(func() {
		fired.Add(1)
		close(first)
	})
	<-first

	second := make(chan struct{})
	d.Trigger(func() {
		fired.Add(1)
		close(second)
	})
	select {
	case <-second:
	case <-time.After(2 * time.Second):
		t.Fatal("second trigger never fired")
	}
	if got := fired.Load(); got != 2 {
		t.Fatalf("callback fired %d times, want 2", got)
	}
}

func TestDebouncer_StopDropsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Fatalf("callback fired %d times after Stop, want 0", got)
	}
}
