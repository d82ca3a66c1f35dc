package client

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// scriptedSearch lets tests control when each query returns.
type scriptedSearch struct {
	mu      sync.Mutex
	calls   []string
	results map[string][]Candidate
	block   map[string]chan struct{}
}

func newScriptedSearch() *scriptedSearch {
	return &scriptedSearch{
		results: make(map[string][]Candidate),
		block:   make(map[string]chan struct{}),
	}
}

func (f *scriptedSearch) SearchTitles(ctx context.Context, query string) ([]Candidate, error) {
	f.mu.Lock()
	f.calls = append(f.calls, query)
	gate := f.block[query]
	results := f.results[query]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return results, nil
}

func (f *scriptedSearch) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type delivered struct {
	query   string
	results []Candidate
}

func collectDeliveries() (func(string, []Candidate), func() []delivered) {
	var mu sync.Mutex
	var all []delivered
	deliver := func(q string, r []Candidate) {
		mu.Lock()
		all = append(all, delivered{q, r})
		mu.Unlock()
	}
	snapshot := func() []delivered {
		mu.Lock()
		defer mu.Unlock()
		return append([]delivered{}, all...)
	}
	return deliver, snapshot
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestSearcherDebouncesRapidTyping(t *testing.T) {
	fake := newScriptedSearch()
	fake.results["alien"] = []Candidate{{Title: "Alien"}}

	deliver, snapshot := collectDeliveries()
	s := NewSearcher(fake, 30*time.Millisecond, deliver)
	defer s.Close()

	s.Query("a")
	s.Query("al")
	s.Query("alien")

	waitFor(t, func() bool { return len(snapshot()) == 1 })
	time.Sleep(60 * time.Millisecond)

	if got := fake.callCount(); got != 1 {
		t.Errorf("expected only the final query to be sent, got %d calls", got)
	}
	got := snapshot()
	if len(got) != 1 || got[0].query != "alien" || len(got[0].results) != 1 {
		t.Errorf("unexpected deliveries: %+v", got)
	}
}

func TestSearcherDiscardsStaleResponse(t *testing.T) {
	fake := newScriptedSearch()
	fake.results["slow"] = []Candidate{{Title: "Slow Movie"}}
	fake.results["fast"] = []Candidate{{Title: "Fast Movie"}}
	gate := make(chan struct{})
	fake.block["slow"] = gate

	deliver, snapshot := collectDeliveries()
	s := NewSearcher(fake, time.Millisecond, deliver)
	defer s.Close()

	s.Query("slow")
	waitFor(t, func() bool { return fake.callCount() == 1 })

	// A newer query supersedes and completes while the first is parked.
	s.Query("fast")
	waitFor(t, func() bool { return len(snapshot()) == 1 })
	close(gate)
	time.Sleep(50 * time.Millisecond)

	got := snapshot()
	if len(got) != 1 {
		t.Fatalf("stale response leaked through: %+v", got)
	}
	if got[0].query != "fast" || got[0].results[0].Title != "Fast Movie" {
		t.Errorf("visible results must belong to the newest query, got %+v", got[0])
	}
}

func TestSearcherBlankQueryClearsWithoutSearching(t *testing.T) {
	fake := newScriptedSearch()
	deliver, snapshot := collectDeliveries()
	s := NewSearcher(fake, 10*time.Millisecond, deliver)
	defer s.Close()

	s.Query("   ")
	waitFor(t, func() bool { return len(snapshot()) == 1 })

	if fake.callCount() != 0 {
		t.Error("blank query must not reach the backend")
	}
	got := snapshot()
	if got[0].results != nil {
		t.Errorf("expected a clear (nil results), got %+v", got[0].results)
	}
}

func TestSearcherBlankQueryCancelsPendingSearch(t *testing.T) {
	fake := newScriptedSearch()
	fake.results["alien"] = []Candidate{{Title: "Alien"}}

	deliver, snapshot := collectDeliveries()
	s := NewSearcher(fake, 50*time.Millisecond, deliver)
	defer s.Close()

	s.Query("alien")
	s.Query("") // cleared before the debounce fired

	waitFor(t, func() bool { return len(snapshot()) >= 1 })
	time.Sleep(100 * time.Millisecond)

	if fake.callCount() != 0 {
		t.Error("cleared query must cancel the pending search")
	}
	got := snapshot()
	if len(got) != 1 || got[0].query != "" {
		t.Errorf("expected a single clear delivery, got %+v", got)
	}
}

func TestSearcherCloseStopsDeliveries(t *testing.T) {
	fake := newScriptedSearch()
	fake.results["alien"] = []Candidate{{Title: "Alien"}}

	var deliveries int32
	s := NewSearcher(fake, 10*time.Millisecond, func(string, []Candidate) {
		atomic.AddInt32(&deliveries, 1)
	})

	s.Query("alien")
	s.Close()
	time.Sleep(50 * time.Millisecond)

	if atomic.LoadInt32(&deliveries) != 0 {
		t.Error("no deliveries may happen after Close")
	}
	if fake.callCount() != 0 {
		t.Error("pending query must not run after Close")
	}
}
