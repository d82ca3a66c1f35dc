package client

import (
	"context"
	"strings"
	"sync"
	"time"
)

// SearchClient is the search capability Searcher schedules over.
type SearchClient interface {
	SearchTitles(ctx context.Context, query string) ([]Candidate, error)
}

// DefaultSearchDelay is how long typing must pause before a query is sent.
const DefaultSearchDelay = 400 * time.Millisecond

// Searcher debounces title queries and guarantees that only the newest
// query's results reach the deliver callback: older in-flight requests are
// cancelled and their responses dropped, so a slow early response can never
// overwrite a fast later one. Search failures deliver an empty result set.
type Searcher struct {
	client  SearchClient
	delay   time.Duration
	deliver func(query string, results []Candidate)

	mu     sync.Mutex
	seq    uint64
	timer  *time.Timer
	cancel context.CancelFunc
	closed bool
}

// NewSearcher wires a debounced searcher around client. deliver is invoked
// from a background goroutine.
func NewSearcher(client SearchClient, delay time.Duration, deliver func(string, []Candidate)) *Searcher {
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	return &Searcher{client: client, delay: delay, deliver: deliver}
}

// Query registers the latest input. A blank query clears results immediately
// and never hits the backend; anything else is dispatched after the debounce
// window unless superseded first.
func (s *Searcher) Query(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.seq++
	seq := s.seq
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	if strings.TrimSpace(query) == "" {
		go s.finish(seq, query, nil)
		return
	}

	s.timer = time.AfterFunc(s.delay, func() {
		s.run(seq, query)
	})
}

// Close cancels any pending or in-flight query. No deliveries happen after
// Close returns.
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Searcher) run(seq uint64, query string) {
	s.mu.Lock()
	if s.closed || seq != s.seq {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	results, err := s.client.SearchTitles(ctx, query)
	cancel()
	if err != nil {
		// Degrade to no results; search is never an error the player sees.
		results = nil
	}
	s.finish(seq, query, results)
}

func (s *Searcher) finish(seq uint64, query string, results []Candidate) {
	s.mu.Lock()
	stale := s.closed || seq != s.seq
	s.mu.Unlock()
	if stale {
		return
	}
	s.deliver(query, results)
}
