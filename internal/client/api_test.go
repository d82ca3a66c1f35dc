package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atteraisanen/MovieGuessr/internal/model"
)

func fastRetry(attempts int) RetryPolicy {
	return RetryPolicy{MaxAttempts: attempts, BaseDelay: time.Millisecond, Multiplier: 2}
}

func dailyBody() model.DailyMovie {
	return model.DailyMovie{
		Movie:      &model.Movie{ID: "1", Title: "Jaws"},
		DaysPassed: 12,
	}
}

func TestGetDailyMovieRetriesTransientFailures(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(dailyBody())
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	api.Retry = fastRetry(5)

	daily, err := api.GetDailyMovie(context.Background())
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if daily.Movie.Title != "Jaws" || daily.DaysPassed != 12 {
		t.Errorf("unexpected response: %+v", daily)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("expected 3 requests, got %d", got)
	}
}

func TestGetDailyMovieGivesUpAfterMaxAttempts(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	api.Retry = fastRetry(3)

	if _, err := api.GetDailyMovie(context.Background()); err == nil {
		t.Fatal("expected an error after exhausting retries")
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("expected exactly 3 requests, got %d", got)
	}
}

func TestGetDailyMovieNotFoundDoesNotRetry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Movie not found"})
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	api.Retry = fastRetry(5)

	_, err := api.GetDailyMovie(context.Background())
	if !errors.Is(err, ErrNoDailyMovie) {
		t.Fatalf("expected ErrNoDailyMovie, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("404 must not be retried, got %d requests", got)
	}
}

func TestGetDailyMovieStopsOnCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	api.Retry = RetryPolicy{MaxAttempts: 5, BaseDelay: time.Hour, Multiplier: 2}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := api.GetDailyMovie(ctx)
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("retry loop did not stop on cancellation")
	}
}

func TestSearchTitlesDecodesOnlyTitles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movies/alien" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		// Full documents on the wire; the client keeps the titles.
		json.NewEncoder(w).Encode([]model.Movie{
			{ID: "1", Title: "Alien", Overview: "In space no one can hear you scream."},
			{ID: "2", Title: "Aliens"},
		})
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	candidates, err := api.SearchTitles(context.Background(), "alien")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(candidates) != 2 || candidates[0].Title != "Alien" || candidates[1].Title != "Aliens" {
		t.Errorf("unexpected candidates: %+v", candidates)
	}
}

func TestSearchTitlesBlankQuerySkipsRequest(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	candidates, err := api.SearchTitles(context.Background(), "   ")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if candidates != nil {
		t.Errorf("expected no candidates, got %+v", candidates)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Error("blank query must not hit the server")
	}
}
