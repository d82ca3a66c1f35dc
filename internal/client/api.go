// Package client talks to the MovieGuessr API from the player's side: the
// daily movie fetch with its bounded retry policy, and the debounced title
// search feeding guess candidates.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/atteraisanen/MovieGuessr/internal/model"
)

// ErrNoDailyMovie means the server has no movie for today's index. Not
// retryable: the answer will be the same until the day rolls over.
var ErrNoDailyMovie = errors.New("no movie for today")

// Candidate is the slice of a search hit the guess flow consumes.
type Candidate struct {
	Title string `json:"title"`
}

// RetryPolicy bounds the daily-movie fetch retries.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  int
}

// DefaultRetryPolicy matches the shipped client: 5 tries, 2s, doubling.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 5, BaseDelay: 2 * time.Second, Multiplier: 2}

// API is an HTTP client for the MovieGuessr backend
type API struct {
	baseURL    string
	httpClient *http.Client

	// Retry governs GetDailyMovie. Tests shrink the delays.
	Retry RetryPolicy
}

// NewAPI creates a client for the API at baseURL (no trailing slash needed).
func NewAPI(baseURL string) *API {
	return &API{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		Retry:      DefaultRetryPolicy,
	}
}

// GetDailyMovie fetches today's movie, retrying transient failures with
// exponential backoff until the policy is exhausted or ctx is done. A 404
// from the server is terminal and returned as ErrNoDailyMovie immediately.
func (c *API) GetDailyMovie(ctx context.Context) (*model.DailyMovie, error) {
	delay := c.Retry.BaseDelay
	var lastErr error

	for attempt := 1; attempt <= c.Retry.MaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay *= time.Duration(c.Retry.Multiplier)
		}

		daily, err := c.fetchDailyMovie(ctx)
		if err == nil {
			return daily, nil
		}
		if errors.Is(err, ErrNoDailyMovie) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("daily movie unavailable after %d attempts: %w", c.Retry.MaxAttempts, lastErr)
}

func (c *API) fetchDailyMovie(ctx context.Context) (*model.DailyMovie, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/movie/", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNoDailyMovie
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var daily model.DailyMovie
	if err := json.NewDecoder(resp.Body).Decode(&daily); err != nil {
		return nil, fmt.Errorf("decoding daily movie: %w", err)
	}
	if daily.Movie == nil {
		return nil, errors.New("empty daily movie response")
	}
	return &daily, nil
}

// SearchTitles returns guess candidates matching the query. The server sends
// full movie documents; only the title survives decoding here. A blank query
// returns nothing without a request.
func (c *API) SearchTitles(ctx context.Context, query string) ([]Candidate, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	u := c.baseURL + "/movies/" + url.PathEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var candidates []Candidate
	if err := json.NewDecoder(resp.Body).Decode(&candidates); err != nil {
		return nil, fmt.Errorf("decoding search results: %w", err)
	}
	return candidates, nil
}
