package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/atteraisanen/MovieGuessr/internal/cache"
	"github.com/atteraisanen/MovieGuessr/internal/daykey"
	"github.com/atteraisanen/MovieGuessr/internal/model"
	"github.com/atteraisanen/MovieGuessr/internal/repository"
)

// EpochDate is day 1 of the game: the first catalog entry is that day's movie.
const EpochDate = "2025-04-12"

// ErrMovieNotFound means the day index ran past the end of the catalog. The
// catalog does not wrap around; once exhausted there is no movie of the day
// until more entries are added.
var ErrMovieNotFound = errors.New("movie not found")

// MovieService picks the movie of the day and searches titles
type MovieService struct {
	repo  repository.MovieRepo
	cache cache.MovieCache
}

// NewMovieService creates a new movie service. cache may be nil to run
// without Redis.
func NewMovieService(repo repository.MovieRepo, cache cache.MovieCache) *MovieService {
	return &MovieService{
		repo:  repo,
		cache: cache,
	}
}

// DailyMovie returns the movie for the day containing now, plus its 1-based
// day index. Same day, same movie: the index is a pure function of the clock
// and the lookup is an ordinal read against a stable _id ordering. Cache
// failures are logged and bypassed, never surfaced.
func (s *MovieService) DailyMovie(ctx context.Context, now time.Time) (*model.Movie, int, error) {
	dayIndex, err := daykey.Index(EpochDate, now)
	if err != nil {
		return nil, 0, fmt.Errorf("computing day index: %w", err)
	}
	key := daykey.Key(now)

	if s.cache != nil {
		movie, err := s.cache.GetDaily(ctx, key)
		if err != nil {
			log.Printf("daily movie cache read failed: %v", err)
		}
		if movie != nil {
			return movie, dayIndex, nil
		}
	}

	movie, err := s.repo.FetchNth(ctx, dayIndex)
	if err != nil {
		return nil, 0, fmt.Errorf("fetching movie %d: %w", dayIndex, err)
	}
	if movie == nil {
		return nil, 0, ErrMovieNotFound
	}

	if s.cache != nil {
		if err := s.cache.SetDaily(ctx, key, movie); err != nil {
			log.Printf("daily movie cache write failed: %v", err)
		}
	}
	return movie, dayIndex, nil
}

// Search returns up to 10 case-insensitive substring matches for the query.
// A blank query short-circuits to no results without touching the store.
func (s *MovieService) Search(ctx context.Context, query string) ([]*model.Movie, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	movies, err := s.repo.SearchByTitle(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching movies: %w", err)
	}
	return movies, nil
}
