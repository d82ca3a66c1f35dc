package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/atteraisanen/MovieGuessr/internal/model"
)

// MovieCache handles Redis operations for the movie of the day. One movie is
// cached per day key so the Mongo ordinal lookup runs once per day, not once
// per visitor.
type MovieCache interface {
	GetDaily(ctx context.Context, dayKey string) (*model.Movie, error)
	SetDaily(ctx context.Context, dayKey string, movie *model.Movie) error
}

type movieCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMovieCache creates a new daily movie cache
func NewMovieCache(client *redis.Client) MovieCache {
	return &movieCache{
		client: client,
		// Outlives the day it caches so late visitors near midnight still hit.
		ttl: 48 * time.Hour,
	}
}

func (c *movieCache) dailyKey(dayKey string) string {
	return fmt.Sprintf("daily:%s", dayKey)
}

func (c *movieCache) GetDaily(ctx context.Context, dayKey string) (*model.Movie, error) {
	data, err := c.client.Get(ctx, c.dailyKey(dayKey)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var movie model.Movie
	if err := json.Unmarshal([]byte(data), &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

func (c *movieCache) SetDaily(ctx context.Context, dayKey string, movie *model.Movie) error {
	data, err := json.Marshal(movie)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.dailyKey(dayKey), data, c.ttl).Err()
}
