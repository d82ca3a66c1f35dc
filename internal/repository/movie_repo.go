package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/atteraisanen/MovieGuessr/internal/model"
)

// searchLimit caps title search results.
const searchLimit = 10

// MovieRepo handles MongoDB operations for the movie catalog
type MovieRepo interface {
	// FetchNth returns the n-th movie (1-based) ordered by _id, or nil when
	// the catalog has fewer than n entries.
	FetchNth(ctx context.Context, n int) (*model.Movie, error)

	// SearchByTitle returns up to 10 movies whose title contains the given
	// text, case-insensitively, in store-native order.
	SearchByTitle(ctx context.Context, title string) ([]*model.Movie, error)
}

type movieRepo struct {
	collection *mongo.Collection
}

// NewMovieRepo creates a new movie repository
func NewMovieRepo(db *mongo.Database) MovieRepo {
	return &movieRepo{
		collection: db.Collection("moviedata"),
	}
}

func (r *movieRepo) FetchNth(ctx context.Context, n int) (*model.Movie, error) {
	if n < 1 {
		return nil, nil
	}

	opts := options.FindOne().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(n - 1))

	var movie model.Movie
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepo) SearchByTitle(ctx context.Context, title string) ([]*model.Movie, error) {
	filter := bson.M{"title": bson.M{
		"$regex":   regexp.QuoteMeta(title),
		"$options": "i",
	}}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetLimit(searchLimit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var movies []*model.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}
