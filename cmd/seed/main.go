package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/atteraisanen/MovieGuessr/internal/config"
	"github.com/atteraisanen/MovieGuessr/internal/model"
)

// Seeds the moviedata collection with a starter catalog. Insertion order is
// the daily rotation order: _id values are generated sequentially, and the
// daily pick walks the collection sorted by _id.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	coll := client.Database(cfg.MongoDB).Collection("moviedata")

	movies := catalog()
	docs := make([]interface{}, 0, len(movies))
	for i := range movies {
		movies[i].ID = primitive.NewObjectID().Hex()
		docs = append(docs, movies[i])
	}

	if _, err := coll.InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to insert movies: %v", err)
	}

	fmt.Printf("Seeded %d movies into %s.moviedata\n", len(movies), cfg.MongoDB)
}

func catalog() []model.Movie {
	return []model.Movie{
		{
			Title:       "Jaws",
			Tagline:     "Don't go in the water.",
			Overview:    "When a killer shark unleashes chaos on a beach community off Long Island, it's up to a local sheriff, a marine biologist, and an old seafarer to hunt the beast down.",
			ReleaseDate: "1975-06-20",
			Genres:      []model.Genre{{Name: "Horror"}, {Name: "Thriller"}, {Name: "Adventure"}},
			Cast: []model.CastMember{
				{Name: "Roy Scheider"}, {Name: "Robert Shaw"}, {Name: "Richard Dreyfuss"},
				{Name: "Lorraine Gary"}, {Name: "Murray Hamilton"},
			},
		},
		{
			Title:       "Alien",
			Tagline:     "In space no one can hear you scream.",
			Overview:    "During its return to Earth, the commercial spaceship Nostromo intercepts a distress signal from a distant planet. What the crew finds is a nightmare beyond imagining.",
			ReleaseDate: "1979-05-25",
			Genres:      []model.Genre{{Name: "Horror"}, {Name: "Science Fiction"}},
			Cast: []model.CastMember{
				{Name: "Sigourney Weaver"}, {Name: "Tom Skerritt"}, {Name: "John Hurt"},
				{Name: "Ian Holm"}, {Name: "Harry Dean Stanton"}, {Name: "Yaphet Kotto"},
			},
		},
		{
			Title:       "Inception",
			Tagline:     "Your mind is the scene of the crime.",
			Overview:    "Cobb, a skilled thief who commits corporate espionage by infiltrating the subconscious of his targets, is offered a chance to regain his old life in exchange for planting an idea in a target's mind.",
			ReleaseDate: "2010-07-15",
			Genres:      []model.Genre{{Name: "Action"}, {Name: "Science Fiction"}, {Name: "Adventure"}},
			Cast: []model.CastMember{
				{Name: "Leonardo DiCaprio"}, {Name: "Joseph Gordon-Levitt"}, {Name: "Elliot Page"},
				{Name: "Tom Hardy"}, {Name: "Ken Watanabe"}, {Name: "Cillian Murphy"},
			},
		},
		{
			Title:       "The Godfather",
			Tagline:     "An offer you can't refuse.",
			Overview:    "Spanning the years 1945 to 1955, a chronicle of the fictional Italian-American Corleone crime family, as patriarch Vito Corleone transfers control of his empire to his reluctant son Michael.",
			ReleaseDate: "1972-03-14",
			Genres:      []model.Genre{{Name: "Drama"}, {Name: "Crime"}},
			Cast: []model.CastMember{
				{Name: "Marlon Brando"}, {Name: "Al Pacino"}, {Name: "James Caan"},
				{Name: "Robert Duvall"}, {Name: "Diane Keaton"},
			},
		},
		{
			Title:       "Spirited Away",
			Tagline:     "The tunnel led Chihiro to a mysterious town.",
			Overview:    "A young girl, Chihiro, becomes trapped in a strange new world of spirits. When her parents undergo a mysterious transformation, she must call upon the courage she never knew she had to free her family.",
			ReleaseDate: "2001-07-20",
			Genres:      []model.Genre{{Name: "Animation"}, {Name: "Family"}, {Name: "Fantasy"}},
			Cast: []model.CastMember{
				{Name: "Rumi Hiiragi"}, {Name: "Miyu Irino"}, {Name: "Mari Natsuki"},
				{Name: "Takashi Naito"}, {Name: "Yasuko Sawaguchi"},
			},
		},
		{
			Title:       "The Matrix",
			Tagline:     "Welcome to the Real World.",
			Overview:    "Set in the 22nd century, The Matrix tells the story of a computer hacker who joins a group of underground insurgents fighting the vast and powerful computers who now rule the earth.",
			ReleaseDate: "1999-03-31",
			Genres:      []model.Genre{{Name: "Action"}, {Name: "Science Fiction"}},
			Cast: []model.CastMember{
				{Name: "Keanu Reeves"}, {Name: "Laurence Fishburne"}, {Name: "Carrie-Anne Moss"},
				{Name: "Hugo Weaving"}, {Name: "Joe Pantoliano"},
			},
		},
		{
			Title:       "Parasite",
			Tagline:     "Act like you own the place.",
			Overview:    "All unemployed, Ki-taek's family takes peculiar interest in the wealthy and glamorous Parks for their livelihood until they get entangled in an unexpected incident.",
			ReleaseDate: "2019-05-30",
			Genres:      []model.Genre{{Name: "Comedy"}, {Name: "Thriller"}, {Name: "Drama"}},
			Cast: []model.CastMember{
				{Name: "Song Kang-ho"}, {Name: "Lee Sun-kyun"}, {Name: "Cho Yeo-jeong"},
				{Name: "Choi Woo-shik"}, {Name: "Park So-dam"},
			},
		},
		{
			Title:       "Interstellar",
			Tagline:     "Mankind was born on Earth. It was never meant to die here.",
			Overview:    "The adventures of a group of explorers who make use of a newly discovered wormhole to surpass the limitations on human space travel and conquer the vast distances involved in an interstellar voyage.",
			ReleaseDate: "2014-11-05",
			Genres:      []model.Genre{{Name: "Adventure"}, {Name: "Drama"}, {Name: "Science Fiction"}},
			Cast: []model.CastMember{
				{Name: "Matthew McConaughey"}, {Name: "Anne Hathaway"}, {Name: "Jessica Chastain"},
				{Name: "Michael Caine"}, {Name: "Mackenzie Foy"},
			},
		},
		{
			Title:       "Casablanca",
			Tagline:     "They had a date with fate in Casablanca!",
			Overview:    "In Casablanca, Morocco in December 1941, a cynical American expatriate meets a former lover, with unforeseen complications.",
			ReleaseDate: "1942-11-26",
			Genres:      []model.Genre{{Name: "Drama"}, {Name: "Romance"}},
			Cast: []model.CastMember{
				{Name: "Humphrey Bogart"}, {Name: "Ingrid Bergman"}, {Name: "Paul Henreid"},
				{Name: "Claude Rains"}, {Name: "Conrad Veidt"},
			},
		},
		{
			Title:       "Pulp Fiction",
			Tagline:     "Just because you are a character doesn't mean you have character.",
			Overview:    "A burger-loving hit man, his philosophical partner, a drug-addled gangster's moll and a washed-up boxer converge in this sprawling, comedic crime caper.",
			ReleaseDate: "1994-09-10",
			Genres:      []model.Genre{{Name: "Thriller"}, {Name: "Crime"}},
			Cast: []model.CastMember{
				{Name: "John Travolta"}, {Name: "Samuel L. Jackson"}, {Name: "Uma Thurman"},
				{Name: "Bruce Willis"}, {Name: "Ving Rhames"},
			},
		},
	}
}
