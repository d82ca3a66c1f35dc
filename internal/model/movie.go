package model

import "strconv"

// Genre is a named genre entry as stored in the movie document
type Genre struct {
	Name string `json:"name" bson:"name"`
}

// CastMember is a credited actor entry as stored in the movie document
type CastMember struct {
	Name string `json:"name" bson:"name"`
}

// Movie mirrors a document in the moviedata collection
type Movie struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	Title       string       `json:"title" bson:"title"`
	Tagline     string       `json:"tagline" bson:"tagline"`
	Overview    string       `json:"overview" bson:"overview"`
	ReleaseDate string       `json:"release_date" bson:"release_date"`
	Genres      []Genre      `json:"genres" bson:"genres"`
	Cast        []CastMember `json:"cast" bson:"cast"`
}

// ReleaseYear parses the leading year out of ReleaseDate, 0 if unparseable
func (m *Movie) ReleaseYear() int {
	if len(m.ReleaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(m.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// TopCast returns at most n credited names in billing order
func (m *Movie) TopCast(n int) []string {
	if n > len(m.Cast) {
		n = len(m.Cast)
	}
	names := make([]string, 0, n)
	for _, c := range m.Cast[:n] {
		names = append(names, c.Name)
	}
	return names
}

// GenreNames returns the genre names in document order
func (m *Movie) GenreNames() []string {
	names := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		names = append(names, g.Name)
	}
	return names
}

// DailyMovie is the response body for GET /movie/
type DailyMovie struct {
	Movie      *Movie `json:"movie"`
	DaysPassed int    `json:"daysPassed"`
}
