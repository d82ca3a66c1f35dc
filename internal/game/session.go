// Package game holds the guess/clue state machine for a single daily round.
// Sessions are plain values: SubmitGuess returns the next state and never
// mutates the receiver, so persisting after a transition is the caller's job.
package game

import (
	"fmt"
	"strings"

	"github.com/atteraisanen/MovieGuessr/internal/model"
)

// MaxAttempts is how many wrong guesses end the round.
const MaxAttempts = 5

// Session is the per-day game state. JSON field names match the persisted
// record shape.
type Session struct {
	Movie    model.Movie      `json:"movie"`
	Attempts int              `json:"amountTries"`
	Guesses  []string         `json:"guesses"`
	Status   model.GameStatus `json:"gameStatus"`
	DayIndex int              `json:"dayIndex"`
}

// NewSession starts a fresh round for the given daily movie.
func NewSession(movie model.Movie, dayIndex int) Session {
	return Session{
		Movie:    movie,
		Guesses:  []string{},
		Status:   model.StatusPlaying,
		DayIndex: dayIndex,
	}
}

// SubmitGuess applies one guess and returns the resulting session. Guesses
// against a finished round are ignored. Matching is whitespace-insensitive
// and Unicode case-folded; the raw guess string is what gets recorded.
// A winning guess does not count as an attempt, so the displayed X/5 is the
// number of misses.
func (s Session) SubmitGuess(title string) Session {
	if s.Status.Terminal() {
		return s
	}

	next := s
	next.Guesses = append(append([]string{}, s.Guesses...), title)

	if titlesMatch(title, s.Movie.Title) {
		next.Status = model.StatusWon
		return next
	}

	next.Attempts++
	if next.Attempts >= MaxAttempts {
		next.Status = model.StatusLost
	}
	return next
}

func titlesMatch(guess, answer string) bool {
	return strings.EqualFold(strings.TrimSpace(guess), strings.TrimSpace(answer))
}

// RevealedClueTier maps an attempt count to how many clue categories are
// shown: year after 1 miss, genres after 2, cast after 3, overview after 4.
func RevealedClueTier(attempts int) int {
	switch {
	case attempts <= 0:
		return 0
	case attempts >= 4:
		return 4
	default:
		return attempts
	}
}

// Clue is one revealed hint category, ready for rendering.
type Clue struct {
	Label string
	Text  string
}

// Clues returns the hint list revealed at the given attempt count, in the
// fixed reveal order.
func Clues(movie model.Movie, attempts int) []Clue {
	tier := RevealedClueTier(attempts)
	var clues []Clue
	if tier >= 1 {
		clues = append(clues, Clue{"Release Year", fmt.Sprintf("%d", movie.ReleaseYear())})
	}
	if tier >= 2 {
		clues = append(clues, Clue{"Genres", strings.Join(movie.GenreNames(), ", ")})
	}
	if tier >= 3 {
		clues = append(clues, Clue{"Main Cast", strings.Join(movie.TopCast(5), ", ")})
	}
	if tier >= 4 {
		clues = append(clues, Clue{"Overview", movie.Overview})
	}
	return clues
}

// Feedback is the terminal-state message shown to the player. Empty while
// the round is still in progress.
func Feedback(s Session) string {
	switch s.Status {
	case model.StatusWon:
		return fmt.Sprintf("✅ Correct! The movie is %q", s.Movie.Title)
	case model.StatusLost:
		return fmt.Sprintf("❌ Out of tries! The movie was %q", s.Movie.Title)
	}
	return ""
}
