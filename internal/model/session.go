package model

// GameStatus is the lifecycle state of a daily game session
type GameStatus string

const (
	StatusPlaying GameStatus = "playing"
	StatusWon     GameStatus = "won"
	StatusLost    GameStatus = "lost"
)

// Terminal reports whether no further guesses are accepted
func (s GameStatus) Terminal() bool {
	return s == StatusWon || s == StatusLost
}
