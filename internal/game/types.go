// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Mark: per-letter result of a guess (correct/present/absent).
//   - State: coarse session state (playing/won/lost).
//   - KeyState: aggregated keyboard feedback for one letter.
//   - Game: state for a single in-progress or finished game.

package game

import "time"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the answer at this position.
//   - "present": letter exists in the answer at a different position.
//   - "absent":  no unmatched occurrence of the letter remains in the answer.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Code is the one-letter rendering of m: G (green), Y (yellow) or B (black).
func (m Mark) Code() string {
	switch m {
	case MarkCorrect:
		return "G"
	case MarkPresent:
		return "Y"
	default:
		return "B"
	}
}

// rank orders marks for keyboard aggregation: a better mark is never replaced.
func (m Mark) rank() int {
	switch m {
	case MarkCorrect:
		return 2
	case MarkPresent:
		return 1
	case MarkAbsent:
		return 0
	}
	return -1
}

// Codes renders marks as a compact G/Y/B string.
func Codes(marks []Mark) string {
	b := make([]byte, 0, len(marks))
	for _, m := range marks {
		b = append(b, m.Code()...)
	}
	return string(b)
}

// State is the coarse state of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// KeyState is what the keyboard shows for one letter.
type KeyState struct {
	Mark Mark `json:"mark"`
	// Count is the number of occurrences in the answer, set once the letter
	// was found and only when it occurs more than once.
	Count int `json:"count,omitempty"`
}

// Game holds the state of a single game session.
type Game struct {
	ID         string              // Unique game identifier (ULID).
	Lang       string              // Language code the game is played in.
	Difficulty Difficulty          // Difficulty preset the secret was drawn with.
	Answer     string              // The solution word (normalized).
	Rows       int                 // Maximum number of guesses; 0 means unlimited.
	Cols       int                 // Number of letters per word.
	Guesses    []string            // Guesses made so far (normalized).
	Marks      [][]Mark            // Marks of each guess, parallel to Guesses.
	Keyboard   map[string]KeyState // Best feedback seen per letter.
	Hint       string              // Letter revealed up front on easy, if any.
	Finished   bool                // True once the game is over (won or lost).
	Won        bool                // True if the game was finished with a win.
	CreatedAt  time.Time
}
