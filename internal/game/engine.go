// internal/game/engine.go
//
// Core game engine for a single session.
// Responsibilities:
//   - Create new games sized to the secret (cols = secret length, rows configurable).
//   - Validate and apply guesses (length, letters, validator membership).
//   - Score guesses with Score and aggregate keyboard feedback.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Rows == 0 means no fail state: the game only ends when the secret is found.
//   - IDs are ULIDs so games sort by creation time.

package game

import (
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Stewinjo/AnyLetters/internal/words"
)

// DefaultRows is the classic board height.
const DefaultRows = 6

var (
	ErrFinished      = errors.New("game finished")
	ErrInvalidGuess  = errors.New("invalid guess")
	ErrNotInWordList = errors.New("not in word list")
)

// Validator decides whether a guess is a real word.
type Validator interface {
	IsValid(word string) bool
}

// Options tunes New. The zero value is a medium game with unlimited rows.
type Options struct {
	Lang       string
	Difficulty Difficulty
	Rows       int
	// Rand picks the easy-mode hint; nil uses the global source.
	Rand *rand.Rand
	// Now stamps CreatedAt; nil uses time.Now.
	Now func() time.Time
}

// New constructs a game around answer.
func New(answer string, opts Options) *Game {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	diff := opts.Difficulty
	if diff == "" {
		diff = DefaultDifficulty
	}
	rows := opts.Rows
	if rows < 0 {
		rows = 0
	}
	ans := words.Normalize(strings.TrimSpace(answer))
	g := &Game{
		ID:         ulid.Make().String(),
		Lang:       opts.Lang,
		Difficulty: diff,
		Answer:     ans,
		Rows:       rows,
		Cols:       words.Len(ans),
		Guesses:    []string{},
		Marks:      [][]Mark{},
		Keyboard:   map[string]KeyState{},
		CreatedAt:  now().UTC(),
	}
	if diff == Easy {
		g.revealHint(opts.Rand)
	}
	return g
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the per-letter marks and the new state.
//
// Validation rules:
//   - Game must not be finished (ErrFinished).
//   - Guess must be exactly g.Cols letters (ErrInvalidGuess).
//   - Guess must be accepted by v when v is non-nil (ErrNotInWordList).
//
// State transitions:
//   - All marks Correct → Finished, Won.
//   - Else, with a row limit, reaching g.Rows guesses → Finished (loss).
func (g *Game) ApplyGuess(guess string, v Validator) ([]Mark, State, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}
	guess = words.Normalize(strings.TrimSpace(guess))
	if words.Len(guess) != g.Cols || !words.IsAlpha(guess) {
		return nil, g.State(), ErrInvalidGuess
	}
	if v != nil && !v.IsValid(guess) {
		return nil, g.State(), ErrNotInWordList
	}

	marks := Score(guess, g.Answer)
	g.Guesses = append(g.Guesses, guess)
	g.Marks = append(g.Marks, marks)
	g.updateKeyboard(guess, marks)

	if allCorrect(marks) {
		g.Finished, g.Won = true, true
	} else if g.Rows > 0 && len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return marks, g.State(), nil
}

// State reports the coarse state of the game.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Remaining is the number of guesses left, or -1 when rows are unlimited.
func (g *Game) Remaining() int {
	if g.Rows == 0 {
		return -1
	}
	return max(g.Rows-len(g.Guesses), 0)
}

// updateKeyboard keeps the best mark seen per letter. Letters found in the
// answer also carry their occurrence count when it is above one.
func (g *Game) updateKeyboard(guess string, marks []Mark) {
	for i, r := range []rune(guess) {
		k := string(r)
		cur, seen := g.Keyboard[k]
		next := cur
		if !seen || marks[i].rank() > cur.Mark.rank() {
			next.Mark = marks[i]
		}
		if marks[i] != MarkAbsent {
			if n := strings.Count(g.Answer, k); n > 1 {
				next.Count = n
			}
		}
		g.Keyboard[k] = next
	}
}

// revealHint marks one random answer letter as present on the keyboard.
func (g *Game) revealHint(rng *rand.Rand) {
	letters := []rune(g.Answer)
	if len(letters) == 0 {
		return
	}
	var i int
	if rng != nil {
		i = rng.IntN(len(letters))
	} else {
		i = rand.IntN(len(letters))
	}
	g.Hint = string(letters[i])
	g.Keyboard[g.Hint] = KeyState{Mark: MarkPresent}
}
