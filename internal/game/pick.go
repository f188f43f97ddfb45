package game

import (
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/Stewinjo/AnyLetters/internal/words"
)

// ErrNoSolutions means no secret of the requested length can be drawn.
var ErrNoSolutions = errors.New("no solutions available")

// Ledger records the secrets already played so they are not repeated.
// It is owned by one session collaborator; the mutex only protects it when
// that collaborator serves concurrent requests.
type Ledger struct {
	mu   sync.Mutex
	used words.Set
}

func NewLedger() *Ledger { return &Ledger{used: make(words.Set)} }

// MarkUsed records w as played.
func (l *Ledger) MarkUsed(w string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.used.Add(w)
}

// Used reports whether w was played.
func (l *Ledger) Used(w string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.used.Has(w)
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.used)
}

// Remaining counts the candidates of length not played yet.
func (l *Ledger) Remaining(candidates []string, length int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, w := range candidates {
		if words.Len(w) == length && !l.used.Has(w) {
			n++
		}
	}
	return n
}

func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.used = make(words.Set)
}

// PickRandom draws a candidate of exactly length runes.
func PickRandom(candidates []string, length int, rng *rand.Rand) (string, error) {
	pool := words.FilterLength(candidates, length)
	if len(pool) == 0 {
		return "", ErrNoSolutions
	}
	return pool[intN(rng, len(pool))], nil
}

// PickUnused draws a candidate of length that the ledger has not seen.
// ok is false when every candidate was used.
func PickUnused(candidates []string, length int, ledger *Ledger, rng *rand.Rand) (string, bool) {
	var pool []string
	for _, w := range candidates {
		if words.Len(w) == length && (ledger == nil || !ledger.Used(w)) {
			pool = append(pool, w)
		}
	}
	if len(pool) == 0 {
		return "", false
	}
	return pool[intN(rng, len(pool))], true
}

// PickSecret prefers an unused candidate and falls back to PickRandom once
// every candidate has been played.
func PickSecret(candidates []string, length int, ledger *Ledger, rng *rand.Rand) (string, error) {
	if w, ok := PickUnused(candidates, length, ledger, rng); ok {
		return w, nil
	}
	return PickRandom(candidates, length, rng)
}

func intN(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.IntN(n)
	}
	return rand.IntN(n)
}
