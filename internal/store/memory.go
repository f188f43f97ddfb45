// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// This is the persistence layer for ephemeral game sessions: state is lost
// when the process restarts.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Update runs a mutation under the write lock so concurrent guesses on the
//     same game are serialized.
//   - Sweep drops games created before a cutoff.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Stewinjo/AnyLetters/internal/game"
)

// ErrNotFound is returned for unknown game IDs.
var ErrNotFound = errors.New("game not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save persists or updates a game state.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Update applies fn to the stored game while holding it exclusively.
	// An error from fn is returned as is.
	Update(ctx context.Context, id string, fn func(*game.Game) error) error

	// Delete removes a game. Unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Sweep removes games created before cutoff and reports how many went.
	Sweep(ctx context.Context, cutoff time.Time) (int, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards games map
	games map[string]*game.Game // keyed by Game.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

func (m *memory) Save(_ context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return nil
}

func (m *memory) Get(_ context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Update(_ context.Context, id string, fn func(*game.Game) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	return fn(g)
}

func (m *memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	return nil
}

func (m *memory) Sweep(ctx context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, g := range m.games {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if g.CreatedAt.Before(cutoff) {
			delete(m.games, id)
			n++
		}
	}
	return n, nil
}
