// apps/go-server/internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Used for ephemeral sessions, tests, or when STORE=memory.
//
// Characteristics:
//   - Stores deep copies of *game.Game keyed by ID, so no two callers ever
//     share a guess slice.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/robalobadob/mastermind/apps/go-server/internal/game"
)

// ErrNotFound is returned by Get for unknown game IDs.
var ErrNotFound = errors.New("game not found")

// Store defines the persistence interface for games.
// Implementations: memory (this file) and SQLite (sqlite.go).
type Store interface {
	// Save persists or updates a game and its guesses.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*game.Game, error)

	// ListByUser returns every game userID plays in, as owner or partner,
	// oldest first.
	ListByUser(ctx context.Context, userID string) ([]*game.Game, error)
}

type memory struct {
	mu    sync.RWMutex          // guards games
	games map[string]*game.Game // keyed by Game.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g.Clone()
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g.Clone(), nil
	}
	return nil, ErrNotFound
}

func (m *memory) ListByUser(ctx context.Context, userID string) ([]*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*game.Game{}
	for _, g := range m.games {
		if g.Participant(userID) {
			out = append(out, g.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
