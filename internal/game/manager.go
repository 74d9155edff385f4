package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"checkers/internal/checkers"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameOver     = errors.New("game is over")
)

// Manager keeps games in memory, keyed by a random id.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame starts a game from the initial layout with first to move.
func (m *Manager) NewGame(first checkers.Side) *GameState {
	return m.NewGameFrom(checkers.NewInitialPosition(first))
}

// NewGameFrom starts a game from an arbitrary position. The position is
// copied.
func (m *Manager) NewGameFrom(pos *checkers.Position) *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := *pos
	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Pos:       &p,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[g.ID] = g
	return g
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g, nil
}

// Update stores the position reached by entry and appends entry to the
// history.
func (m *Manager) Update(id string, pos *checkers.Position, entry HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	if g.Finished() {
		return fmt.Errorf("%w: %s", ErrGameOver, id)
	}
	p := *pos
	g.Pos = &p
	g.History = append(g.History, entry)
	g.UpdatedAt = time.Now()
	return nil
}

func (m *Manager) Finish(id string, outcome checkers.Outcome, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	g.Outcome = outcome
	g.Reason = reason
	g.UpdatedAt = time.Now()
	return nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(m.games, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
