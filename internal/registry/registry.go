// Package registry maps game ids to constructors. The Kong variants add
// themselves from init(); the CLI, the terminal menu and the window
// frontend look them up by id.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-kong/internal/core"
)

// Game is a fixed-tick simulation a frontend can drive. Implementations
// know nothing about terminals or windows: they read an InputFrame per
// tick and draw into a Canvas in world units.
type Game interface {
	// ID is the name used on the command line, e.g. "kong-level2".
	ID() string

	// Title is shown in the menu and the window title.
	Title() string

	// Reset starts a fresh run. The runtime config carries the seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one frame.
	Step(in core.InputFrame) core.StepResult

	// Draw renders the current frame.
	Draw(dst core.Canvas)

	// WorldSize is the extent Draw uses, in world units.
	WorldSize() (w, h float64)

	// State reports score, end of run and pause.
	State() core.GameState
}

// ErrUnknownGame is returned by Create for ids nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// GameInfo describes a registered game for listings.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new, not yet reset, game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game under id. The title is read once from a throwaway
// instance. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: GameInfo{ID: id, Title: f().Title()}, factory: f}
}

// List returns every registered game ordered by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create builds a new instance of the game registered as id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
