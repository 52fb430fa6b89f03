// Package registry provides a global registry for game modes.
// Modes register themselves in init() functions, so the platform can list
// and create them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/minerun/internal/core"
)

// Game is the interface the platform drives every tick.
// Implementations hold pure logic with no Bubble Tea dependency; the
// platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier (e.g., "minerun", "minerun_tunnel").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the run.
	// The RuntimeConfig provides screen dimensions, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// HighScoreAware is implemented by games that show the best score in their HUD.
type HighScoreAware interface {
	SetHighScore(score int)
}

// DifficultyAware is implemented by games with selectable difficulty presets.
// It is called before Reset.
type DifficultyAware interface {
	SetDifficulty(preset string) error
}

// Info describes a registered mode.
type Info struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]entry)
	order   []string
	mu      sync.RWMutex
)

// Register adds a mode to the registry. Modes are listed in registration order.
// Panics if the ID is empty or already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: empty game id")
	}
	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = info.ID
	}

	entries[info.ID] = entry{info: info, factory: f}
	order = append(order, info.ID)
}

// List returns every registered mode in registration order.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(order))
	for _, id := range order {
		result = append(result, entries[id].info)
	}
	return result
}

// Lookup returns the metadata of a registered mode.
func Lookup(id string) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// unregister removes a mode. Only tests use it.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(entries, id)
	for i, o := range order {
		if o == id {
			order = append(order[:i], order[i+1:]...)
			break
		}
	}
}
