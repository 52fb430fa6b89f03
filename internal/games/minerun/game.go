// Package minerun adapts a Mine Run simulation to the platform's Game
// interface: input actions in, a colored cell screen out.
package minerun

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/minerun/internal/config"
	"github.com/vovakirdan/minerun/internal/core"
	"github.com/vovakirdan/minerun/internal/registry"
	"github.com/vovakirdan/minerun/internal/run"
	"github.com/vovakirdan/minerun/internal/storage"
)

// Mode is a registered way to play.
type Mode struct {
	ID          string
	Title       string
	Description string
	Start       string // First section; empty means the configured one
}

// Modes lists the registered modes in menu order.
var Modes = []Mode{
	{ID: "minerun", Title: "Mine Run", Description: "Endless run through spikes, tunnels and beams"},
	{ID: "minerun_tunnel", Title: "Mine Run: Tunnel Practice", Description: "Start inside the tunnel", Start: "tunnel"},
	{ID: "minerun_beams", Title: "Mine Run: Beams Practice", Description: "Start among the beams", Start: "beams"},
}

// bannerSeconds is how long a new section's name stays on screen.
const bannerSeconds = 1.5

// configPath and the preset are set via CLI before the game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	showHitboxes     bool
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// configured difficulty.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetHitboxes turns the hitbox overlay on for new games.
func SetHitboxes(on bool) {
	showHitboxes = on
}

// Game implements registry.Game for one mode.
type Game struct {
	mode     Mode
	cfg      config.MinerunConfig
	cfgErr   error
	fixedCfg bool // cfg was given, never reload it
	runtime  core.RuntimeConfig
	run      *run.Run
	best     int
	paused   bool
	gameOver bool
	hitboxes bool
	preset   config.DifficultyPreset // Overrides the CLI preset when set

	banner      string
	bannerTicks int
}

// New creates a game for mode with the configuration found on disk.
func New(mode Mode) *Game {
	return &Game{mode: mode, hitboxes: showHitboxes}
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(mode Mode, cfg config.MinerunConfig) *Game {
	g := New(mode)
	g.cfg = cfg
	g.fixedCfg = true
	return g
}

// ID returns the mode identifier.
func (g *Game) ID() string { return g.mode.ID }

// Title returns the mode's display name.
func (g *Game) Title() string { return g.mode.Title }

// Reset initializes or restarts the run.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt

	if !g.fixedCfg {
		cfg, err := config.Load(configPath)
		if err != nil {
			cfg = config.DefaultMinerunConfig()
		}
		g.cfg, g.cfgErr = cfg, err
	}
	if p := g.difficulty(); p != "" {
		config.ApplyPreset(&g.cfg, p)
	}

	g.run = run.New(RunOptions(g.cfg, rt.Seed, rt.TickRate, g.mode.Start))
	g.paused = false
	g.gameOver = false
	g.banner = ""
	g.bannerTicks = 0
}

// SetDifficulty selects a preset for the next Reset.
func (g *Game) SetDifficulty(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	g.preset = p
	return nil
}

func (g *Game) difficulty() config.DifficultyPreset {
	if g.preset != "" {
		return g.preset
	}
	return difficultyPreset
}

// ConfigError returns the error hit while loading the config, if any.
// The game falls back to defaults in that case.
func (g *Game) ConfigError() error { return g.cfgErr }

// SetHighScore sets the best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.best = max(g.best, score)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionHitboxes) {
		g.hitboxes = !g.hitboxes
	}
	if g.gameOver || g.run == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		g.run.ResetClock()
		return core.StepResult{State: g.State()}
	}

	jump := in.Has(core.ActionJump)
	g.run.SetJumpHeld(jump)
	if jump {
		g.run.Jump()
	}

	res := g.run.Step()
	var events []core.Event

	if res.Transition != nil {
		next := res.Transition.Next
		g.banner = fmt.Sprintf("%s - TIER %d", strings.ToUpper(next.Kind.String()), next.Tier)
		g.bannerTicks = int(bannerSeconds * float64(g.tickRate()))
		events = append(events, core.Event{
			Kind:    core.EventSectionChanged,
			Message: fmt.Sprintf("%s -> %s", res.Transition.Completed.Kind, next.Kind),
			Value:   next.Tier,
		})
	} else if g.bannerTicks > 0 {
		g.bannerTicks--
	}

	if res.CoinsCollected > 0 {
		events = append(events, core.Event{
			Kind:    core.EventCoinCollected,
			Message: fmt.Sprintf("%d coin(s)", res.CoinsCollected),
			Value:   res.ScoreDelta,
		})
	}

	if res.Died {
		g.gameOver = true
		g.best = max(g.best, g.run.Score())
		events = append(events, core.Event{
			Kind:    core.EventDied,
			Message: res.Cause,
			Value:   g.run.Score(),
		})
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) tickRate() int {
	if g.runtime.TickRate <= 0 {
		return 60
	}
	return g.runtime.TickRate
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.run != nil {
		score = g.run.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Run returns the underlying simulation; nil before the first Reset.
func (g *Game) Run() *run.Run { return g.run }

// Hitboxes reports whether the hitbox overlay is shown.
func (g *Game) Hitboxes() bool { return g.hitboxes }

// Record describes the finished run for storage.
func (g *Game) Record() storage.RunRecord {
	rec := storage.RunRecord{
		GameID:     g.mode.ID,
		Difficulty: string(g.cfg.Difficulty.Preset),
		Seed:       g.runtime.Seed,
	}
	if g.run == nil {
		return rec
	}
	s := g.run.Summary()
	rec.Score = s.Score
	rec.Coins = s.Coins
	rec.TimeAlive = s.TimeAlive
	rec.SectionsCleared = s.SectionsCleared
	rec.MaxTier = s.MaxTier
	rec.Cause = g.run.Cause()
	return rec
}

// Register every mode with the registry
func init() {
	for _, m := range Modes {
		registry.Register(registry.Info{ID: m.ID, Title: m.Title, Description: m.Description}, func() registry.Game {
			return New(m)
		})
	}
}
