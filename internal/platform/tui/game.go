package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minerun/internal/core"
	"github.com/vovakirdan/minerun/internal/registry"
	"github.com/vovakirdan/minerun/internal/settings"
)

// toastSeconds is how long a volume change stays on screen.
const toastSeconds = 1.0

// GameModel runs one game inside Bubble Tea.
type GameModel struct {
	game       registry.Game
	host       Host
	screen     *core.Screen
	config     core.RuntimeConfig
	fixedSeed  bool            // Restart replays the same seed
	quitOnBack bool            // Back ends the program instead of returning to a menu
	pending    core.InputFrame // Actions for the next tick
	state      core.GameState  // As of the last tick
	keyMapper  *KeyMapper
	prefs      settings.Preferences
	toast      string
	toastTicks int
	quitting   bool
	backToMenu bool
	saved      bool // Result of the finished run stored
}

// NewGameModel creates a model for game. A zero seed picks a time-based one
// on every start.
func NewGameModel(game registry.Game, host Host, cfg core.RuntimeConfig) GameModel {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return GameModel{
		game:      game,
		host:      host,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		fixedSeed: fixed,
		keyMapper: NewKeyMapper(),
		prefs:     host.preferences(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.start()
	return tickCmd(m.config.TickRate)
}

// start resets the game; the game is a pointer so value receivers are fine.
func (m GameModel) start() {
	m.game.Reset(m.config)
	if hs, ok := m.game.(registry.HighScoreAware); ok {
		hs.SetHighScore(m.host.BestScore(m.game.ID()))
	}
	m.host.logger().Debug("run started", "game", m.game.ID(), "seed", m.config.Seed)
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// The world is virtual, so a resize only changes the viewport.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey queues game actions and handles the host-level keys directly.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionBack:
		// Only leave a run that is not in progress.
		if m.state.GameOver || m.state.Paused {
			m.backToMenu = true
			if m.quitOnBack {
				return m, tea.Quit
			}
		}
		return m, nil
	case core.ActionRestart:
		if !m.state.GameOver {
			return m, nil
		}
	case core.ActionSfxUp, core.ActionSfxDown, core.ActionMusicUp, core.ActionMusicDown:
		m.adjustVolume(action)
		return m, nil
	}

	m.pending.Set(action)
	return m, nil
}

func (m *GameModel) adjustVolume(action core.Action) {
	switch action {
	case core.ActionSfxUp:
		m.prefs = m.prefs.AdjustSfx(1)
	case core.ActionSfxDown:
		m.prefs = m.prefs.AdjustSfx(-1)
	case core.ActionMusicUp:
		m.prefs = m.prefs.AdjustMusic(1)
	case core.ActionMusicDown:
		m.prefs = m.prefs.AdjustMusic(-1)
	}
	m.host.savePreferences(m.prefs)

	m.toast = fmt.Sprintf(" SFX %3.0f%%  MUSIC %3.0f%% ", m.prefs.Sfx*100, m.prefs.Music*100)
	m.toastTicks = int(toastSeconds * float64(m.config.TickRate))
}

// handleTick restarts a finished run or steps the game with the pending input.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.pending.Has(core.ActionRestart) && m.state.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.start()
		m.state = m.game.State()
		m.saved = false
		m.pending.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.pending)
	m.state = result.State
	m.logEvents(result.Events)

	// Save once per game over
	if m.state.GameOver && !m.saved {
		if m.state.Score > 0 {
			m.host.saveResult(m.game, m.state.Score)
		}
		m.saved = true
	}

	if m.toastTicks > 0 {
		m.toastTicks--
	}

	m.pending.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m GameModel) logEvents(events []core.Event) {
	logger := m.host.logger()
	for _, ev := range events {
		switch ev.Kind {
		case core.EventCoinCollected:
			// Too frequent for the log.
		case core.EventDied:
			logger.Debug("run ended", "game", m.game.ID(), "cause", ev.Message, "score", ev.Value)
		default:
			logger.Debug(ev.Message, "event", ev.Kind, "value", ev.Value)
		}
	}
}

// saveScreenshot writes the current frame as plain text under the data
// directory, or ~/.minerun without one.
func (m *GameModel) saveScreenshot() {
	logger := m.host.logger()
	m.game.Render(m.screen)

	dir, err := m.host.screenshotDir()
	if err == nil {
		err = os.MkdirAll(dir, 0o755)
	}
	if err != nil {
		logger.Warn("cannot save screenshot", "error", err)
		return
	}

	path := filepath.Join(dir, m.game.ID()+"_"+time.Now().Format("20060102_150405")+".txt")
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		logger.Warn("cannot save screenshot", "error", err)
		return
	}
	logger.Info("screenshot saved", "path", path)
}

// View draws the game with the volume toast, if any.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.toastTicks > 0 && m.screen.Height() > 0 {
		x := max(0, m.screen.Width()-len(m.toast))
		m.screen.DrawTextColored(x, m.screen.Height()-1, m.toast, core.ColorBrightCyan)
	}
	return RenderScreen(m.screen)
}

// Preferences returns the current audio preferences.
func (m GameModel) Preferences() settings.Preferences {
	return m.prefs
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting reports whether the player quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player left the finished or paused run.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the terminal until the player quits or goes back.
// It reports whether the player asked to go back to a menu.
func Run(game registry.Game, host Host, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewGameModel(game, host, cfg)
	model.quitOnBack = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if gm, ok := final.(GameModel); ok {
		return gm.BackToMenu(), nil
	}
	return false, nil
}
