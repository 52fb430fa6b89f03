package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/minerun/internal/config"
	"github.com/vovakirdan/minerun/internal/core"
	"github.com/vovakirdan/minerun/internal/registry"
)

// MenuItem represents a selectable mode in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// menuExit records how the menu closed.
type menuExit int

const (
	menuOpen menuExit = iota
	menuPlay
	menuScores
	menuQuit
)

// MenuModel is the mode picker with a difficulty selector.
type MenuModel struct {
	items        []MenuItem
	cursor       int
	difficulties []string // "" keeps the configured preset
	difficulty   int
	best         func(gameID string) int
	config       core.RuntimeConfig
	keyMapper    *KeyMapper
	exit         menuExit
}

// NewMenuModel lists every registered mode.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	modes := registry.List()
	items := make([]MenuItem, len(modes))
	for i, g := range modes {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
	}

	difficulties := make([]string, 1, len(config.Presets)+1)
	for _, p := range config.Presets {
		difficulties = append(difficulties, string(p))
	}

	return MenuModel{
		items:        items,
		difficulties: difficulties,
		config:       cfg,
		keyMapper:    NewKeyMapper(),
	}
}

// WithBestScores shows best(id) beside each mode when it is positive.
func (m MenuModel) WithBestScores(best func(gameID string) int) MenuModel {
	m.best = best
	return m
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.difficulties)
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.exit = menuQuit
	case MenuActionScoreboard:
		m.exit = menuScores
	case MenuActionSelect:
		if len(m.items) > 0 {
			m.exit = menuPlay
		}
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = max(min(m.cursor+1, len(m.items)-1), 0)
	case MenuActionLeft:
		m.difficulty = (m.difficulty + n - 1) % n
	case MenuActionRight:
		m.difficulty = (m.difficulty + 1) % n
	}
	if m.exit != menuOpen {
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.exit == menuQuit {
		return ""
	}
	w := m.config.ScreenW

	var b strings.Builder
	line := func(s string) {
		b.WriteString(centerText(s, w))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	line(menuTitleStyle.Render("M I N E   R U N"))
	b.WriteString("\n")
	line("Select a mode")
	b.WriteString("\n")

	for i, item := range m.items {
		var best string
		if m.best != nil {
			if score := m.best(item.GameID); score > 0 {
				best = menuDimStyle.Render(fmt.Sprintf("  best %d", score))
			}
		}
		if i == m.cursor {
			line(menuCursorStyle.Render("> "+item.Title) + best)
		} else {
			line("  " + item.Title + best)
		}
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		line(menuDimStyle.Render(m.items[m.cursor].Description))
	}

	b.WriteString("\n")
	line(fmt.Sprintf("Difficulty: < %s >", m.difficultyLabel()))
	b.WriteString("\n")
	line(menuDimStyle.Render("Up/Down: Mode  |  Left/Right: Difficulty  |  Enter: Play  |  Tab: Scores  |  Q: Quit"))

	return b.String()
}

func (m MenuModel) difficultyLabel() string {
	if d := m.Difficulty(); d != "" {
		return d
	}
	return "from config"
}

// Selected returns the chosen mode, or nil while none is chosen.
func (m MenuModel) Selected() *MenuItem {
	if m.exit != menuPlay {
		return nil
	}
	item := m.items[m.cursor]
	return &item
}

// Difficulty returns the chosen preset name; empty keeps the configured one.
func (m MenuModel) Difficulty() string {
	return m.difficulties[m.difficulty]
}

// IsQuitting reports whether the user asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.exit == menuQuit
}

// WantsScoreboard reports whether the user asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.exit == menuScores
}

// Config returns the runtime config, resized to the latest window.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Difficulty      string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the menu until the user picks something.
func RunMenu(cfg core.RuntimeConfig, host Host) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg).WithBestScores(host.BestScore), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}

// Result summarizes how the menu ended.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.config, Difficulty: m.Difficulty()}
	switch m.exit {
	case menuScores:
		result.WantsScoreboard = true
	case menuPlay:
		result.GameID = m.items[m.cursor].GameID
	default:
		result.Quit = true
	}
	return result
}

// SelectGame creates the game for a menu result and applies its difficulty.
func SelectGame(res MenuResult) (registry.Game, error) {
	game, err := registry.Create(res.GameID)
	if err != nil {
		return nil, err
	}
	if res.Difficulty == "" {
		return game, nil
	}
	if da, ok := game.(registry.DifficultyAware); ok {
		if err := da.SetDifficulty(res.Difficulty); err != nil {
			return nil, err
		}
	}
	return game, nil
}
