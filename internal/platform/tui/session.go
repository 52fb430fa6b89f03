package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minerun/internal/core"
)

// SessionModel runs menu, game and scoreboard inside one program, as an
// SSH session needs. Children quit the program when run alone; here their
// tea.Quit is dropped and the session returns to the menu instead.
type SessionModel struct {
	host       Host
	config     core.RuntimeConfig
	menu       MenuModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel starts a session at the menu.
func NewSessionModel(host Host, cfg core.RuntimeConfig) SessionModel {
	m := SessionModel{host: host, config: cfg}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.config).WithBestScores(m.host.BestScore)
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = ws.Width, ws.Height
	}

	switch {
	case m.gameModel != nil:
		return m.updateGame(msg)
	case m.scoreboard != nil:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// toMenu closes the current child and shows a fresh menu.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.gameModel, m.scoreboard = nil, nil
	m.menu = m.newMenu()
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	switch {
	case m.menu.IsQuitting():
		return m.quit()

	case m.menu.WantsScoreboard():
		sb := NewScoreboardModel(m.host.Store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		return m, sb.Init()

	case m.menu.Selected() != nil:
		res := m.menu.Result()
		log := m.host.logger()
		game, err := SelectGame(res)
		if err != nil {
			log.Warn("cannot start game", "game", res.GameID, "error", err)
			return m.toMenu()
		}
		log.Info("game started", "game", res.GameID, "difficulty", res.Difficulty)
		gm := NewGameModel(game, m.host, m.config)
		m.gameModel = &gm
		return m, gm.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.gameModel = &gm
	}

	switch {
	case m.gameModel.IsQuitting():
		return m.quit()
	case m.gameModel.BackToMenu():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		return m.quit()
	case m.scoreboard.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.gameModel != nil:
		return m.gameModel.View()
	case m.scoreboard != nil:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}
