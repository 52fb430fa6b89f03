package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minerun/internal/core"
)

// GameKeyMap holds the in-game bindings.
type GameKeyMap struct {
	Jump       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Hitboxes   key.Binding
	SfxUp      key.Binding
	SfxDown    key.Binding
	MusicUp    key.Binding
	MusicDown  key.Binding
	Screenshot key.Binding
}

// DefaultGameKeyMap returns the standard Mine Run controls.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Jump:       key.NewBinding(key.WithKeys(" ", "up", "w"), key.WithHelp("space", "jump")),
		Pause:      key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Back:       key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "menu")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Hitboxes:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hitboxes")),
		SfxUp:      key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "sfx +")),
		SfxDown:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "sfx -")),
		MusicUp:    key.NewBinding(key.WithKeys("="), key.WithHelp("=", "music +")),
		MusicDown:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "music -")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Pause, k.Restart, k.Back, k.Quit},
		{k.Hitboxes, k.SfxUp, k.SfxDown, k.MusicUp, k.MusicDown, k.Screenshot},
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the in-game bindings.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Jump):
		return core.ActionJump, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	case key.Matches(msg, k.Hitboxes):
		return core.ActionHitboxes, false
	case key.Matches(msg, k.SfxUp):
		return core.ActionSfxUp, false
	case key.Matches(msg, k.SfxDown):
		return core.ActionSfxDown, false
	case key.Matches(msg, k.MusicUp):
		return core.ActionMusicUp, false
	case key.Matches(msg, k.MusicDown):
		return core.ActionMusicDown, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
