package core

// Action is a player intent decoded from a key press.
type Action uint8

const (
	ActionNone Action = iota
	ActionJump
	ActionPause
	ActionRestart
	ActionBack
	ActionQuit
	ActionHitboxes
	ActionSfxUp
	ActionSfxDown
	ActionMusicUp
	ActionMusicDown

	numActions
)

var actionNames = [numActions]string{
	ActionNone:      "None",
	ActionJump:      "Jump",
	ActionPause:     "Pause",
	ActionRestart:   "Restart",
	ActionBack:      "Back",
	ActionQuit:      "Quit",
	ActionHitboxes:  "Hitboxes",
	ActionSfxUp:     "SfxUp",
	ActionSfxDown:   "SfxDown",
	ActionMusicUp:   "MusicUp",
	ActionMusicDown: "MusicDown",
}

func (a Action) String() string {
	if a >= numActions {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions pressed since the previous tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as pressed. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= numActions {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return a < numActions && f.bits&(1<<a) != 0
}

// Empty reports whether no action was pressed.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear drops every pressed action.
func (f *InputFrame) Clear() {
	f.bits = 0
}
