package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game keys and platform actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapGameKey returns the ship control bound to the key, if any.
func (km *KeyMapper) MapGameKey(msg tea.KeyMsg) (core.Key, bool) {
	switch msg.String() {
	case "up", "w":
		return core.KeyUp, true
	case "down", "s":
		return core.KeyDown, true
	case "left", "a":
		return core.KeyLeft, true
	case "right", "d":
		return core.KeyRight, true
	case " ":
		return core.KeyFire, true
	}
	return 0, false
}

// MapAction translates a key to a run-control action.
func (km *KeyMapper) MapAction(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "enter":
		return core.ActionConfirm
	case "p":
		return core.ActionPause
	case "b", "esc":
		return core.ActionBack
	case "ctrl+s":
		return core.ActionScreenshot
	}
	return core.ActionNone
}

// MapMenuAction translates a key to a menu action.
func (km *KeyMapper) MapMenuAction(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "w", "up", "k": // vim-style k for up
		return core.ActionUp
	case "s", "down", "j": // vim-style j for down
		return core.ActionDown
	case "enter", " ":
		return core.ActionConfirm
	case "b", "esc":
		return core.ActionBack
	}
	return core.ActionNone
}
