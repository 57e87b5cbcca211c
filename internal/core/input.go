package core

// Key is a logical key the shooter reacts to.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
	keyCount
)

// AllKeys lists every logical key.
func AllKeys() []Key {
	return []Key{KeyUp, KeyDown, KeyLeft, KeyRight, KeyFire}
}

// String returns the key name used in logs.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

// KeyFromCode maps a named key code to a Key.
// Only ArrowUp, ArrowDown, ArrowLeft, ArrowRight and Space are recognized.
func KeyFromCode(code string) (Key, bool) {
	switch code {
	case "ArrowUp":
		return KeyUp, true
	case "ArrowDown":
		return KeyDown, true
	case "ArrowLeft":
		return KeyLeft, true
	case "ArrowRight":
		return KeyRight, true
	case "Space":
		return KeyFire, true
	default:
		return 0, false
	}
}

// KeyState holds the currently held keys plus a press latch per key.
// A press sets the latch only on the transition from released to held,
// so auto-repeat of a held key does not latch again.
type KeyState struct {
	held    [keyCount]bool
	pressed [keyCount]bool
}

// Press marks the key as held.
func (s *KeyState) Press(k Key) {
	if k < 0 || k >= keyCount {
		return
	}
	if !s.held[k] {
		s.pressed[k] = true
	}
	s.held[k] = true
}

// Release marks the key as no longer held.
func (s *KeyState) Release(k Key) {
	if k < 0 || k >= keyCount {
		return
	}
	s.held[k] = false
}

// PressCode presses the key with the given code name. Unknown codes are ignored.
func (s *KeyState) PressCode(code string) {
	if k, ok := KeyFromCode(code); ok {
		s.Press(k)
	}
}

// ReleaseCode releases the key with the given code name. Unknown codes are ignored.
func (s *KeyState) ReleaseCode(code string) {
	if k, ok := KeyFromCode(code); ok {
		s.Release(k)
	}
}

// Held reports whether the key is currently down.
func (s *KeyState) Held(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.held[k]
}

// ConsumePress reports whether the key was pressed since the last call and clears the latch.
func (s *KeyState) ConsumePress(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	p := s.pressed[k]
	s.pressed[k] = false
	return p
}

// Reset releases all keys and clears latches.
func (s *KeyState) Reset() {
	*s = KeyState{}
}

// Action represents a semantic platform action, abstracted from physical key presses.
// Gameplay keys go through KeyState; actions drive menus and run control.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - move selection up
	ActionDown              // S, Down arrow - move selection down
	ActionConfirm           // Enter - confirm selection / start run
	ActionPause             // P - pause/resume
	ActionBack              // B, Escape - go back to menu
	ActionQuit              // Q, Ctrl+C - exit
	ActionScreenshot        // Ctrl+S - write a text screenshot
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
