package tui

import (
	"time"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// HoldTracker emulates key releases for terminals, which only report presses.
// A key stays held until no press for it arrived within the hold window;
// auto-repeat keeps extending the window.
type HoldTracker struct {
	hold      time.Duration
	deadlines *intmap.Map[core.Key, time.Time]
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(hold time.Duration) *HoldTracker {
	return &HoldTracker{
		hold:      hold,
		deadlines: intmap.New[core.Key, time.Time](len(core.AllKeys())),
	}
}

// Press forwards a key press and extends its hold window.
func (h *HoldTracker) Press(keys *core.KeyState, k core.Key, now time.Time) {
	keys.Press(k)
	h.deadlines.Put(k, now.Add(h.hold))
}

// Expire releases keys whose hold window has passed.
func (h *HoldTracker) Expire(keys *core.KeyState, now time.Time) {
	for _, k := range core.AllKeys() {
		deadline, ok := h.deadlines.Get(k)
		if !ok || now.Before(deadline) {
			continue
		}
		keys.Release(k)
		h.deadlines.Del(k)
	}
}

// Held returns the number of keys currently held by the tracker.
func (h *HoldTracker) Held() int {
	return h.deadlines.Len()
}

// Reset forgets every held key.
func (h *HoldTracker) Reset(keys *core.KeyState) {
	h.deadlines.Clear()
	keys.Reset()
}
