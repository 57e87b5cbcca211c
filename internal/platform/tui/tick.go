// Package tui provides the Bubble Tea front end of the shooter.
// It hosts the game loop on tick messages, maps terminal keys to game
// input and draws the canvas onto a character grid.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one game frame.
type TickMsg struct {
	Time time.Time
	// loop identifies the game model that scheduled the tick. A model drops
	// ticks of earlier games still in flight after a return to the menu.
	loop uint64
}

var loopIDs atomic.Uint64

// nextLoopID returns a fresh tick loop identifier.
func nextLoopID() uint64 {
	return loopIDs.Add(1)
}

// tickCmd schedules the next frame. The model issues it on every tick,
// paused or not, so the loop never stops on its own.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, loop: loop}
	})
}
