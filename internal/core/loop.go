package core

import (
	"context"
	"sync"
	"time"
)

// FrameLoop calls a frame function once per tick until cancelled.
// A loop created with a non-positive tick rate runs unthrottled.
type FrameLoop struct {
	interval time.Duration
	stop     chan struct{}
	once     sync.Once
}

// NewFrameLoop creates a loop running tickRate frames per second.
func NewFrameLoop(tickRate int) *FrameLoop {
	var interval time.Duration
	if tickRate > 0 {
		interval = time.Second / time.Duration(tickRate)
	}
	return &FrameLoop{
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Interval returns the time between frames, zero when unthrottled.
func (l *FrameLoop) Interval() time.Duration {
	return l.interval
}

// Run blocks, calling frame on every tick. The next frame is always scheduled,
// whatever the frame function did. Run returns nil after Stop and the context
// error after cancellation.
func (l *FrameLoop) Run(ctx context.Context, frame func()) error {
	if l.interval == 0 {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-l.stop:
				return nil
			default:
				frame()
			}
		}
	}

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return nil
		case <-ticker.C:
			frame()
		}
	}
}

// Stop ends the loop. Safe to call more than once and from the frame function.
func (l *FrameLoop) Stop() {
	l.once.Do(func() { close(l.stop) })
}
