package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFrameLoopStopFromFrame(t *testing.T) {
	loop := NewFrameLoop(0)
	frames := 0

	err := loop.Run(context.Background(), func() {
		frames++
		if frames == 10 {
			loop.Stop()
		}
	})
	if err != nil {
		t.Fatalf("Run after Stop should return nil, got %v", err)
	}
	if frames != 10 {
		t.Errorf("expected 10 frames, got %d", frames)
	}

	// Stop is idempotent
	loop.Stop()
}

func TestFrameLoopContextCancel(t *testing.T) {
	loop := NewFrameLoop(1000)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	frames := 0
	err := loop.Run(ctx, func() { frames++ })
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if frames == 0 {
		t.Error("expected at least one frame before cancellation")
	}
}

func TestFrameLoopInterval(t *testing.T) {
	if got := NewFrameLoop(60).Interval(); got != time.Second/60 {
		t.Errorf("Interval() = %v, want %v", got, time.Second/60)
	}
	if got := NewFrameLoop(0).Interval(); got != 0 {
		t.Errorf("unthrottled Interval() = %v, want 0", got)
	}
}
