package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters, 0 when not rendering to a terminal
	ScreenH  int   // Terminal height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a run.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level
	Started  bool // Whether Start has been pressed at least once
	GameOver bool // Whether the hero has died
	Paused   bool // Whether the run is paused
}

// StepResult is returned after each frame.
type StepResult struct {
	State GameState
	// Rendered is false when the frame returned early without drawing.
	Rendered bool
}
