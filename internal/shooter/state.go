package shooter

// LabelNone is the power-up label shown when no effect was collected or the last one expired.
const LabelNone = "None"

// RunState is the run-level state machine:
// NotStarted -> Running <-> Paused, Running -> GameOver until the next Start.
type RunState int

const (
	RunNotStarted RunState = iota
	RunRunning
	RunPaused
	RunGameOver
)

// String returns the state name.
func (s RunState) String() string {
	switch s {
	case RunNotStarted:
		return "not_started"
	case RunRunning:
		return "running"
	case RunPaused:
		return "paused"
	case RunGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State is everything one run mutates.
type State struct {
	Hero     Hero
	Bullets  *BulletPool
	Enemies  []Enemy
	PowerUps []PowerUp
	Stars    []Star
	Effects  []Effect

	Score        int
	Level        int
	Alive        bool
	PowerUpLabel string
	Paused       bool
	Started      bool

	// Frame counts updated frames since Start.
	Frame uint64
}

// RunState derives the run-level state from the flags.
func (s *State) RunState() RunState {
	switch {
	case !s.Started:
		return RunNotStarted
	case !s.Alive:
		return RunGameOver
	case s.Paused:
		return RunPaused
	default:
		return RunRunning
	}
}
