package core

// RuntimeConfig contains configuration passed to interactive viewers.
type RuntimeConfig struct {
	ScreenW   int    // Screen width in characters
	ScreenH   int    // Screen height in characters
	FrameRate int    // Snapshots shown per second
	Seed      uint64 // RNG seed used to produce the trace
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 5,
		Seed:      0, // 0 means use current time
	}
}

// Action represents a semantic viewer action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionPause              // Space, P
	ActionStepForward        // Right arrow, L
	ActionStepBack           // Left arrow, H
	ActionRestart            // R - rewind to the first snapshot
	ActionFaster             // + or =
	ActionSlower             // -
	ActionNewRun             // N - simulate again with the next seed
	ActionQuit               // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionStepForward:
		return "StepForward"
	case ActionStepBack:
		return "StepBack"
	case ActionRestart:
		return "Restart"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionNewRun:
		return "NewRun"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
