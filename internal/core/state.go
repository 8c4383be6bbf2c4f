package core

// RuntimeConfig carries host settings that are not part of the game tuning.
type RuntimeConfig struct {
	TickRate int   // Frames per second requested from the host scheduler
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultRuntime returns a RuntimeConfig with the default frame rate.
func DefaultRuntime() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0,
	}
}

// Phase is the state of the game state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game-over"
	}
	return "playing"
}

// GameState is the observable state of a running game.
type GameState struct {
	Score int
	Phase Phase
}

// Over reports whether the round has ended and is waiting for play again.
func (s GameState) Over() bool {
	return s.Phase == PhaseGameOver
}

// StepResult is returned by a simulation step.
type StepResult struct {
	State GameState
	// Render is true when the step advanced the simulation and a render pass is due.
	Render bool
	// Collided is true when this step ended the round.
	Collided bool
}
