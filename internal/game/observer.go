package game

// Observer receives the presentation signals of the state machine.
// Calls happen synchronously on the goroutine that drives the game.
type Observer interface {
	// ScoreChanged is called after a lap is scored and after a reset.
	ScoreChanged(score int)
	// GameOver is called when a collision ends the round; the host shows a restart prompt.
	GameOver()
	// GameReset is called when play resumes after a game over; the host hides the prompt.
	GameReset()
}

// NopObserver ignores every signal.
type NopObserver struct{}

func (NopObserver) ScoreChanged(int) {}
func (NopObserver) GameOver() {}
func (NopObserver) GameReset() {}
