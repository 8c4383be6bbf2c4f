package core

// Direction is a discrete movement request for the player.
// DirNone is the zero value and means "no movement".
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirUp
	DirRight
	DirDown
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Horizontal reports whether d is left or right.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Vertical reports whether d is up or down.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// Action is a host-level intent that is not a movement.
type Action int

const (
	ActionNone       Action = iota
	ActionPlayAgain         // Enter, R - restart after game over
	ActionQuit              // Q, Ctrl+C - leave the game
	ActionScreenshot        // Ctrl+S - dump the screen buffer
	ActionHistory           // Tab - toggle the rounds played this session
)
