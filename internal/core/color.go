package core

// Color is the foreground color of a screen cell.
// Values map to ANSI 256-color codes in the terminal frontend.
type Color uint8

// Palette used by the scene and the HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray
)
