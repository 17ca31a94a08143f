package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI colors in the platform renderer.
type Color uint8

// Palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// Roles used by the game renderer.
const (
	ColorEnemy    = ColorBrightRed
	ColorPlayer   = ColorBrightCyan
	ColorAxis     = ColorGray
	ColorHUD      = ColorWhite
	ColorSelected = ColorBrightYellow
	ColorWin      = ColorBrightGreen
	ColorLose     = ColorRed
)
