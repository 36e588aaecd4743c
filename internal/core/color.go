package core

// Color represents a foreground color for a screen cell.
// The terminal platform maps each one to an ANSI 256-color code.
type Color uint8

// Palette used by the runner.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink   // 256-color only
	ColorPurple // 256-color only
	ColorSky    // 256-color only
)
