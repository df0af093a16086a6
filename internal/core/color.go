package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI 256-color codes.
type Color uint8

// Colors available to the renderer, roughly ordered from cool to hot so
// tile values can walk up the list as they grow.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorBrightWhite
	ColorYellow
	ColorBrightYellow
	ColorOrange
	ColorRed
	ColorBrightRed
	ColorMagenta
	ColorBrightMagenta
	ColorGreen
	ColorBrightGreen
	ColorCyan
	ColorBrightCyan
	ColorBlue
	ColorBrightBlue
)
