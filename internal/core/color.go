package core

// Color is a terminal color used for a cell's foreground or background.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the game renderer.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightGreen
	ColorBrightBlue
	ColorBrightCyan
	ColorOrange
	ColorGray
	ColorGrass // dark teal used for grass fields
	ColorRoad  // asphalt gray
)
