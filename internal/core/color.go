package core

// Color is the foreground colour of a screen cell. Frontends map it to
// their own palette: lipgloss styles in the TUI, tcell styles on the console.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorBrightGreen
	ColorBrightRed
	ColorBrightWhite
	ColorGray
)

// Board roles.
const (
	ColorWall  = ColorGray
	ColorSnake = ColorBrightGreen
	ColorFood  = ColorBrightRed
	ColorHUD   = ColorBrightWhite
	ColorAlert = ColorRed
)
