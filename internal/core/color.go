package core

import "image/color"

// Color represents a foreground color for a drawn cell.
// Values map to ANSI 256-color codes in the terminal and to RGB on desktop.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorYellow
	ColorWhite
	ColorLime
	ColorGreen
	ColorDarkGreen
	ColorGray
)

// palette holds the ANSI code and RGB value for each Color.
var palette = map[Color]struct {
	ansi string
	rgba color.RGBA
}{
	ColorDefault:   {"", color.RGBA{255, 255, 255, 255}},
	ColorBlack:     {"0", color.RGBA{0, 0, 0, 255}},
	ColorRed:       {"9", color.RGBA{255, 0, 0, 255}},
	ColorYellow:    {"11", color.RGBA{255, 255, 0, 255}},
	ColorWhite:     {"15", color.RGBA{255, 255, 255, 255}},
	ColorLime:      {"41", color.RGBA{20, 200, 40, 255}},
	ColorGreen:     {"34", color.RGBA{20, 160, 40, 255}},
	ColorDarkGreen: {"28", color.RGBA{20, 120, 40, 255}},
	ColorGray:      {"245", color.RGBA{138, 138, 138, 255}},
}

// ANSI returns the terminal color code, or "" for the default color.
func (c Color) ANSI() string {
	return palette[c].ansi
}

// RGBA returns the color for pixel frontends.
func (c Color) RGBA() color.RGBA {
	if p, ok := palette[c]; ok {
		return p.rgba
	}
	return palette[ColorDefault].rgba
}
