package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

const (
	cellRune = '█'
	hudRows  = 1 // Score line above the board
)

// RequiredSize returns the screen size in characters needed to show a
// columns x rows board with cellWidth characters per cell.
func RequiredSize(columns, rows, cellWidth int) (w, h int) {
	return columns*cellWidth + 2, rows + 2 + hudRows
}

// ScreenCanvas draws a session onto a core.Screen. The board is centred
// horizontally with its score line on the first row.
type ScreenCanvas struct {
	screen    *core.Screen
	columns   int
	rows      int
	cellWidth int
	originX   int // Screen column of the board's left border
	originY   int // Screen row of the board's top border
}

// NewScreenCanvas lays out a columns x rows board on screen.
func NewScreenCanvas(screen *core.Screen, columns, rows, cellWidth int) *ScreenCanvas {
	w, _ := RequiredSize(columns, rows, cellWidth)
	return &ScreenCanvas{
		screen:    screen,
		columns:   columns,
		rows:      rows,
		cellWidth: cellWidth,
		originX:   core.Clamp((screen.Width()-w)/2, 0, screen.Width()),
		originY:   hudRows,
	}
}

// Fits reports whether the whole board fits on the screen.
func (c *ScreenCanvas) Fits() bool {
	w, h := RequiredSize(c.columns, c.rows, c.cellWidth)
	return c.screen.Width() >= w && c.screen.Height() >= h
}

// DrawCell fills grid cell (x, y).
func (c *ScreenCanvas) DrawCell(x, y int, color core.Color) {
	if !core.NewRect(0, 0, c.columns, c.rows).Contains(x, y) {
		return
	}
	sx := c.originX + 1 + x*c.cellWidth
	sy := c.originY + 1 + y
	for i := 0; i < c.cellWidth; i++ {
		c.screen.SetColored(sx+i, sy, cellRune, color)
	}
}

// DrawRectOutline draws a box just outside the grid rect r.
func (c *ScreenCanvas) DrawRectOutline(r core.Rect, color core.Color) {
	box := r.Scale(c.cellWidth, 1)
	c.screen.DrawBox(core.NewRect(c.originX+box.X, c.originY+box.Y, box.W+2, box.H+2), color)
}

// DrawText places a line of text. Large text is drawn highlighted since a
// terminal cannot scale it.
func (c *ScreenCanvas) DrawText(text string, at game.TextPos, size game.TextSize) {
	color := core.ColorWhite
	if size == game.TextLarge {
		color = core.ColorYellow
	}

	w, _ := RequiredSize(c.columns, c.rows, c.cellWidth)
	centerX := c.originX + (w-len([]rune(text)))/2

	switch at.Anchor {
	case game.AnchorTopLeft:
		c.screen.DrawText(c.originX, c.originY-hudRows+at.Line, text, color)
	case game.AnchorCenter:
		c.screen.DrawText(centerX, c.originY+1+c.rows/2+at.Line, text, color)
	case game.AnchorBottom:
		c.screen.DrawText(centerX, c.originY+c.rows+at.Line, text, color)
	}
}

// DrawTooSmall replaces the screen content with a resize prompt. Narrow
// screens get the short form of each line.
func (c *ScreenCanvas) DrawTooSmall() {
	w, h := RequiredSize(c.columns, c.rows, c.cellWidth)
	width := c.screen.Width()

	title := "Terminal too small"
	if len(title) > width {
		title = "Too small"
	}
	need := fmt.Sprintf("Need %dx%d, have %dx%d", w, h, width, c.screen.Height())
	if len(need) > width {
		need = fmt.Sprintf("Need %dx%d", w, h)
	}

	mid := c.screen.Height() / 2
	c.screen.DrawTextCentered(mid-1, title, core.ColorRed)
	c.screen.DrawTextCentered(mid+1, need, core.ColorGray)
}
