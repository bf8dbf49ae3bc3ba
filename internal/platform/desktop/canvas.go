package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Debug font metrics used by ebitenutil.DebugPrint.
const (
	glyphW      = 6
	lineH       = 16
	largeScale  = 2
	strokeWidth = 2
)

// ImageCanvas draws a session onto an Ebiten image. The board sits
// inside a padding margin; cells are cellSize pixels square.
type ImageCanvas struct {
	target   *ebiten.Image
	columns  int
	rows     int
	cellSize int
	padding  int

	large *core.FrameCache[*ebiten.Image] // Pre-rendered large text
}

// NewImageCanvas lays out a columns x rows board.
func NewImageCanvas(columns, rows, cellSize, padding int) *ImageCanvas {
	return &ImageCanvas{
		columns:  columns,
		rows:     rows,
		cellSize: cellSize,
		padding:  padding,
		large:    core.NewFrameCache((*ebiten.Image).Deallocate),
	}
}

// Size returns the logical screen size in pixels.
func (c *ImageCanvas) Size() (w, h int) {
	return c.columns*c.cellSize + 2*c.padding, c.rows*c.cellSize + 2*c.padding
}

// SetTarget sets the image drawn to by the next calls and starts a new
// frame, releasing large text left over from earlier frames.
func (c *ImageCanvas) SetTarget(dst *ebiten.Image) {
	c.target = dst
	c.large.Sweep()
}

// DrawCell fills grid cell (x, y).
func (c *ImageCanvas) DrawCell(x, y int, color core.Color) {
	px := float32(c.padding + x*c.cellSize)
	py := float32(c.padding + y*c.cellSize)
	size := float32(c.cellSize)
	vector.DrawFilledRect(c.target, px, py, size, size, color.RGBA(), false)
}

// DrawRectOutline strokes the border of grid rect r.
func (c *ImageCanvas) DrawRectOutline(r core.Rect, color core.Color) {
	px := r.Scale(c.cellSize, c.cellSize)
	vector.StrokeRect(c.target,
		float32(c.padding+px.X), float32(c.padding+px.Y),
		float32(px.W), float32(px.H),
		strokeWidth, color.RGBA(), false)
}

// DrawText prints a line of text with the debug font. Large text is
// drawn at double size.
func (c *ImageCanvas) DrawText(text string, at game.TextPos, size game.TextSize) {
	scale := 1
	if size == game.TextLarge {
		scale = largeScale
	}
	w := len(text) * glyphW * scale
	h := lineH * scale
	sw, sh := c.Size()
	cx, cy := core.NewRect(0, 0, sw, sh).Center()

	var x, y int
	switch at.Anchor {
	case game.AnchorTopLeft:
		x = c.padding
		y = (c.padding-h)/2 + at.Line*lineH
	case game.AnchorCenter:
		x = cx - w/2
		y = cy - h/2 + at.Line*lineH*largeScale
	case game.AnchorBottom:
		x = cx - w/2
		y = c.padding + c.rows*c.cellSize - h - c.cellSize/2 + at.Line*lineH
	}

	if scale == 1 {
		ebitenutil.DebugPrintAt(c.target, text, x, y)
		return
	}
	c.drawLarge(text, x, y)
}

func (c *ImageCanvas) drawLarge(text string, x, y int) {
	img := c.large.Get(text, func() *ebiten.Image {
		img := ebiten.NewImage(len(text)*glyphW, lineH)
		ebitenutil.DebugPrint(img, text)
		return img
	})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(largeScale, largeScale)
	op.GeoM.Translate(float64(x), float64(y))
	c.target.DrawImage(img, op)
}
