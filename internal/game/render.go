package game

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// TextAnchor says where on the board a line of text is placed.
type TextAnchor int

const (
	AnchorTopLeft TextAnchor = iota // Inside the board, top-left corner
	AnchorCenter                    // Centred on the board
	AnchorBottom                    // Centred just above the bottom edge
)

// TextPos places text relative to an anchor. Line offsets the text by
// whole text lines downward.
type TextPos struct {
	Anchor TextAnchor
	Line   int
}

// TextSize is a hint for frontends that can scale text.
type TextSize int

const (
	TextNormal TextSize = iota
	TextLarge
)

// Canvas is implemented by frontends. Coordinates are grid cells; the
// board covers columns [0, Columns) and rows [0, Rows).
type Canvas interface {
	DrawCell(x, y int, color core.Color)
	DrawRectOutline(r core.Rect, color core.Color)
	DrawText(text string, at TextPos, size TextSize)
}

// Messages shown by Draw.
const (
	StartHint = "Press an arrow key to start"
	PausedMsg = "Paused"
	RetryMsg  = "Press 'SPACE' to Play Again"
)

// Draw renders the current state to c.
func (s *Session) Draw(c Canvas) {
	sn := s.board.Snake()

	if !sn.Alive() {
		c.DrawText(fmt.Sprintf("Final Score: %d", s.board.Score()), TextPos{Anchor: AnchorCenter, Line: -1}, TextLarge)
		c.DrawText(RetryMsg, TextPos{Anchor: AnchorCenter, Line: 1}, TextNormal)
		return
	}

	c.DrawRectOutline(core.NewRect(0, 0, s.board.Columns(), s.board.Rows()), core.ColorWhite)

	for _, f := range s.board.Food() {
		c.DrawCell(f.X, f.Y, core.ColorRed)
	}

	// Tail first so the front of the body stays on top.
	body := sn.Body()
	for i := len(body) - 1; i >= 0; i-- {
		c.DrawCell(body[i].X, body[i].Y, BodyColor(i))
	}
	head := sn.Head()
	c.DrawCell(head.X, head.Y, core.ColorYellow)

	c.DrawText(fmt.Sprintf("Score: %d", s.board.Score()), TextPos{Anchor: AnchorTopLeft}, TextNormal)

	if !sn.Moving() {
		c.DrawText(StartHint, TextPos{Anchor: AnchorBottom}, TextNormal)
	}
	if s.paused {
		c.DrawText(PausedMsg, TextPos{Anchor: AnchorCenter}, TextLarge)
	}
}

// BodyColor returns the stripe color of body cell i, counted from the head.
func BodyColor(i int) core.Color {
	switch i % 4 {
	case 0:
		return core.ColorLime
	case 2:
		return core.ColorDarkGreen
	default:
		return core.ColorGreen
	}
}
