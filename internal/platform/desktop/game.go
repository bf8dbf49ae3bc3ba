// Package desktop runs the snake game in a window with Ebiten.
package desktop

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

var bgColor = color.RGBA{0, 0, 0, 255}

// keyBindings maps keys to actions, checked in order each update.
var keyBindings = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK}, core.ActionUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ}, core.ActionDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH}, core.ActionLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL}, core.ActionRight},
	{[]ebiten.Key{ebiten.KeySpace, ebiten.KeyR}, core.ActionRestart},
	{[]ebiten.Key{ebiten.KeyP}, core.ActionPause},
	{[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}, core.ActionQuit},
}

// Game implements ebiten.Game for a snake session. Ebiten calls Update
// at the session's frame rate, so each update runs exactly one tick.
type Game struct {
	session *game.Session
	canvas  *ImageCanvas
	logger  *log.Logger
	input   core.InputFrame
	width   int
	height  int
}

// NewGame creates the window game for session using the window layout.
func NewGame(session *game.Session, cfg config.WindowConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	board := session.Board()
	canvas := NewImageCanvas(board.Columns(), board.Rows(), cfg.CellSize, cfg.Padding)
	w, h := canvas.Size()

	return &Game{
		session: session,
		canvas:  canvas,
		logger:  logger,
		input:   core.NewInputFrame(),
		width:   w,
		height:  h,
	}
}

// Update polls the keyboard and advances the session by one tick.
func (g *Game) Update() error {
	g.input.Clear()

	// Several keys may go down in the same frame; the order within a
	// frame follows keyBindings.
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				g.input.Set(b.action)
				break
			}
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.input.Set(core.ActionQuit)
	}

	if g.input.Has(core.ActionQuit) {
		g.logger.Info("quit", "score", g.session.State().Score, "ticks", g.session.Ticks())
		return ebiten.Termination
	}

	g.session.Apply(g.input)
	g.session.Step()
	return nil
}

// Draw renders the session to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	g.canvas.SetTarget(screen)
	g.session.Draw(g.canvas)
}

// Layout keeps a fixed logical size; Ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(session *game.Session, cfg config.WindowConfig, frameRate int, logger *log.Logger) error {
	g := NewGame(session, cfg, logger)

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(frameRate)

	g.logger.Info("window opened", "width", g.width, "height", g.height, "tps", frameRate)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
