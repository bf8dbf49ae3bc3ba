package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/app"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play snake in the terminal.

Controls:
  Arrows/WASD/hjkl  - Steer (the first press starts the snake)
  Space/R           - Play again after game over
  P                 - Pause
  ?                 - Show all keys
  Q/Ctrl+C          - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	opts := options()
	cfg, err := app.LoadConfig(opts)
	if err != nil {
		return err
	}

	// Logs would corrupt the screen, so they only go to a file.
	logger, closeLog, err := app.NewLogger(opts, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	session, err := app.NewSession(cfg, opts, logger)
	if err != nil {
		return err
	}

	// Get terminal size early; Bubble Tea sends the real size on start.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Loop.FrameRate,
	}
	return tui.Run(session, rt, cfg.Terminal.CellWidth, logger)
}
