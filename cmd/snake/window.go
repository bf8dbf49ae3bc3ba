package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/app"
	"github.com/vovakirdan/tui-snake/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play snake in a desktop window.

Controls:
  Arrows/WASD/hjkl  - Steer (the first press starts the snake)
  Space/R           - Play again after game over
  P                 - Pause
  Esc/Q             - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	opts := options()
	cfg, err := app.LoadConfig(opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := app.NewLogger(opts, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	session, err := app.NewSession(cfg, opts, logger)
	if err != nil {
		return err
	}

	return desktop.Run(session, cfg.Window, cfg.Loop.FrameRate, logger)
}
