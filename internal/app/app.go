// Package app wires configuration, logging and a game session together
// for the snake commands.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/rng"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Options holds the command-line settings. Zero values fall back to the
// config file.
type Options struct {
	ConfigPath string
	FPS        int
	Seed       int64 // 0 seeds from entropy
	Columns    int
	Rows       int
	LogLevel   string
	LogFile    string
}

// LoadConfig loads the config file and applies the overrides in opts.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	return ApplyOverrides(cfg, opts)
}

// ApplyOverrides replaces config values with any non-zero size and rate
// options and validates the result.
func ApplyOverrides(cfg config.Config, opts Options) (config.Config, error) {
	if opts.FPS > 0 {
		cfg.Loop.FrameRate = opts.FPS
	}
	if opts.Columns > 0 {
		cfg.Board.Columns = opts.Columns
	}
	if opts.Rows > 0 {
		cfg.Board.Rows = opts.Rows
	}
	return cfg, cfg.Validate()
}

// NewLogger builds the logger. Without a log file, output goes to
// fallback; the terminal frontend passes io.Discard since it owns the screen.
// The returned close function releases the log file.
func NewLogger(opts Options, fallback io.Writer) (*log.Logger, func() error, error) {
	levelName := opts.LogLevel
	if levelName == "" {
		levelName = "info"
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", opts.LogLevel, err)
	}

	w := fallback
	closeFn := func() error { return nil }
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", opts.LogFile, err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closeFn, nil
}

// NewSession builds a board and the session driving it.
func NewSession(cfg config.Config, opts Options, logger *log.Logger) (*game.Session, error) {
	var src snake.RandomSource
	if opts.Seed != 0 {
		src = rng.NewSeeded(uint64(opts.Seed))
	} else {
		src = rng.New()
	}

	board, err := snake.NewBoard(cfg.Board.Columns, cfg.Board.Rows, snake.DefaultRules(), src)
	if err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Info("new game",
			"columns", cfg.Board.Columns,
			"rows", cfg.Board.Rows,
			"fps", cfg.Loop.FrameRate,
			"seed", opts.Seed)
	}
	return game.NewSession(board, cfg.Loop.FrameRate, cfg.Loop.MaxCatchUp, logger)
}
