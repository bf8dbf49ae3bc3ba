// Package config provides YAML-based configuration loading for the
// snake game: board size, loop rate and frontend layout.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("config: invalid")

// Config contains all user-editable settings.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Loop     LoopConfig     `yaml:"loop"`
	Window   WindowConfig   `yaml:"window"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// BoardConfig defines the grid size in cells.
type BoardConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// LoopConfig defines the fixed simulation rate.
type LoopConfig struct {
	FrameRate  int `yaml:"frame_rate"`   // Ticks per second
	MaxCatchUp int `yaml:"max_catch_up"` // Max ticks per frame when behind
}

// WindowConfig defines the desktop window layout.
type WindowConfig struct {
	Title    string `yaml:"title"`
	CellSize int    `yaml:"cell_size"` // Pixels per cell
	Padding  int    `yaml:"padding"`   // Pixels around the board
}

// TerminalConfig defines the terminal layout.
type TerminalConfig struct {
	CellWidth int `yaml:"cell_width"` // Characters per cell
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	switch {
	case c.Board.Columns <= 0 || c.Board.Rows <= 0:
		return fmt.Errorf("%w: board size %dx%d", ErrInvalid, c.Board.Columns, c.Board.Rows)
	case c.Loop.FrameRate <= 0:
		return fmt.Errorf("%w: frame_rate %d", ErrInvalid, c.Loop.FrameRate)
	case c.Loop.MaxCatchUp <= 0:
		return fmt.Errorf("%w: max_catch_up %d", ErrInvalid, c.Loop.MaxCatchUp)
	case c.Window.CellSize <= 0:
		return fmt.Errorf("%w: cell_size %d", ErrInvalid, c.Window.CellSize)
	case c.Window.Padding < 0:
		return fmt.Errorf("%w: padding %d", ErrInvalid, c.Window.Padding)
	case c.Terminal.CellWidth <= 0:
		return fmt.Errorf("%w: cell_width %d", ErrInvalid, c.Terminal.CellWidth)
	}
	return nil
}
