package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Columns: 28,
			Rows:    20,
		},
		Loop: LoopConfig{
			FrameRate:  60,
			MaxCatchUp: 5,
		},
		Window: WindowConfig{
			Title:    "Snake",
			CellSize: 20,
			Padding:  40,
		},
		Terminal: TerminalConfig{
			CellWidth: 2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
