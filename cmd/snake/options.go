package main

import "github.com/vovakirdan/tui-snake/internal/app"

// options collects the global flags.
func options() app.Options {
	return app.Options{
		ConfigPath: flagConfig,
		FPS:        flagFPS,
		Seed:       flagSeed,
		Columns:    flagColumns,
		Rows:       flagRows,
		LogLevel:   flagLogLevel,
		LogFile:    flagLogFile,
	}
}
