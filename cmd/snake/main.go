// snake is the classic snake game for the terminal and the desktop.
//
// Usage:
//
//	snake                 - Play in the terminal (same as "snake play")
//	snake play            - Play in the terminal
//	snake window          - Play in a desktop window
//	snake config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.snake, ./configs)
//	--fps <rate>        - Simulation ticks per second
//	--seed <value>      - RNG seed for reproducible food placement
//	--columns, --rows   - Board size in cells
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagColumns  int
	flagRows     int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - eat, grow, don't bite yourself",
	Long: `Snake is the classic game: steer the snake to the food, grow longer
with every bite and avoid the walls and your own tail.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  snake
  snake play --columns 20 --rows 15
  snake window --fps 120
  snake config > ~/.snake/snake.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().IntVar(&flagColumns, "columns", 0, "Board columns (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagRows, "rows", 0, "Board rows (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
