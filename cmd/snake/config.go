package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/app"
	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration snake would run with, after the config file
search and flag overrides, as YAML.

Examples:
  snake config
  snake config --columns 40 > ~/.snake/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	opts := options()
	cfg, err := app.LoadConfig(opts)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
