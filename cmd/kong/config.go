package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect game configuration",
	Long: `Dump the default configuration or check a configuration file.

Examples:
  kong config dump > kong.yaml
  kong config check kong.yaml`,
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the default configuration YAML",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = cmd.OutOrStdout().Write(config.DefaultKongYAML())
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Load and validate a configuration file",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigCheck,
}

func init() {
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configCheckCmd)
}

func runConfigCheck(cmd *cobra.Command, args []string) {
	if err := checkConfig(cmd.OutOrStdout(), args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func checkConfig(out io.Writer, path string) error {
	cfg, err := config.LoadKong(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: ok\n", path)
	fmt.Fprintf(out, "  levels:      %d\n", len(cfg.Levels))
	fmt.Fprintf(out, "  time limit:  %d frames\n", cfg.Gameplay.MaxFrames)
	fmt.Fprintf(out, "  kong health: %d\n", cfg.Combat.KongHealth)
	for i, lvl := range cfg.Levels {
		fmt.Fprintf(out, "  level %d:     %d platforms, %d ladders, %d barrels, %d monkeys\n",
			i+1, len(lvl.Platforms), len(lvl.Ladders), len(lvl.Barrels), len(lvl.Monkeys)+len(lvl.SmartMonkeys))
	}
	return nil
}
