package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhath/pluck/internal/cli"
)

var version = "0.1.0"

var (
	flagConfig            string
	flagShowDefaultConfig bool
	flagDebug             bool
)

var rootCmd = &cobra.Command{
	Use:   "pluck [file]",
	Short: "Keyboard-driven text picker for terminal output",
	Long: `Pluck overlays short hints on every piece of a text page that matches
the active profile's patterns. Type a hint to print its text on stdout
and exit.

Profiles group patterns under a hotkey; press the switch key (space by
default) to change profiles mid-session. Text comes from a named file or
from stdin, so pluck drops into pipes and tmux keybindings alike.

Exit status: 0 with a selection on stdout, 1 when cancelled, 2 on a bad
configuration, 3 when the input could not be read.

Examples:
  tmux capture-pane -p | pluck         # Pick from the current pane
  pluck build.log                      # Pick from a file
  pluck --show-default-config          # Print the built-in config`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.Options{
			ConfigPath:        flagConfig,
			ShowDefaultConfig: flagShowDefaultConfig,
			Debug:             flagDebug,
		}
		if len(args) > 0 {
			opts.InputPath = args[0]
		}
		return cli.Run(opts)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Config file (default: XDG pluck/config.toml)")
	rootCmd.Flags().BoolVar(&flagShowDefaultConfig, "show-default-config", false, "Print the built-in config and exit")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Write debug logs to debug.log")
}

func main() {
	err := rootCmd.Execute()
	code := cli.ExitCode(err)
	if err != nil && code != cli.ExitCancelled {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}
