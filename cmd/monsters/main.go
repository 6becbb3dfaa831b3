// monsters spawns monsters through a chain of creation steps and prints a
// trace of every step.
//
// Usage:
//
//	monsters                       - Play the configured script (Easy, then Medium)
//	monsters play <difficulty>...  - Play the given difficulties
//	monsters levels                - List supported difficulties
//	monsters menu                  - Pick a difficulty interactively
//	monsters serve                 - Start SSH server for remote play
//	monsters history               - Show recorded runs
//
// Global flags:
//
//	--config <path>     - Path to config YAML
//	--log-level <level> - Diagnostic log level (debug, info, warn, error)
//	--db <path>         - Run history database (default: from config)
//	--record            - Save runs to the history database
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagDBPath   string
	flagRecord   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "monsters",
	Short: "Monster spawn demo - builders, prototypes and level factories",
	Long: `Spawns monsters for each difficulty and prints every creation step.

Running without a command plays the configured script, which by default
starts an Easy game, ends it, starts a Medium game and ends it.

Available commands:
  play     - Play specific difficulties
  levels   - Show supported difficulties
  menu     - Interactive difficulty picker
  serve    - Start SSH server for remote play
  history  - View recorded runs

Examples:
  monsters
  monsters play medium
  monsters menu --record
  monsters serve --ssh :2222
  monsters history`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: setup,
	Run:               runDefault,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagRecord, "record", false, "Save runs to the history database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

func runDefault(_ *cobra.Command, _ []string) {
	script, err := app.cfg.Difficulties()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(play(script, "cli", false))
}
