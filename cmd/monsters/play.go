package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/monster-spawn/internal/config"
)

var playCmd = &cobra.Command{
	Use:   "play <difficulty>...",
	Short: "Play one or more difficulties",
	Long: `Start and end a game for each difficulty, in the order given.

Difficulties:
  easy    - No monsters
  medium  - A zombie and a vampire are built, then the zombie is cloned

Examples:
  monsters play easy
  monsters play medium
  monsters play easy medium easy
  monsters play medium --record`,
	Args: cobra.MinimumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	script, err := config.ParseScript(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'monsters levels' to see supported difficulties.")
		os.Exit(1)
	}
	os.Exit(play(script, "cli", true))
}
