package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/monster-spawn/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List supported difficulties",
	Long:  `Shows every difficulty the level factory can build.`,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	fmt.Println("Supported difficulties:")
	fmt.Println()

	fmt.Printf("  %-8s  %s\n", "Name", "Monsters")
	fmt.Printf("  %-8s  %s\n", "----", "--------")

	for _, d := range level.Difficulties() {
		fmt.Printf("  %-8s  %s\n", strings.ToLower(d.String()), monstersFor(d))
	}

	fmt.Println()
	fmt.Println("Run 'monsters play <name>' to play a difficulty.")
}

func monstersFor(d level.Difficulty) string {
	switch d {
	case level.Easy:
		return "none"
	case level.Medium:
		return "Zombie, Vampire, cloned Zombie"
	default:
		return "?"
	}
}
