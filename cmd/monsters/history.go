package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/monster-spawn/internal/level"
	"github.com/vovakirdan/monster-spawn/internal/platform/tui"
	"github.com/vovakirdan/monster-spawn/internal/storage"
)

var (
	flagHistoryLimit       int
	flagHistoryInteractive bool
	flagHistoryClear       bool
)

var historyCmd = &cobra.Command{
	Use:   "history [difficulty]",
	Short: "Show recorded runs",
	Long: `Display recorded runs, newest first, followed by per-difficulty totals.

Runs are only recorded when play is started with --record or the config
sets history.enabled.

Examples:
  monsters history
  monsters history medium --limit 5
  monsters history --interactive
  monsters history --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum number of runs to show")
	historyCmd.Flags().BoolVarP(&flagHistoryInteractive, "interactive", "i", false, "Browse runs in a table view")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded runs")
}

func runHistory(_ *cobra.Command, args []string) {
	filter := ""
	if len(args) == 1 {
		d, err := level.ParseDifficulty(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'monsters levels' to see supported difficulties.")
			os.Exit(1)
		}
		filter = d.String()
	}

	// Reading history does not depend on recording being enabled.
	store, err := storage.Open(app.cfg.History.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagHistoryInteractive {
		fd := int(os.Stdout.Fd())
		if !term.IsTerminal(fd) {
			fmt.Fprintln(os.Stderr, "Error: --interactive needs a terminal")
			os.Exit(1)
		}
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		if _, err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.RunEntry
	if filter == "" {
		runs, err = store.RecentRuns(flagHistoryLimit)
	} else {
		runs, err = store.RunsByDifficulty(filter, flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	title := "Run History"
	if filter != "" {
		title += " - " + filter
	}
	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play with 'monsters --record' to start recording.")
		return
	}

	fmt.Printf("  %-16s  %-8s  %-6s  %-6s  %-6s  %s\n", "Date", "Level", "Built", "Clones", "Source", "Result")
	fmt.Printf("  %-16s  %-8s  %-6s  %-6s  %-6s  %s\n", "----", "-----", "-----", "------", "------", "------")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-8s  %-6d  %-6d  %-6s  %s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Difficulty,
			r.MonstersBuilt,
			r.EntitiesSpawned,
			r.Source,
			tui.RunResult(r),
		)
	}

	stats, err := store.Stats()
	if err != nil || len(stats) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Totals")
	for _, st := range stats {
		if filter != "" && !strings.EqualFold(st.Difficulty, filter) {
			continue
		}
		fmt.Printf("  %-8s  %d runs, %d failed, %d built, %d cloned\n",
			st.Difficulty, st.Runs, st.Failures, st.MonstersBuilt, st.Spawned)
	}
}
