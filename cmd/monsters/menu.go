package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/monster-spawn/internal/platform/tui"
	"github.com/vovakirdan/monster-spawn/internal/sink"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick difficulties interactively",
	Long: `Start an interactive difficulty picker.

Use arrow keys or j/k to navigate, Enter to play the highlighted
difficulty. The trace is printed below the picker, then the picker
comes back for another round.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play
  Tab          - Run history (needs --record or history.enabled)
  Q/Esc        - Quit

Examples:
  monsters menu
  monsters menu --record`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fmt.Fprintln(os.Stderr, "Error: menu needs an interactive terminal; use 'monsters play' instead.")
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(fd); err == nil {
		width, height = w, h
	}

	store := openHistory()
	if store != nil {
		defer store.Close()
	}

	session := newSession(sink.NewWriter(os.Stdout), "menu", store)

	for {
		result, err := tui.RunMenu(width)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		switch {
		case result.Quit:
			return

		case result.WantsHistory:
			if store == nil {
				fmt.Fprintln(os.Stderr, "History is disabled; start the menu with --record.")
				continue
			}
			goBack, histErr := tui.RunHistory(store, width, height)
			if histErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if !goBack {
				return
			}

		case result.Selected:
			if err := session.StartGame(result.Difficulty); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			session.EndGame()
		}
	}
}
