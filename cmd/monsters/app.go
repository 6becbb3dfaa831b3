package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/monster-spawn/internal/config"
	"github.com/vovakirdan/monster-spawn/internal/game"
	"github.com/vovakirdan/monster-spawn/internal/level"
	"github.com/vovakirdan/monster-spawn/internal/sink"
	"github.com/vovakirdan/monster-spawn/internal/storage"
)

// app carries what every command needs once flags are parsed.
var app struct {
	cfg     config.Config
	logger  *log.Logger
	manager *game.Manager
}

// setup loads configuration and builds the logger.
func setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagDBPath != "" {
		cfg.History.Path = flagDBPath
	}
	if flagRecord {
		cfg.History.Enabled = true
	}

	lvl, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	app.cfg = cfg
	app.logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "monsters",
		Level:           lvl,
	})
	app.manager = game.Process(game.Options{
		Stats:  cfg.Stats(),
		Logger: app.logger,
	}).Manager()
	return nil
}

// openHistory opens the history store when recording is enabled.
// Failure to open is logged and play continues without history.
func openHistory() *storage.Store {
	if !app.cfg.History.Enabled {
		return nil
	}
	store, err := storage.Open(app.cfg.History.Path)
	if err != nil {
		app.logger.Warn("could not open history database", "path", app.cfg.History.Path, "error", err)
		return nil
	}
	return store
}

// newSession binds out to the process manager, recording runs to store
// when it is open.
func newSession(out *sink.Writer, source string, store *storage.Store) *game.Session {
	opts := game.SessionOptions{Out: out, Source: source}
	if store != nil {
		opts.Recorder = store
	}
	return app.manager.Session(opts)
}

// play runs script on stdout and returns the process exit status.
// A failed write to stdout (a closed pipe, say) is logged but only fails
// the command when strict is set; the bare root run always exits 0.
func play(script []level.Difficulty, source string, strict bool) int {
	store := openHistory()
	if store != nil {
		defer store.Close()
	}

	out := sink.NewWriter(os.Stdout)
	if err := newSession(out, source, store).RunScript(script); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := out.Err(); err != nil {
		app.logger.Error("could not write output", "error", err)
		if strict {
			return 1
		}
	}
	return 0
}
