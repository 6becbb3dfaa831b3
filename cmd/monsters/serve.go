package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/monster-spawn/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the monsters SSH server",
	Long: `Start an SSH server that plays difficulties for remote users.

The command sent over SSH selects the difficulties; with no command the
configured script is played. The trace is written to the session.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.monsters/host_key

Examples:
  monsters serve                           # Listen on the configured address
  monsters serve --ssh :2222               # Listen on port 2222
  monsters serve --host-key ./my_host_key  # Use specific host key
  monsters serve --record                  # Keep a history of remote runs

Users can connect with:
  ssh localhost -p 23235
  ssh localhost -p 23235 medium`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) {
	script, err := app.cfg.Difficulties()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = firstNonEmpty(flagSSHAddr, app.cfg.Server.Address, srvCfg.Address)
	srvCfg.HostKeyPath = firstNonEmpty(flagHostKey, app.cfg.Server.HostKey)
	if minutes := firstPositive(flagIdleTimeout, app.cfg.Server.IdleTimeoutMinutes); minutes > 0 {
		srvCfg.IdleTimeout = time.Duration(minutes) * time.Minute
	}
	srvCfg.Script = script
	srvCfg.Manager = app.manager
	srvCfg.Logger = app.logger.WithPrefix("monsters-ssh")

	store := openHistory()
	if store != nil {
		defer store.Close()
		srvCfg.Recorder = store
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting monsters SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
