// Package tui provides the terminal front ends of the spawn demo: an
// interactive difficulty picker, a run history viewer and an SSH server via
// Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"

	"github.com/vovakirdan/monster-spawn/internal/config"
	"github.com/vovakirdan/monster-spawn/internal/game"
	"github.com/vovakirdan/monster-spawn/internal/level"
	"github.com/vovakirdan/monster-spawn/internal/sink"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.monsters/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Script is played when a session sends no command.
	Script []level.Difficulty

	// Manager plays every session. Defaults to the process Manager.
	Manager *game.Manager

	// Recorder stores finished runs. Optional.
	Recorder game.Recorder

	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		IdleTimeout: 5 * time.Minute,
		Script:      game.DefaultScript(),
	}
}

// SSHServer wraps a Wish SSH server. Every connection plays a script through
// the one Manager, with the connection itself as the message sink.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	manager *game.Manager
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "monsters-ssh",
		})
	}
	if len(cfg.Script) == 0 {
		cfg.Script = game.DefaultScript()
	}

	manager := cfg.Manager
	if manager == nil {
		manager = game.Process(game.Options{Logger: logger}).Manager()
	}

	srv := &SSHServer{
		config:  cfg,
		manager: manager,
		logger:  logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".monsters", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			srv.scriptMiddleware,
			srv.loggingMiddleware,
		),
	}
	if cfg.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.IdleTimeout))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// scriptMiddleware plays the requested difficulties for the session.
// `ssh host medium easy` plays Medium then Easy; no command plays the
// configured script.
func (s *SSHServer) scriptMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		_, _, isPty := sshSession.Pty()
		code := s.PlaySession(sshSession.Command(), sshSession, sshSession.Stderr(), isPty, sshSession.User())
		next(sshSession)
		_ = sshSession.Exit(code)
	}
}

// PlaySession runs a script for one connection and returns its exit status.
func (s *SSHServer) PlaySession(args []string, stdout, stderr io.Writer, crlf bool, user string) int {
	script := s.config.Script
	if len(args) > 0 {
		parsed, err := config.ParseScript(args)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			fmt.Fprintf(stderr, "Supported difficulties: %s\n", supportedNames())
			return 1
		}
		script = parsed
	}

	if crlf {
		stdout = crlfWriter{stdout}
	}
	out := sink.NewWriter(stdout)

	if err := s.session(out, user).RunScript(script); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := out.Err(); err != nil {
		s.logger.Warn("session write failed", "user", user, "error", err)
		return 1
	}
	return 0
}

// session binds one connection's sink to the server's Manager.
func (s *SSHServer) session(out sink.Sink, user string) *game.Session {
	return s.manager.Session(game.SessionOptions{
		Out:      out,
		Source:   "ssh",
		Recorder: s.config.Recorder,
		Logger:   s.logger.With("user", user),
	})
}

// Manager returns the manager every session plays through.
func (s *SSHServer) Manager() *game.Manager {
	return s.manager
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"command", strings.Join(sshSession.Command(), " "),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		return err
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

func supportedNames() string {
	names := make([]string, 0, 2)
	for _, d := range level.Difficulties() {
		names = append(names, strings.ToLower(d.String()))
	}
	return strings.Join(names, ", ")
}

// crlfWriter turns "\n" into "\r\n" for sessions with a PTY.
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	converted := strings.ReplaceAll(string(p), "\n", "\r\n")
	if _, err := io.WriteString(c.w, converted); err != nil {
		return 0, err
	}
	return len(p), nil
}
