// Package game runs spawn sessions. The process has one Manager, obtained
// through Process; each output channel plays through it as a Session.
package game

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/monster-spawn/internal/builder"
	"github.com/vovakirdan/monster-spawn/internal/level"
	"github.com/vovakirdan/monster-spawn/internal/sink"
)

// RunRecord describes one StartGame call.
type RunRecord struct {
	RunID           string
	Difficulty      string
	MonstersBuilt   int
	EntitiesSpawned int
	Lines           int // lines emitted by the level, separators included
	Error           string
	Source          string // "cli", "menu", "ssh"
	StartedAt       time.Time
}

// Recorder persists finished runs.
type Recorder interface {
	RecordRun(rec RunRecord) error
}

// Options configures the process Manager.
type Options struct {
	Stats  map[builder.Kind]builder.Stats
	Logger *log.Logger
}

// SessionOptions describes one output channel played through the Manager.
type SessionOptions struct {
	Out      sink.Sink
	Source   string      // "cli" when empty
	Recorder Recorder    // optional
	Logger   *log.Logger // defaults to the Manager's logger
}

// noCopy may be embedded into structs which must not be copied after first
// use. See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Manager starts and ends games. It holds no session state; every StartGame
// call is independent and writes to the sink it is given. Obtain it from
// Process and pass the pointer along.
type Manager struct {
	_ noCopy

	stats  map[builder.Kind]builder.Stats
	logger *log.Logger
}

func newManager(opts Options) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		stats:  opts.Stats,
		logger: logger,
	}
}

// StartGame plays d to out. See Session.StartGame.
func (m *Manager) StartGame(out sink.Sink, d level.Difficulty) error {
	return m.Session(SessionOptions{Out: out}).StartGame(d)
}

// EndGame announces the end of a game on out.
func (m *Manager) EndGame(out sink.Sink) {
	m.Session(SessionOptions{Out: out}).EndGame()
}

// RunScript plays script to out. See Session.RunScript.
func (m *Manager) RunScript(out sink.Sink, script []level.Difficulty) error {
	return m.Session(SessionOptions{Out: out}).RunScript(script)
}

// Session binds an output channel to m. Sessions are cheap; every terminal,
// menu or SSH connection gets its own while sharing the one Manager.
func (m *Manager) Session(opts SessionOptions) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = m.logger
	}
	source := opts.Source
	if source == "" {
		source = "cli"
	}
	return &Session{
		manager:  m,
		out:      sink.OrDiscard(opts.Out),
		source:   source,
		recorder: opts.Recorder,
		logger:   logger,
	}
}

// Session plays games through a Manager to one sink.
type Session struct {
	manager  *Manager
	out      sink.Sink
	source   string
	recorder Recorder
	logger   *log.Logger
}

// Manager returns the manager the session plays through.
func (s *Session) Manager() *Manager {
	return s.manager
}

// StartGame announces the game, obtains a level for d from a fresh factory
// and spawns its monsters. An unmapped difficulty is returned unrecovered,
// after the start message has been written.
func (s *Session) StartGame(d level.Difficulty) error {
	s.out.Line("Game started!")
	s.out.Line("")

	counter := &lineCounter{}
	factory := level.Factory{
		Out:    sink.Tee(s.out, counter),
		Stats:  s.manager.stats,
		Logger: s.logger,
	}

	rec := RunRecord{
		RunID:      uuid.NewString(),
		Difficulty: d.String(),
		Source:     s.source,
		StartedAt:  time.Now(),
	}

	lvl, err := factory.GetLevel(d)
	if err != nil {
		s.logger.Error("cannot start game", "difficulty", d, "error", err)
		rec.Error = err.Error()
		s.record(rec)
		return fmt.Errorf("game: start %v: %w", d, err)
	}

	outcome := lvl.SpawnMonsters()

	rec.MonstersBuilt = len(outcome.Built)
	rec.EntitiesSpawned = len(outcome.Spawned)
	rec.Lines = counter.n
	s.record(rec)

	s.logger.Info("game started",
		"run", rec.RunID,
		"difficulty", d,
		"built", rec.MonstersBuilt,
		"spawned", rec.EntitiesSpawned,
	)
	return nil
}

// EndGame announces the end of a game. It does not check that a game was
// started.
func (s *Session) EndGame() {
	s.out.Line("Game ended!")
	s.out.Line("")
	s.logger.Debug("game ended")
}

// RunScript starts and ends a game for each difficulty in order and stops at
// the first error.
func (s *Session) RunScript(script []level.Difficulty) error {
	for _, d := range script {
		if err := s.StartGame(d); err != nil {
			return err
		}
		s.EndGame()
	}
	return nil
}

// DefaultScript is the fixed demo run: Easy, then Medium.
func DefaultScript() []level.Difficulty {
	return []level.Difficulty{level.Easy, level.Medium}
}

// record hands rec to the recorder. History is best-effort: failures are
// logged and dropped.
func (s *Session) record(rec RunRecord) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordRun(rec); err != nil {
		s.logger.Warn("could not record run", "run", rec.RunID, "error", err)
	}
}

type lineCounter struct {
	n int
}

func (c *lineCounter) Line(string) {
	c.n++
}

// Provider builds a Manager lazily, at most once.
type Provider struct {
	once    sync.Once
	opts    Options
	manager *Manager
}

func newProvider(opts Options) *Provider {
	return &Provider{opts: opts}
}

// Manager returns the provider's single Manager, building it on first use.
// Every call returns the identical pointer.
func (p *Provider) Manager() *Manager {
	p.once.Do(func() {
		p.manager = newManager(p.opts)
	})
	return p.manager
}

var process struct {
	once     sync.Once
	provider *Provider
}

// Process returns the program's only Provider. The first call fixes its
// Options; later calls return the same Provider and their opts are unused.
func Process(opts Options) *Provider {
	process.once.Do(func() {
		process.provider = newProvider(opts)
	})
	return process.provider
}
