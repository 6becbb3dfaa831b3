package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/monster-spawn/internal/builder"
	"github.com/vovakirdan/monster-spawn/internal/level"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "monsters.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Embedded default differs from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := writeConfig(t, `
monsters:
  zombie:
    health: 25
script: [medium]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Monsters.Zombie.Health != 25 {
		t.Errorf("Expected zombie health 25, got %d", cfg.Monsters.Zombie.Health)
	}
	// Unset keys keep their defaults
	if cfg.Monsters.Zombie.Speed != 2 || cfg.Monsters.Vampire != builder.DefaultStats(builder.Vampire) {
		t.Errorf("Expected defaults for unset stats, got %+v", cfg.Monsters)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Expected default log level, got %q", cfg.Log.Level)
	}

	script, err := cfg.Difficulties()
	if err != nil {
		t.Fatalf("Difficulties() failed: %v", err)
	}
	if len(script) != 1 || script[0] != level.Medium {
		t.Errorf("Expected [Medium], got %v", script)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Expected error for missing custom config")
	}
}

func TestLoadRejectsUnknownDifficulty(t *testing.T) {
	path := writeConfig(t, "script: [easy, nightmare]\n")

	_, err := Load(path)
	if !errors.Is(err, level.ErrUnsupportedDifficulty) {
		t.Errorf("Expected ErrUnsupportedDifficulty, got %v", err)
	}
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	path := writeConfig(t, "log:\n  level: loud\n")

	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid log level")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "monsters: [unterminated\n")

	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestStatsAreNotValidated(t *testing.T) {
	path := writeConfig(t, "monsters:\n  vampire:\n    health: -3\n    speed: 0\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Stats()[builder.Vampire] != (builder.Stats{Health: -3, Speed: 0}) {
		t.Errorf("Unexpected vampire stats: %+v", cfg.Stats()[builder.Vampire])
	}
}

func TestLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = ""
	if lvl, err := cfg.LogLevel(); err != nil || lvl != log.WarnLevel {
		t.Errorf("Empty level: got %v, %v", lvl, err)
	}

	cfg.Log.Level = "debug"
	if lvl, err := cfg.LogLevel(); err != nil || lvl != log.DebugLevel {
		t.Errorf("Debug level: got %v, %v", lvl, err)
	}
}

func TestParseScript(t *testing.T) {
	got, err := ParseScript([]string{"Easy", "medium", "EASY"})
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}
	want := []level.Difficulty{level.Easy, level.Medium, level.Easy}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
