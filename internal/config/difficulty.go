package config

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/monster-spawn/internal/builder"
	"github.com/vovakirdan/monster-spawn/internal/level"
)

// Validate checks the script names and the log level.
// Monster stats are taken as-is.
func (c Config) Validate() error {
	if _, err := c.Difficulties(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// Difficulties converts the script names to difficulties.
func (c Config) Difficulties() ([]level.Difficulty, error) {
	return ParseScript(c.Script)
}

// ParseScript converts difficulty names, in order.
func ParseScript(names []string) ([]level.Difficulty, error) {
	out := make([]level.Difficulty, 0, len(names))
	for i, name := range names {
		d, err := level.ParseDifficulty(name)
		if err != nil {
			return nil, fmt.Errorf("script entry %d: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// Stats returns the per-kind monster stats for a level factory.
func (c Config) Stats() map[builder.Kind]builder.Stats {
	return map[builder.Kind]builder.Stats{
		builder.Zombie:  c.Monsters.Zombie,
		builder.Vampire: c.Monsters.Vampire,
	}
}

// LogLevel parses the configured log level. Empty means warn.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.WarnLevel, nil
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.WarnLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
