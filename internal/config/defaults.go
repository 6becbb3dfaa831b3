package config

import (
	_ "embed"

	"github.com/vovakirdan/monster-spawn/internal/builder"
)

//go:embed defaults/monsters.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Monsters: MonstersConfig{
			Zombie:  builder.DefaultStats(builder.Zombie),
			Vampire: builder.DefaultStats(builder.Vampire),
		},
		Script: []string{"easy", "medium"},
		Log: LogConfig{
			Level: "warn",
		},
		History: HistoryConfig{
			Enabled: false,
			Path:    "~/.monsters/history.db",
		},
		Server: ServerConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
