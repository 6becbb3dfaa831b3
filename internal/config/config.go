// Package config provides YAML-based configuration loading for the monster
// spawn demo: monster stats, the default script, logging, history and the SSH
// server.
package config

import (
	"github.com/vovakirdan/monster-spawn/internal/builder"
)

// Config is the full application configuration.
type Config struct {
	Monsters MonstersConfig `yaml:"monsters"`
	Script   []string       `yaml:"script"` // difficulty names, e.g. "easy"
	Log      LogConfig      `yaml:"log"`
	History  HistoryConfig  `yaml:"history"`
	Server   ServerConfig   `yaml:"server"`
}

// MonstersConfig holds the creation stats of each builder variant.
type MonstersConfig struct {
	Zombie  builder.Stats `yaml:"zombie"`
	Vampire builder.Stats `yaml:"vampire"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `yaml:"level"`
}

// HistoryConfig controls the sqlite run history.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// ServerConfig configures `monsters serve`.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}
