package builder

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/monster-spawn/internal/entity"
)

// Director runs a builder through its steps: name, then weapon, then result.
// The order is part of the contract; variants may rely on the name being set
// before the weapon is chosen.
type Director struct {
	logger  *log.Logger
	created int
}

// NewDirector creates a director. A nil logger discards diagnostics.
func NewDirector(logger *log.Logger) *Director {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Director{logger: logger}
}

// CreateMonster drives b through every step and returns the finished monster,
// which is whatever b.Result returns, nil included.
func (d *Director) CreateMonster(b MonsterBuilder) *entity.Monster {
	b.BuildName()
	b.BuildWeapon()
	m := b.Result()

	d.created++
	if m != nil {
		d.logger.Debug("monster created",
			"name", m.Name,
			"weapon", m.Weapon,
			"health", m.Health(),
			"speed", m.Speed(),
		)
	}
	return m
}

// Created returns how many monsters this director has produced.
func (d *Director) Created() int {
	return d.created
}
