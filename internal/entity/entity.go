// Package entity defines spawnable game objects and the prototype spawner
// that copies them.
package entity

import (
	"fmt"

	"github.com/vovakirdan/monster-spawn/internal/sink"
)

// Entity is a game object that can produce an independent copy of itself.
type Entity interface {
	// Clone returns a new instance built from the same creation parameters.
	// It never returns the receiver itself.
	Clone() Entity
}

// Displayer is implemented by entities that can describe themselves.
// Entities without it display nothing.
type Displayer interface {
	DisplayInfo()
}

// Display shows e if it implements Displayer and does nothing otherwise.
func Display(e Entity) {
	if d, ok := e.(Displayer); ok {
		d.DisplayInfo()
	}
}

// Monster is the only concrete entity. Health and speed are fixed at
// construction; Name and Weapon are filled in afterwards by a builder.
type Monster struct {
	Name   string
	Weapon string

	health int
	speed  int
	out    sink.Sink
}

// NewMonster creates a monster with blank identity fields and reports the
// creation to out. A nil out discards messages.
func NewMonster(out sink.Sink, health, speed int) *Monster {
	out = sink.OrDiscard(out)
	out.Line(fmt.Sprintf("Monster was created (health = %d, speed = %d)", health, speed))

	return &Monster{
		health: health,
		speed:  speed,
		out:    out,
	}
}

// Health returns the health the monster was created with.
func (m *Monster) Health() int {
	return m.health
}

// Speed returns the speed the monster was created with.
func (m *Monster) Speed() int {
	return m.speed
}

// Clone replays the constructor with the original health and speed.
// Name and Weapon are not carried over, so a clone of a built monster has
// blank identity fields.
func (m *Monster) Clone() Entity {
	out := m.output()
	out.Line("Monster is being cloned...")
	return NewMonster(out, m.health, m.speed)
}

// DisplayInfo writes the monster's name and weapon.
func (m *Monster) DisplayInfo() {
	m.output().Line(fmt.Sprintf("Info on monster: name = %s, weapon = %s", m.Name, m.Weapon))
}

// output returns where the monster reports to. A Monster built as a literal
// rather than through NewMonster reports nowhere.
func (m *Monster) output() sink.Sink {
	return sink.OrDiscard(m.out)
}

var (
	_ Entity    = (*Monster)(nil)
	_ Displayer = (*Monster)(nil)
)
