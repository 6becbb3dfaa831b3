// Package level maps a difficulty to a level and spawns that level's
// monsters.
package level

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/monster-spawn/internal/builder"
	"github.com/vovakirdan/monster-spawn/internal/entity"
	"github.com/vovakirdan/monster-spawn/internal/sink"
)

// Level spawns the monsters of one difficulty.
// Levels are created fresh for each game and keep no state between calls.
type Level interface {
	Difficulty() Difficulty
	SpawnMonsters() Outcome
}

// Outcome lists what a call to SpawnMonsters created.
type Outcome struct {
	Built   []*entity.Monster // monsters produced by a Director
	Spawned []entity.Entity   // entities cloned by a Spawner
}

// Count returns the total number of entities created.
func (o Outcome) Count() int {
	return len(o.Built) + len(o.Spawned)
}

// EasyLevel has no monsters.
type EasyLevel struct {
	out sink.Sink
}

// Difficulty returns Easy.
func (l *EasyLevel) Difficulty() Difficulty {
	return Easy
}

// SpawnMonsters announces that nothing spawns.
func (l *EasyLevel) SpawnMonsters() Outcome {
	l.out.Line("There are no monsters on the Easy difficulty.")
	l.out.Line("")
	return Outcome{}
}

// MediumLevel builds a zombie and a vampire, then clones the zombie.
type MediumLevel struct {
	out    sink.Sink
	stats  map[builder.Kind]builder.Stats
	logger *log.Logger
}

// Difficulty returns Medium.
func (l *MediumLevel) Difficulty() Difficulty {
	return Medium
}

// SpawnMonsters runs the builder and prototype steps in order. Every monster
// displayed is followed by a blank separator.
func (l *MediumLevel) SpawnMonsters() Outcome {
	l.out.Line("Spawning monsters for Medium difficulty.")
	l.out.Line("")

	var outcome Outcome
	director := builder.NewDirector(l.logger)

	zombie := director.CreateMonster(builder.NewZombieBuilder(l.out, l.statsFor(builder.Zombie)))
	l.show(zombie)
	outcome.Built = append(outcome.Built, zombie)

	vampire := director.CreateMonster(builder.NewVampireBuilder(l.out, l.statsFor(builder.Vampire)))
	l.show(vampire)
	outcome.Built = append(outcome.Built, vampire)

	spawner := entity.NewSpawner(zombie)
	clone := spawner.SpawnEntity()
	l.show(clone)
	outcome.Spawned = append(outcome.Spawned, clone)

	l.logger.Debug("medium level spawned", "built", len(outcome.Built), "cloned", len(outcome.Spawned))
	return outcome
}

func (l *MediumLevel) show(e entity.Entity) {
	entity.Display(e)
	l.out.Line("")
}

func (l *MediumLevel) statsFor(k builder.Kind) builder.Stats {
	if s, ok := l.stats[k]; ok {
		return s
	}
	return builder.DefaultStats(k)
}

// Factory creates levels. The zero value writes nowhere and uses default
// monster stats.
type Factory struct {
	Out    sink.Sink
	Stats  map[builder.Kind]builder.Stats // overrides builder.DefaultStats
	Logger *log.Logger
}

// GetLevel returns a new level for d, or an *UnsupportedDifficultyError when
// d has no level.
func (f Factory) GetLevel(d Difficulty) (Level, error) {
	out := sink.OrDiscard(f.Out)
	logger := f.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	switch d {
	case Easy:
		return &EasyLevel{out: out}, nil
	case Medium:
		return &MediumLevel{out: out, stats: f.Stats, logger: logger}, nil
	default:
		return nil, &UnsupportedDifficultyError{Value: d}
	}
}
