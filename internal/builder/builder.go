// Package builder assembles monsters step by step. Each builder variant fixes
// a name, a weapon and default creation stats; a Director drives the steps in
// a fixed order.
package builder

import (
	"fmt"

	"github.com/vovakirdan/monster-spawn/internal/entity"
	"github.com/vovakirdan/monster-spawn/internal/sink"
)

// MonsterBuilder constructs one monster through discrete steps.
// A builder owns a single in-progress monster and must not be reused after
// Result has been called.
type MonsterBuilder interface {
	BuildName()
	BuildWeapon()

	// Result reports completion and returns the monster the builder mutated.
	// Calling it before both build steps yields blank identity fields.
	Result() *entity.Monster
}

// Kind identifies a builder variant.
type Kind int

const (
	Zombie Kind = iota
	Vampire
)

// String returns the display name for a kind.
func (k Kind) String() string {
	switch k {
	case Zombie:
		return "Zombie"
	case Vampire:
		return "Vampire"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Kinds returns every builder variant in a stable order.
func Kinds() []Kind {
	return []Kind{Zombie, Vampire}
}

// Stats are the creation parameters handed to a monster's constructor.
type Stats struct {
	Health int `yaml:"health"`
	Speed  int `yaml:"speed"`
}

// DefaultStats returns the built-in stats for a kind.
func DefaultStats(k Kind) Stats {
	switch k {
	case Zombie:
		return Stats{Health: 10, Speed: 2}
	case Vampire:
		return Stats{Health: 8, Speed: 5}
	default:
		return Stats{}
	}
}

// New returns a builder for kind k.
func New(k Kind, out sink.Sink, stats Stats) (MonsterBuilder, error) {
	switch k {
	case Zombie:
		return NewZombieBuilder(out, stats), nil
	case Vampire:
		return NewVampireBuilder(out, stats), nil
	default:
		return nil, fmt.Errorf("builder: unknown monster kind %v", k)
	}
}

// variant holds the fixed choices of one builder kind.
type variant struct {
	kind   Kind
	name   string
	weapon string
}

// fixedBuilder is the shared body of the concrete builders.
type fixedBuilder struct {
	variant
	monster *entity.Monster
	out     sink.Sink
}

func newFixedBuilder(v variant, out sink.Sink, stats Stats) fixedBuilder {
	out = sink.OrDiscard(out)
	return fixedBuilder{
		variant: v,
		monster: entity.NewMonster(out, stats.Health, stats.Speed),
		out:     out,
	}
}

func (b *fixedBuilder) BuildName() {
	b.monster.Name = b.name
}

func (b *fixedBuilder) BuildWeapon() {
	b.monster.Weapon = b.weapon
}

func (b *fixedBuilder) Result() *entity.Monster {
	b.out.Line(b.kind.String() + " was built.")
	return b.monster
}

// ZombieBuilder builds a Zombie armed with a Shovel.
type ZombieBuilder struct {
	fixedBuilder
}

// NewZombieBuilder creates the in-progress zombie immediately.
func NewZombieBuilder(out sink.Sink, stats Stats) *ZombieBuilder {
	return &ZombieBuilder{
		fixedBuilder: newFixedBuilder(variant{kind: Zombie, name: "Zombie", weapon: "Shovel"}, out, stats),
	}
}

// VampireBuilder builds a Vampire armed with Fangs.
type VampireBuilder struct {
	fixedBuilder
}

// NewVampireBuilder creates the in-progress vampire immediately.
func NewVampireBuilder(out sink.Sink, stats Stats) *VampireBuilder {
	return &VampireBuilder{
		fixedBuilder: newFixedBuilder(variant{kind: Vampire, name: "Vampire", weapon: "Fangs"}, out, stats),
	}
}

var (
	_ MonsterBuilder = (*ZombieBuilder)(nil)
	_ MonsterBuilder = (*VampireBuilder)(nil)
)
