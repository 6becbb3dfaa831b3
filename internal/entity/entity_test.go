package entity

import (
	"testing"

	"github.com/vovakirdan/monster-spawn/internal/sink"
)

func TestNewMonsterReportsCreation(t *testing.T) {
	rec := sink.NewRecorder()
	m := NewMonster(rec, 10, 2)

	lines := rec.Lines()
	if len(lines) != 1 || lines[0] != "Monster was created (health = 10, speed = 2)" {
		t.Errorf("Unexpected creation trace: %q", lines)
	}
	if m.Health() != 10 || m.Speed() != 2 {
		t.Errorf("Expected (10, 2), got (%d, %d)", m.Health(), m.Speed())
	}
	if m.Name != "" || m.Weapon != "" {
		t.Errorf("New monster should have blank identity, got %q/%q", m.Name, m.Weapon)
	}
}

func TestCloneReplaysConstructorOnly(t *testing.T) {
	rec := sink.NewRecorder()
	m := NewMonster(rec, 10, 2)
	m.Name = "Zombie"
	m.Weapon = "Shovel"
	rec.Reset()

	c, ok := m.Clone().(*Monster)
	if !ok {
		t.Fatal("Clone() should return a *Monster")
	}

	if c == m {
		t.Fatal("Clone() returned the original instance")
	}
	if c.Health() != m.Health() || c.Speed() != m.Speed() {
		t.Errorf("Clone stats (%d, %d) differ from original (%d, %d)",
			c.Health(), c.Speed(), m.Health(), m.Speed())
	}
	if c.Name != "" || c.Weapon != "" {
		t.Errorf("Clone should have blank identity, got %q/%q", c.Name, c.Weapon)
	}

	want := []string{
		"Monster is being cloned...",
		"Monster was created (health = 10, speed = 2)",
	}
	got := rec.Lines()
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %q", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := NewMonster(nil, 8, 5)
	m.Name = "Vampire"

	c := m.Clone().(*Monster)
	c.Name = "Changed"
	c.Weapon = "Stick"

	if m.Name != "Vampire" || m.Weapon != "" {
		t.Errorf("Mutating the clone changed the original: %q/%q", m.Name, m.Weapon)
	}
}

func TestDisplayInfo(t *testing.T) {
	rec := sink.NewRecorder()
	m := NewMonster(rec, 1, 1)
	m.Name = "Zombie"
	m.Weapon = "Shovel"
	rec.Reset()

	Display(m)

	got := rec.Lines()
	if len(got) != 1 || got[0] != "Info on monster: name = Zombie, weapon = Shovel" {
		t.Errorf("Unexpected display line: %q", got)
	}

	blank := NewMonster(rec, 1, 1)
	rec.Reset()
	blank.DisplayInfo()
	if rec.Lines()[0] != "Info on monster: name = , weapon = " {
		t.Errorf("Unexpected blank display line: %q", rec.Lines()[0])
	}
}

type silent struct{}

func (silent) Clone() Entity { return silent{} }

func TestDisplayWithoutDisplayerIsNoop(t *testing.T) {
	// Must not panic and has nothing to write to
	Display(silent{})
}

func TestSpawnerReturnsDistinctClones(t *testing.T) {
	rec := sink.NewRecorder()
	proto := NewMonster(rec, 10, 2)
	proto.Name = "Zombie"
	proto.Weapon = "Shovel"

	s := NewSpawner(proto)
	if s.Prototype() != Entity(proto) {
		t.Error("Prototype() should return the borrowed prototype")
	}

	a := s.SpawnEntity().(*Monster)
	b := s.SpawnEntity().(*Monster)

	if a == proto || b == proto || a == b {
		t.Fatal("SpawnEntity() must return distinct instances")
	}

	a.Name = "Mutated"
	if proto.Name != "Zombie" || b.Name != "" {
		t.Error("Mutating a spawned entity affected the prototype or another clone")
	}
}

func TestZeroValueMonsterDisplaysAndClones(t *testing.T) {
	m := &Monster{Name: "Zombie", Weapon: "Shovel"}

	Display(m)
	clone := NewSpawner(m).SpawnEntity()

	c, ok := clone.(*Monster)
	if !ok || c == m {
		t.Fatalf("Expected a distinct *Monster clone, got %#v", clone)
	}
	if c.Name != "" || c.Weapon != "" || c.Health() != 0 || c.Speed() != 0 {
		t.Errorf("Unexpected clone of a zero monster: %+v", c)
	}
	Display(c)
}
