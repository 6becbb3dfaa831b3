package builder

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/monster-spawn/internal/entity"
	"github.com/vovakirdan/monster-spawn/internal/sink"
)

func TestBuildersAreDeterministic(t *testing.T) {
	tests := []struct {
		kind   Kind
		name   string
		weapon string
		stats  Stats
	}{
		{Zombie, "Zombie", "Shovel", Stats{Health: 10, Speed: 2}},
		{Vampire, "Vampire", "Fangs", Stats{Health: 8, Speed: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDirector(nil)
			for i := 0; i < 3; i++ {
				b, err := New(tt.kind, nil, DefaultStats(tt.kind))
				if err != nil {
					t.Fatalf("New() failed: %v", err)
				}

				m := d.CreateMonster(b)
				if m.Name != tt.name || m.Weapon != tt.weapon {
					t.Errorf("Run %d: expected %s/%s, got %s/%s", i, tt.name, tt.weapon, m.Name, m.Weapon)
				}
				if m.Health() != tt.stats.Health || m.Speed() != tt.stats.Speed {
					t.Errorf("Run %d: expected stats %+v, got (%d, %d)", i, tt.stats, m.Health(), m.Speed())
				}
			}
			if d.Created() != 3 {
				t.Errorf("Expected director to count 3 creations, got %d", d.Created())
			}
		})
	}
}

func TestBuilderTrace(t *testing.T) {
	rec := sink.NewRecorder()
	m := NewDirector(nil).CreateMonster(NewZombieBuilder(rec, DefaultStats(Zombie)))

	want := []string{
		"Monster was created (health = 10, speed = 2)",
		"Zombie was built.",
	}
	got := rec.Lines()
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Expected trace %q, got %q", want, got)
	}
	if m == nil {
		t.Fatal("CreateMonster() returned nil")
	}
}

func TestResultWithoutStepsIsBlank(t *testing.T) {
	b := NewVampireBuilder(nil, DefaultStats(Vampire))
	m := b.Result()

	if m.Name != "" || m.Weapon != "" {
		t.Errorf("Early Result() should be blank, got %q/%q", m.Name, m.Weapon)
	}
}

func TestResultReturnsSameInstance(t *testing.T) {
	b := NewZombieBuilder(nil, DefaultStats(Zombie))
	b.BuildName()
	first := b.Result()
	b.BuildWeapon()

	// No defensive copy: later steps are visible through the earlier result
	if first.Weapon != "Shovel" {
		t.Errorf("Expected builder to mutate the returned monster, got weapon %q", first.Weapon)
	}
}

// recordingBuilder records the order in which steps are invoked.
type recordingBuilder struct {
	calls []string
}

func (r *recordingBuilder) BuildName()   { r.calls = append(r.calls, "name") }
func (r *recordingBuilder) BuildWeapon() { r.calls = append(r.calls, "weapon") }
func (r *recordingBuilder) Result() *entity.Monster {
	r.calls = append(r.calls, "result")
	return entity.NewMonster(nil, 0, 0)
}

func TestDirectorStepOrder(t *testing.T) {
	rb := &recordingBuilder{}
	NewDirector(nil).CreateMonster(rb)

	if strings.Join(rb.calls, ",") != "name,weapon,result" {
		t.Errorf("Unexpected step order: %v", rb.calls)
	}
}

type emptyBuilder struct{}

func (emptyBuilder) BuildName()              {}
func (emptyBuilder) BuildWeapon()            {}
func (emptyBuilder) Result() *entity.Monster { return nil }

func TestDirectorToleratesNilResult(t *testing.T) {
	d := NewDirector(log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel}))

	if m := d.CreateMonster(emptyBuilder{}); m != nil {
		t.Errorf("Expected the builder's nil result, got %+v", m)
	}
	if d.Created() != 1 {
		t.Errorf("Expected 1 created, got %d", d.Created())
	}
}

func TestNewUnknownKind(t *testing.T) {
	if _, err := New(Kind(99), nil, Stats{}); err == nil {
		t.Error("Expected error for unknown kind")
	}
	if Kind(99).String() != "Kind(99)" {
		t.Errorf("Unexpected String() for unknown kind: %s", Kind(99))
	}
}

func TestCustomStats(t *testing.T) {
	rec := sink.NewRecorder()
	m := NewDirector(nil).CreateMonster(NewVampireBuilder(rec, Stats{Health: 20, Speed: 7}))

	if m.Health() != 20 || m.Speed() != 7 {
		t.Errorf("Expected (20, 7), got (%d, %d)", m.Health(), m.Speed())
	}
	if rec.Lines()[0] != "Monster was created (health = 20, speed = 7)" {
		t.Errorf("Unexpected creation line: %q", rec.Lines()[0])
	}
}
