package entity

// Spawner produces new entities by cloning a prototype.
// The prototype is borrowed: the caller keeps ownership and the spawner never
// mutates it.
type Spawner struct {
	prototype Entity
}

// NewSpawner creates a spawner around prototype.
func NewSpawner(prototype Entity) *Spawner {
	return &Spawner{prototype: prototype}
}

// SpawnEntity returns a fresh clone of the prototype.
func (s *Spawner) SpawnEntity() Entity {
	return s.prototype.Clone()
}

// Prototype returns the entity being cloned.
func (s *Spawner) Prototype() Entity {
	return s.prototype
}
