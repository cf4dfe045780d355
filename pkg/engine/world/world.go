// Package world provides the engine-level entity registry and the spatial
// queries (raycast, overlap) the game logic consumes.
package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// World is the registry of live entities
type World struct {
	entities map[EntityID]*Entity
	order    []*Entity // spawn order, for deterministic iteration
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		entities: make(map[EntityID]*Entity),
	}
}

// Spawn registers the entity and marks it alive
func (w *World) Spawn(e *Entity) *Entity {
	if e == nil || e.alive {
		return e
	}
	e.alive = true
	w.entities[e.ID] = e
	w.order = append(w.order, e)
	return e
}

// Destroy removes the entity from the world.
// Returns false if it was not alive (already destroyed or never spawned).
func (w *World) Destroy(e *Entity) bool {
	if e == nil || !e.alive {
		return false
	}
	if _, ok := w.entities[e.ID]; !ok {
		return false
	}
	e.alive = false
	delete(w.entities, e.ID)
	for i, o := range w.order {
		if o == e {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the live entity with the given ID
func (w *World) Get(id EntityID) (*Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// FindByName returns the first live entity with the given name
func (w *World) FindByName(name string) *Entity {
	for _, e := range w.order {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Len returns the number of live entities
func (w *World) Len() int {
	return len(w.order)
}

// Each calls fn for every live entity in spawn order.
// fn may destroy entities; iteration works on a snapshot.
func (w *World) Each(fn func(e *Entity)) {
	snapshot := make([]*Entity, len(w.order))
	copy(snapshot, w.order)
	for _, e := range snapshot {
		if e.alive {
			fn(e)
		}
	}
}

// RayHit describes the first entity hit by a raycast
type RayHit struct {
	Entity   *Entity
	Distance float32
	Point    mgl32.Vec3
}

// Raycast returns the nearest live entity whose box the ray enters within maxDist.
// Boxes containing the origin are not reported. Ties go to the earliest spawned entity.
func (w *World) Raycast(origin, dir mgl32.Vec3, maxDist float32) (RayHit, bool) {
	if dir.Len() == 0 || maxDist <= 0 {
		return RayHit{}, false
	}
	dir = dir.Normalize()

	var best RayHit
	found := false
	for _, e := range w.order {
		t, ok := e.Bounds().IntersectRay(origin, dir)
		if !ok || t > maxDist {
			continue
		}
		if !found || t < best.Distance {
			best = RayHit{Entity: e, Distance: t, Point: origin.Add(dir.Mul(t))}
			found = true
		}
	}
	return best, found
}

// Overlapping returns every live solid or trigger entity touching the sphere,
// in spawn order. The entity passed as self is skipped.
func (w *World) Overlapping(center mgl32.Vec3, radius float32, self *Entity) []*Entity {
	var result []*Entity
	for _, e := range w.order {
		if e == self || (!e.Solid && !e.Trigger) {
			continue
		}
		if e.Bounds().IntersectsSphere(center, radius) {
			result = append(result, e)
		}
	}
	return result
}
