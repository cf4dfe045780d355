// Package entities contains the game's entity behaviours: collectibles, doors,
// hazards and the monster. Behaviours never reach into global state; the acting
// player and the engine sinks are passed in on every call.
package entities

import (
	"github.com/go-gl/mathgl/mgl32"

	"crystalhunt/pkg/engine/world"
	"crystalhunt/pkg/game/audio"
)

// Prefab names an entity template the host can instantiate at runtime
type Prefab int

const (
	PrefabCrystal Prefab = iota
	PrefabProjectile
)

// Collector is the actor that receives the result of a collection
type Collector interface {
	ModifyScore(delta int)
	Win()
}

// Effects are the fire-and-forget sinks provided by the host engine
type Effects interface {
	PlaySoundAt(s audio.Sound, pos mgl32.Vec3)
	Spawn(p Prefab, pos mgl32.Vec3, yaw float32) *world.Entity
	Destroy(e *world.Entity)
	SetHighlight(e *world.Entity, on bool)
}
