package entities

import (
	"crystalhunt/pkg/engine/world"
	"crystalhunt/pkg/game/audio"
)

// Monster guards the crystal and drops it when shot
type Monster struct {
	Entity *world.Entity
}

// NewMonster creates a monster behaviour for the given entity
func NewMonster(e *world.Entity) *Monster {
	return &Monster{Entity: e}
}

// OnCollision reacts to a projectile hit: damage sound, crystal drop at the
// monster's position and orientation, then both monster and projectile go away.
// Returns the spawned crystal, or nil if other was not a projectile.
func (m *Monster) OnCollision(other *world.Entity, fx Effects) *world.Entity {
	if !m.Entity.Alive() || !other.CompareTag(world.TagProjectile) {
		return nil
	}
	fx.PlaySoundAt(audio.SoundDamage, m.Entity.Position)
	crystal := fx.Spawn(PrefabCrystal, m.Entity.Position, m.Entity.Yaw)
	fx.Destroy(m.Entity)
	fx.Destroy(other)
	return crystal
}
