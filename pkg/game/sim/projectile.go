package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"crystalhunt/pkg/engine/world"
	gameworld "crystalhunt/pkg/game/world"
)

const (
	gravity            = 9.81
	projectileLifetime = 5  // Seconds before an unspent projectile is removed
	killPlaneY         = -10 // Projectiles falling below this are removed
)

type projectile struct {
	entity   *world.Entity
	velocity mgl32.Vec3
	gravity  bool
	age      float32
}

// Launch gives a spawned entity a ballistic velocity
func (s *Sim) Launch(e *world.Entity, velocity mgl32.Vec3, useGravity bool) {
	if !e.Alive() {
		return
	}
	s.projectiles = append(s.projectiles, &projectile{entity: e, velocity: velocity, gravity: useGravity})
}

// stepProjectiles moves every projectile and resolves its first contact
func (s *Sim) stepProjectiles(secs float32) {
	live := s.projectiles[:0]
	for _, p := range s.projectiles {
		if !p.entity.Alive() {
			continue
		}
		p.age += secs
		if p.gravity {
			p.velocity[1] -= gravity * secs
		}
		p.entity.Position = p.entity.Position.Add(p.velocity.Mul(secs))

		if p.age > projectileLifetime || p.entity.Position.Y() < killPlaneY {
			s.Destroy(p.entity)
			continue
		}
		if s.collide(p) {
			continue
		}
		live = append(live, p)
	}
	s.projectiles = live
}

// collide reports whether the projectile was used up by a contact
func (s *Sim) collide(p *projectile) bool {
	for _, other := range s.world.Overlapping(p.entity.Position, p.entity.Extent.X(), p.entity) {
		if m := gameworld.GetGameData(other).Monster; m != nil {
			m.OnCollision(p.entity, s)
			return true
		}
		if other.Solid {
			s.Destroy(p.entity)
			return true
		}
	}
	return false
}
