// Package sim is the reference host engine: it owns the world, the player's
// body, the clock and the text slots, steps them in a fixed order and
// implements every sink the gameplay logic calls into.
package sim

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"crystalhunt/pkg/engine/clock"
	"crystalhunt/pkg/engine/world"
	"crystalhunt/pkg/game/audio"
	"crystalhunt/pkg/game/entities"
	"crystalhunt/pkg/game/gameplay"
	"crystalhunt/pkg/game/level"
	"crystalhunt/pkg/game/renderer"
	gameworld "crystalhunt/pkg/game/world"
)

// Muter is implemented by sound sinks that can be muted
type Muter interface {
	SetMuted(muted bool)
	Muted() bool
}

// Sim is one running session of a level
type Sim struct {
	level   *level.Level
	prefabs level.Prefabs
	sound   audio.Player

	world       *world.World
	sched       *clock.Scheduler
	body        *Body
	player      *gameplay.Player
	texts       renderer.Texts
	projectiles []*projectile
	overlaps    mapset.Set[*world.Entity]
	highlighted mapset.Set[*world.Entity]
	respawning  bool // Player phase seen by the last overlap update
}

// New builds a session of lvl. A nil sound plays nothing.
func New(lvl *level.Level, sound audio.Player) (*Sim, error) {
	if sound == nil {
		sound = audio.Silent{}
	}
	s := &Sim{level: lvl, sound: sound}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sim) load() error {
	w := world.NewWorld()
	if err := s.level.Build(w); err != nil {
		return fmt.Errorf("building level: %w", err)
	}

	p := s.level.Player
	s.world = w
	s.sched = clock.New()
	s.body = newBody(s.level.Spawn(), p.Yaw, p.Radius, p.EyeHeight)
	s.texts = renderer.Texts{}
	s.projectiles = nil
	s.overlaps = mapset.New[*world.Entity]()
	s.highlighted = mapset.New[*world.Entity]()
	s.respawning = false
	s.player = gameplay.NewPlayer(s.level.PlayerConfig(), gameplay.Deps{
		Scheduler: s.sched,
		Probe:     w,
		Mover:     s.body,
		Launcher:  s,
		Effects:   s,
		Display:   &s.texts,
	})
	s.player.Start()
	return nil
}

// Reset rebuilds the level from the same data, discarding all progress
func (s *Sim) Reset() error {
	s.player.CancelRespawn()
	if err := s.load(); err != nil {
		return err
	}
	s.player.State().AddMessage(gotext.Get("Level reset!"))
	log.Printf("Level reset")
	return nil
}

// Step advances the session by dt, in this order: timers, coin spin, view,
// resolution, interact, shoot, movement, overlap events, projectiles.
func (s *Sim) Step(dt time.Duration, cmd gameplay.Commands) {
	if cmd.ResetLevel {
		if err := s.Reset(); err != nil {
			log.Printf("Reset failed: %v", err)
		}
		return
	}
	if cmd.ToggleMute {
		s.toggleMute()
	}

	secs := float32(dt.Seconds())
	s.sched.Advance(dt)
	s.spinCoins(secs)

	turn := s.level.Player.TurnSpeed * secs
	s.body.Turn(cmd.Turn*turn, cmd.Look*turn)

	view := s.View()
	s.player.Resolve(view)
	if cmd.Interact {
		s.player.Interact()
	}
	if cmd.Shoot {
		s.player.Shoot(view)
	}

	s.move(cmd, secs)
	s.updateOverlaps()
	s.stepProjectiles(secs)
}

// View returns where the player is looking
func (s *Sim) View() gameplay.View {
	return gameplay.View{
		Origin:    s.body.Eye(),
		Direction: s.body.Forward(),
		Yaw:       s.body.Yaw(),
	}
}

func (s *Sim) spinCoins(secs float32) {
	s.world.Each(func(e *world.Entity) {
		if coin := gameworld.GetGameData(e).Coin; coin != nil {
			coin.Spin(secs)
		}
	})
}

// move applies the movement input one axis at a time so the body slides along walls
func (s *Sim) move(cmd gameplay.Commands, secs float32) {
	if !s.body.MovementEnabled() {
		return
	}
	yaw := s.body.Yaw()
	wish := world.Forward(yaw, 0).Mul(cmd.Forward).Add(world.Right(yaw).Mul(cmd.Strafe))
	if wish.Len() > 1 {
		wish = wish.Normalize()
	}
	s.body.Velocity = wish.Mul(s.level.Player.Speed)

	delta := s.body.Velocity.Mul(secs)
	for _, axis := range []int{0, 2} {
		if delta[axis] == 0 {
			continue
		}
		next := s.body.Position()
		next[axis] += delta[axis]
		if s.blocked(next) {
			s.body.Velocity[axis] = 0
			continue
		}
		s.body.Entity.Position = next
	}
}

func (s *Sim) blocked(pos mgl32.Vec3) bool {
	for _, e := range s.world.Overlapping(pos, s.body.Radius, nil) {
		if e.Solid {
			return true
		}
	}
	return false
}

// updateOverlaps reports trigger enter and exit events for the body.
// When control returns after a respawn every zone still overlapped is
// entered again, so a hazard the body respawned inside still applies.
func (s *Sim) updateOverlaps() {
	respawning := s.player.Respawning()
	rearm := s.respawning && !respawning
	s.respawning = respawning

	current := mapset.New[*world.Entity]()
	var entered []*world.Entity
	for _, e := range s.world.Overlapping(s.body.Position(), s.body.Radius, nil) {
		if !e.Trigger {
			continue
		}
		current.Put(e)
		if rearm || !s.overlaps.Has(e) {
			entered = append(entered, e)
		}
	}

	var exited []*world.Entity
	s.overlaps.Each(func(e *world.Entity) {
		if !current.Has(e) {
			exited = append(exited, e)
		}
	})
	s.overlaps = current

	for _, e := range exited {
		s.player.OnZoneExit(e)
	}
	for _, e := range entered {
		s.player.OnZoneEnter(e)
	}
}

func (s *Sim) toggleMute() {
	if m, ok := s.sound.(Muter); ok {
		m.SetMuted(!m.Muted())
		log.Printf("Muted: %v", m.Muted())
	}
}

// PlaySoundAt plays a sound at a point in the world
func (s *Sim) PlaySoundAt(snd audio.Sound, pos mgl32.Vec3) {
	s.sound.PlayAt(snd, pos)
}

// Spawn instantiates a prefab into the world
func (s *Sim) Spawn(p entities.Prefab, pos mgl32.Vec3, yaw float32) *world.Entity {
	e := s.prefabs.New(p, pos, yaw)
	if e == nil {
		log.Printf("Unknown prefab %d", p)
		return nil
	}
	return s.world.Spawn(e)
}

// Destroy removes an entity from the world and from every set that tracks it
func (s *Sim) Destroy(e *world.Entity) {
	if !s.world.Destroy(e) {
		return
	}
	s.overlaps.Remove(e)
	s.highlighted.Remove(e)
}

// SetHighlight swaps an entity's material between normal and highlighted
func (s *Sim) SetHighlight(e *world.Entity, on bool) {
	if on {
		s.highlighted.Put(e)
	} else {
		s.highlighted.Remove(e)
	}
}

// Highlighted reports whether an entity is drawn with the highlight material
func (s *Sim) Highlighted(e *world.Entity) bool {
	return s.highlighted.Has(e)
}

// World returns the live entities
func (s *Sim) World() *world.World { return s.world }

// Body returns the player's body
func (s *Sim) Body() *Body { return s.body }

// Player returns the gameplay logic driving the session
func (s *Sim) Player() *gameplay.Player { return s.player }

// Text returns the current content of a text slot
func (s *Sim) Text(slot renderer.TextSlot) string { return s.texts.Text(slot) }

// Now returns the simulated time since the level was (re)built
func (s *Sim) Now() time.Duration { return s.sched.Now() }

// Projectiles returns the number of projectiles in flight
func (s *Sim) Projectiles() int { return len(s.projectiles) }

// SetSound replaces the sound sink
func (s *Sim) SetSound(sound audio.Player) {
	if sound == nil {
		sound = audio.Silent{}
	}
	s.sound = sound
}
