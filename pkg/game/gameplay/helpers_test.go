package gameplay

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"crystalhunt/pkg/engine/clock"
	"crystalhunt/pkg/engine/world"
	"crystalhunt/pkg/game/audio"
	"crystalhunt/pkg/game/entities"
	"crystalhunt/pkg/game/renderer"
	gameworld "crystalhunt/pkg/game/world"
)

var (
	room2 = mgl32.Vec3{20, 1, 0}
	room3 = mgl32.Vec3{40, 1, 0}
	ahead = mgl32.Vec3{0, 0, 3}
	look  = View{Origin: mgl32.Vec3{}, Direction: mgl32.Vec3{0, 0, 1}}
)

// fakeMover records movement control calls
type fakeMover struct {
	enabled   bool
	pos       mgl32.Vec3
	velocity  mgl32.Vec3
	toggles   []bool
	teleports int
}

func (m *fakeMover) SetMovementEnabled(enabled bool) {
	m.enabled = enabled
	m.toggles = append(m.toggles, enabled)
}

func (m *fakeMover) Teleport(pos mgl32.Vec3) {
	m.pos = pos
	m.velocity = mgl32.Vec3{}
	m.teleports++
}

func (m *fakeMover) Position() mgl32.Vec3 { return m.pos }

// fakeEffects destroys and spawns in a real world and counts every call
type fakeEffects struct {
	w         *world.World
	sounds    []audio.Sound
	spawned   []*world.Entity
	destroyed int
	highlight map[*world.Entity]bool
}

func (f *fakeEffects) PlaySoundAt(s audio.Sound, _ mgl32.Vec3) { f.sounds = append(f.sounds, s) }

func (f *fakeEffects) Spawn(_ entities.Prefab, pos mgl32.Vec3, yaw float32) *world.Entity {
	e := world.NewEntity("projectile", world.TagProjectile, pos, mgl32.Vec3{0.1, 0.1, 0.1})
	e.Yaw = yaw
	f.spawned = append(f.spawned, e)
	return f.w.Spawn(e)
}

func (f *fakeEffects) Destroy(e *world.Entity) {
	if f.w.Destroy(e) {
		f.destroyed++
	}
}

func (f *fakeEffects) SetHighlight(e *world.Entity, on bool) { f.highlight[e] = on }

func (f *fakeEffects) calls() int {
	return len(f.sounds) + len(f.spawned) + f.destroyed + len(f.highlight)
}

// fakeLauncher records launch velocities
type fakeLauncher struct {
	velocities []mgl32.Vec3
}

func (l *fakeLauncher) Launch(_ *world.Entity, v mgl32.Vec3, _ bool) {
	l.velocities = append(l.velocities, v)
}

type harness struct {
	w        *world.World
	sched    *clock.Scheduler
	texts    *renderer.Texts
	mover    *fakeMover
	fx       *fakeEffects
	launcher *fakeLauncher
	p        *Player
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		w:        world.NewWorld(),
		sched:    clock.New(),
		texts:    &renderer.Texts{},
		mover:    &fakeMover{enabled: true},
		launcher: &fakeLauncher{},
	}
	h.fx = &fakeEffects{w: h.w, highlight: make(map[*world.Entity]bool)}

	cfg := DefaultConfig()
	cfg.Checkpoints = map[string]mgl32.Vec3{"room2": room2, "room3": room3}
	h.p = NewPlayer(cfg, Deps{
		Scheduler: h.sched,
		Probe:     h.w,
		Mover:     h.mover,
		Launcher:  h.launcher,
		Effects:   h.fx,
		Display:   h.texts,
	})
	return h
}

func (h *harness) spawn(name string, tag world.Tag, pos mgl32.Vec3) *world.Entity {
	e := world.NewEntity(name, tag, pos, mgl32.Vec3{0.5, 0.5, 0.5})
	e.Trigger = true
	return h.w.Spawn(e)
}

func (h *harness) spawnCoin(pos mgl32.Vec3, value int) *entities.Coin {
	e := h.spawn("coin", world.TagCollectable, pos)
	coin := entities.NewCoin(e)
	coin.Value = value
	gameworld.InitGameData(e).Coin = coin
	return coin
}

func (h *harness) spawnItem(kind entities.ItemKind, pos mgl32.Vec3) *world.Entity {
	e := h.spawn(kind.String(), world.TagCollectable, pos)
	gameworld.AttachItem(e, entities.NewItem(kind, e))
	return e
}

func (h *harness) spawnDoor(required int, pos mgl32.Vec3) *entities.Door {
	e := world.NewEntity("door", world.TagDoor, pos, mgl32.Vec3{1, 1, 0.1})
	e.Solid = true
	h.w.Spawn(e)
	door := entities.NewDoor(e, required)
	gameworld.InitGameData(e).Door = door
	return door
}

// step resolves along the fixed view and optionally interacts, like one frame
func (h *harness) step(interact bool) Target {
	t := h.p.Resolve(look)
	if interact {
		h.p.Interact()
	}
	return t
}

func (h *harness) hint() string {
	return h.texts.Text(renderer.SlotHint)
}

func (h *harness) advance(d time.Duration) {
	h.sched.Advance(d)
}

