package sim

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"crystalhunt/pkg/engine/world"
	"crystalhunt/pkg/game/audio"
	"crystalhunt/pkg/game/entities"
	"crystalhunt/pkg/game/gameplay"
	"crystalhunt/pkg/game/level"
	"crystalhunt/pkg/game/renderer"
	gameworld "crystalhunt/pkg/game/world"
)

const frame = 100 * time.Millisecond

var (
	room2Checkpoint = mgl32.Vec3{0, 1, 13}
	room3Checkpoint = mgl32.Vec3{0, 1, 32}
)

// recordingSound remembers every sound played and can be muted
type recordingSound struct {
	played []audio.Sound
	muted  bool
}

func (r *recordingSound) PlayAt(s audio.Sound, _ mgl32.Vec3) { r.played = append(r.played, s) }
func (r *recordingSound) SetMuted(m bool)                    { r.muted = m }
func (r *recordingSound) Muted() bool                        { return r.muted }

func newSim(t *testing.T) (*Sim, *recordingSound) {
	t.Helper()
	lvl, err := level.Default()
	if err != nil {
		t.Fatalf("level.Default() error: %v", err)
	}
	sound := &recordingSound{}
	s, err := New(lvl, sound)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s, sound
}

func run(s *Sim, steps int, cmd gameplay.Commands) {
	for i := 0; i < steps; i++ {
		s.Step(frame, cmd)
	}
}

func coins(s *Sim) []*entities.Coin {
	var result []*entities.Coin
	s.World().Each(func(e *world.Entity) {
		if c := gameworld.GetGameData(e).Coin; c != nil {
			result = append(result, c)
		}
	})
	return result
}

func TestNew_StartsWithIntro(t *testing.T) {
	s, _ := newSim(t)
	if got := s.Text(renderer.SlotScore); got != "Score: 0" {
		t.Errorf("score text = %q, want %q", got, "Score: 0")
	}
	if got := s.Text(renderer.SlotHint); got != gameplay.MsgIntro {
		t.Errorf("hint = %q, want the intro", got)
	}
	run(s, 50, gameplay.Commands{})
	if got := s.Text(renderer.SlotHint); got != "" {
		t.Errorf("hint after 5s = %q, want empty", got)
	}
}

func TestStep_WalkOverCoin(t *testing.T) {
	s, sound := newSim(t)
	coin := coins(s)[0]
	s.Body().Teleport(coin.Entity.Position.Add(mgl32.Vec3{0, 0, -0.5}))

	s.Step(frame, gameplay.Commands{})

	if coin.Entity.Alive() {
		t.Error("coin survived walking over it")
	}
	if got := s.Player().State().Score; got != entities.DefaultCoinValue {
		t.Errorf("Score = %d, want %d", got, entities.DefaultCoinValue)
	}
	if len(sound.played) != 1 || sound.played[0] != audio.SoundCoin {
		t.Errorf("sounds = %v, want [coin]", sound.played)
	}
}

func TestStep_AimAndInteract(t *testing.T) {
	s, _ := newSim(t)
	s.Body().Teleport(mgl32.Vec3{0, 1, -3}) // coin 5 sits at the origin, straight ahead

	s.Step(frame, gameplay.Commands{})
	if got := s.Player().Target().Kind; got != gameplay.TargetCoin {
		t.Fatalf("target = %v, want Coin", got)
	}
	coin := gameworld.GetGameData(s.Player().Target().Entity).Coin
	if !s.Highlighted(coin.Entity) {
		t.Error("aimed coin not highlighted")
	}

	s.Step(frame, gameplay.Commands{Interact: true})
	if coin.Entity.Alive() || s.Player().State().Score != 10 {
		t.Errorf("interact: alive=%v score=%d, want collected and 10", coin.Entity.Alive(), s.Player().State().Score)
	}
	if s.Highlighted(coin.Entity) {
		t.Error("destroyed coin still highlighted")
	}
}

func TestStep_WallBlocksMovement(t *testing.T) {
	s, _ := newSim(t)
	s.Body().Teleport(mgl32.Vec3{0, 1, -9})

	run(s, 10, gameplay.Commands{Forward: -1})

	if z := s.Body().Position().Z(); z < -9.41 {
		t.Errorf("body walked into the south wall: z = %v", z)
	}
}

func TestStep_ScoreDoor(t *testing.T) {
	s, _ := newSim(t)
	atDoor := mgl32.Vec3{0, 1, 8}
	s.Body().Teleport(atDoor)

	s.Step(frame, gameplay.Commands{Interact: true})
	if got := s.Text(renderer.SlotHint); got != "You need 50 scores to open the door" {
		t.Errorf("hint = %q, want the shortfall message", got)
	}
	run(s, 10, gameplay.Commands{Forward: 1})
	if z := s.Body().Position().Z(); z > 10 {
		t.Fatalf("walked through a closed door: z = %v", z)
	}

	for _, c := range coins(s) {
		s.Body().Teleport(c.Entity.Position)
		s.Step(frame, gameplay.Commands{})
	}
	if got := s.Player().State().Score; got < 50 {
		t.Fatalf("Score after collecting every coin = %d, want >= 50", got)
	}

	s.Body().Teleport(atDoor)
	s.Step(frame, gameplay.Commands{Interact: true})
	run(s, 10, gameplay.Commands{Forward: 1})
	if z := s.Body().Position().Z(); z < 11 {
		t.Errorf("did not pass the opened door: z = %v", z)
	}
	if got := s.Text(renderer.SlotHint); got != gameplay.MsgWaterWarning {
		t.Errorf("hint in room 2 = %q, want the water warning", got)
	}
}

func TestStep_HazardRespawn(t *testing.T) {
	tests := []struct {
		name string
		at   mgl32.Vec3
		want mgl32.Vec3
	}{
		{"water", mgl32.Vec3{-5.5, 1, 19}, room2Checkpoint},
		{"gas", mgl32.Vec3{0, 1, 40}, room3Checkpoint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, sound := newSim(t)
			s.Body().Teleport(tt.at)
			s.Body().Velocity = mgl32.Vec3{1, 0, 1}

			s.Step(frame, gameplay.Commands{})
			if !s.Player().Respawning() || s.Body().MovementEnabled() {
				t.Fatal("not respawning after entering the hazard")
			}
			if s.Body().Velocity != (mgl32.Vec3{}) {
				t.Errorf("velocity during respawn = %v, want zero", s.Body().Velocity)
			}

			run(s, 10, gameplay.Commands{Forward: 1, Strafe: 1})
			if s.Body().Position() != tt.at {
				t.Errorf("body moved during respawn to %v", s.Body().Position())
			}

			run(s, 11, gameplay.Commands{})
			if s.Player().Respawning() || !s.Body().MovementEnabled() {
				t.Fatal("still respawning after the delay")
			}
			if s.Body().Position() != tt.want {
				t.Errorf("position = %v, want %v", s.Body().Position(), tt.want)
			}
			if s.Body().Velocity != (mgl32.Vec3{}) {
				t.Errorf("velocity after respawn = %v, want zero", s.Body().Velocity)
			}
			if len(sound.played) == 0 || sound.played[0] != audio.SoundDeath {
				t.Errorf("sounds = %v, want death first", sound.played)
			}
		})
	}
}

func TestStep_RespawnInsideHazardDiesAgain(t *testing.T) {
	lvl, err := level.Default()
	if err != nil {
		t.Fatalf("level.Default() error: %v", err)
	}
	pool := mgl32.Vec3{-5.5, 1, 19}
	for name := range lvl.Checkpoints {
		lvl.Checkpoints[name] = level.Vec{pool.X(), pool.Y(), pool.Z()}
	}
	sound := &recordingSound{}
	s, err := New(lvl, sound)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	s.Body().Teleport(pool)
	s.Step(frame, gameplay.Commands{})
	if !s.Player().Respawning() {
		t.Fatal("not respawning after entering the water")
	}

	// One respawn delay later the body is back in the pool and dies again
	run(s, 25, gameplay.Commands{})
	deaths := 0
	for _, snd := range sound.played {
		if snd == audio.SoundDeath {
			deaths++
		}
	}
	if deaths < 2 {
		t.Errorf("deaths = %d, want at least 2 after respawning inside the water", deaths)
	}
	if !s.Player().Respawning() {
		t.Error("not respawning again after control returned inside the water")
	}
}

func TestStep_GasWithMask(t *testing.T) {
	s, _ := newSim(t)
	s.Player().State().PickUpItem(entities.ItemMask)
	s.Body().Teleport(mgl32.Vec3{0, 1, 40})

	run(s, 5, gameplay.Commands{})
	if s.Player().Respawning() {
		t.Error("respawning in gas with the mask")
	}
}

func TestStep_ShootMonsterAndWin(t *testing.T) {
	s, sound := newSim(t)
	s.Player().State().PickUpItem(entities.ItemGun)
	s.Body().Teleport(mgl32.Vec3{0, 1, 43.5})

	s.Step(time.Second/60, gameplay.Commands{Shoot: true})
	for i := 0; i < 30 && s.World().FindByName("monster") != nil; i++ {
		s.Step(time.Second/60, gameplay.Commands{})
	}
	if s.World().FindByName("monster") != nil {
		t.Fatal("monster survived the shot")
	}
	if s.Projectiles() != 0 {
		t.Errorf("Projectiles() = %d, want 0", s.Projectiles())
	}
	crystal := s.World().FindByName("crystal")
	if crystal == nil || !gameworld.HasCrystal(crystal) {
		t.Fatal("monster did not drop the crystal")
	}
	if crystal.Position != (mgl32.Vec3{0, 1, 46}) {
		t.Errorf("crystal at %v, want the monster's position", crystal.Position)
	}

	s.Body().Teleport(crystal.Position)
	s.Step(frame, gameplay.Commands{})
	if !s.Player().State().Won {
		t.Fatal("Won = false after picking up the crystal")
	}
	run(s, 3, gameplay.Commands{Forward: -1})
	run(s, 50, gameplay.Commands{})
	if got := s.Text(renderer.SlotHint); got != gameplay.MsgWin {
		t.Errorf("hint = %q, want %q", got, gameplay.MsgWin)
	}
	if z := s.Body().Position().Z(); z >= 46 {
		t.Error("player could not move after winning")
	}

	var damage bool
	for _, snd := range sound.played {
		damage = damage || snd == audio.SoundDamage
	}
	if !damage {
		t.Errorf("sounds = %v, want a damage sound", sound.played)
	}
}

func TestStep_ShootWithoutGun(t *testing.T) {
	s, _ := newSim(t)
	s.Step(frame, gameplay.Commands{Shoot: true})
	if s.Projectiles() != 0 {
		t.Errorf("Projectiles() = %d without the gun, want 0", s.Projectiles())
	}
}

func TestStep_ResetLevel(t *testing.T) {
	s, _ := newSim(t)
	coin := coins(s)[0]
	s.Body().Teleport(coin.Entity.Position)
	s.Step(frame, gameplay.Commands{})
	if s.Player().State().Score == 0 {
		t.Fatal("coin not collected")
	}

	s.Step(frame, gameplay.Commands{ResetLevel: true})

	if got := s.Player().State().Score; got != 0 {
		t.Errorf("Score after reset = %d, want 0", got)
	}
	if got := len(coins(s)); got != 6 {
		t.Errorf("coins after reset = %d, want 6", got)
	}
	if s.Body().Position() != (mgl32.Vec3{0, 1, -7}) {
		t.Errorf("body at %v after reset, want the spawn point", s.Body().Position())
	}
}

func TestStep_ToggleMute(t *testing.T) {
	s, sound := newSim(t)
	s.Step(frame, gameplay.Commands{ToggleMute: true})
	if !sound.muted {
		t.Error("ToggleMute did not mute")
	}
	s.Step(frame, gameplay.Commands{ToggleMute: true})
	if sound.muted {
		t.Error("second ToggleMute did not unmute")
	}
}

func TestBody_Turn(t *testing.T) {
	b := newBody(mgl32.Vec3{}, 350, 0.4, 0.2)
	b.Turn(20, 200)
	if b.Yaw() != 10 {
		t.Errorf("Yaw() = %v, want 10", b.Yaw())
	}
	if b.Pitch != MaxPitch {
		t.Errorf("Pitch = %v, want %v", b.Pitch, float32(MaxPitch))
	}
}
