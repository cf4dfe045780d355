// Package gameplay provides the player's interaction and progression logic:
// target resolution, action dispatch and the hazard/respawn state machine.
package gameplay

import (
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"crystalhunt/pkg/engine/clock"
	"crystalhunt/pkg/engine/world"
	"crystalhunt/pkg/game/entities"
	"crystalhunt/pkg/game/hints"
	"crystalhunt/pkg/game/renderer"
	"crystalhunt/pkg/game/state"
)

// Prober is the raycast primitive the resolver consumes
type Prober interface {
	Raycast(origin, dir mgl32.Vec3, maxDist float32) (world.RayHit, bool)
}

// Mover controls the player's body
type Mover interface {
	SetMovementEnabled(enabled bool)
	// Teleport places the body at pos and zeroes its velocity
	Teleport(pos mgl32.Vec3)
	Position() mgl32.Vec3
}

// Launcher gives a spawned entity an initial velocity
type Launcher interface {
	Launch(e *world.Entity, velocity mgl32.Vec3, gravity bool)
}

// View is where the player is looking from and towards
type View struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
	Yaw       float32
}

// Config holds the tunables of the player logic
type Config struct {
	InteractionDistance float32
	Checkpoints         map[string]mgl32.Vec3 // Keyed by checkpoint name ("room2", "room3")
	IntroDuration       time.Duration
	HintDuration        time.Duration
	RespawnDelay        time.Duration
	ShootSpeed          float32
	ShootCooldown       time.Duration
}

// DefaultConfig returns the stock tunables
func DefaultConfig() Config {
	return Config{
		InteractionDistance: 5,
		Checkpoints:         map[string]mgl32.Vec3{},
		IntroDuration:       5 * time.Second,
		HintDuration:        2 * time.Second,
		RespawnDelay:        2 * time.Second,
		ShootSpeed:          20,
		ShootCooldown:       250 * time.Millisecond,
	}
}

// Deps are the engine collaborators the player drives
type Deps struct {
	Scheduler *clock.Scheduler
	Probe     Prober
	Mover     Mover
	Launcher  Launcher
	Effects   entities.Effects
	Display   renderer.Display
}

// Phase is the hazard state machine state
type Phase int

const (
	PhaseActive Phase = iota
	PhaseRespawning
)

// Player owns the interaction loop, the progression state and the hazard response
type Player struct {
	cfg   Config
	state *state.Player
	hints *hints.Channel

	sched    *clock.Scheduler
	probe    Prober
	mover    Mover
	launcher Launcher
	fx       entities.Effects
	display  renderer.Display

	target      Target         // Result of the latest Resolve
	highlighted *entities.Coin // Coin whose highlight the resolver owns
	phase       Phase
	respawn     *clock.Timer
	lastShot    time.Duration
	hasShot     bool
}

// NewPlayer creates a player in the Active phase with a fresh progression state
func NewPlayer(cfg Config, deps Deps) *Player {
	if deps.Scheduler == nil {
		deps.Scheduler = clock.New()
	}
	return &Player{
		cfg:      cfg,
		state:    state.NewPlayer(),
		hints:    hints.New(deps.Scheduler, deps.Display),
		sched:    deps.Scheduler,
		probe:    deps.Probe,
		mover:    deps.Mover,
		launcher: deps.Launcher,
		fx:       deps.Effects,
		display:  deps.Display,
	}
}

// State returns the progression state
func (p *Player) State() *state.Player { return p.state }

// Hints returns the hint channel
func (p *Player) Hints() *hints.Channel { return p.hints }

// Target returns the result of the latest resolution step
func (p *Player) Target() Target { return p.target }

// Phase returns the hazard state machine state
func (p *Player) Phase() Phase { return p.phase }

// Respawning reports whether a death/respawn transition is in progress
func (p *Player) Respawning() bool { return p.phase == PhaseRespawning }

// ModifyScore is the single score mutation entry point
func (p *Player) ModifyScore(delta int) {
	p.state.ModifyScore(delta)
	log.Printf("Score: %d", p.state.Score)
	p.setText(renderer.SlotScore, msg(MsgScore, p.state.Score))
}

// Win records the win and shows the persistent win message.
// Control is left unchanged.
func (p *Player) Win() {
	if p.state.Won {
		return
	}
	p.state.Win()
	log.Printf("You win!")
	p.hints.ShowPersistent(msg(MsgWin))
	p.logMessage(MsgWin)
}

func (p *Player) setText(slot renderer.TextSlot, text string) {
	if p.display != nil {
		p.display.SetText(slot, text)
	}
}
