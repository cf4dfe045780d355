// Package level loads the YAML level description and populates a world from it.
package level

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"crystalhunt/pkg/game/entities"
	"crystalhunt/pkg/game/gameplay"
)

//go:embed default.yaml
var defaultLevelYAML []byte

var (
	ErrBadVector         = errors.New("vector must have exactly 3 components")
	ErrUnknownKind       = errors.New("unknown entity kind")
	ErrMissingCheckpoint = errors.New("missing checkpoint")
	ErrNoEntities        = errors.New("level has no entities")
)

// Kind is the type of a placed entity in the level file
type Kind string

const (
	KindWall       Kind = "wall"
	KindCoin       Kind = "coin"
	KindKey        Kind = "key"
	KindGun        Kind = "gun"
	KindMask       Kind = "mask"
	KindCrystal    Kind = "crystal"
	KindDoor       Kind = "door"
	KindWater      Kind = "water"
	KindGas        Kind = "gas"
	KindRoom2Start Kind = "room2start"
	KindMonster    Kind = "monster"
)

// Vec is a three component vector as written in the level file
type Vec []float32

// Vec3 converts v, failing unless it has exactly three components
func (v Vec) Vec3() (mgl32.Vec3, error) {
	if len(v) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("%v: %w", []float32(v), ErrBadVector)
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, nil
}

// PlayerSpec describes the player's body
type PlayerSpec struct {
	Spawn     Vec     `yaml:"spawn"`
	Yaw       float32 `yaml:"yaw"`
	EyeHeight float32 `yaml:"eye_height"`
	Radius    float32 `yaml:"radius"`
	Speed     float32 `yaml:"speed"`      // Units per second
	TurnSpeed float32 `yaml:"turn_speed"` // Degrees per second
}

// Timings are the durations of the timed messages and the respawn
type Timings struct {
	Intro   time.Duration `yaml:"intro"`
	Hint    time.Duration `yaml:"hint"`
	Respawn time.Duration `yaml:"respawn"`
}

// EntitySpec is one placed entity
type EntitySpec struct {
	Name          string  `yaml:"name"`
	Kind          Kind    `yaml:"kind"`
	Position      Vec     `yaml:"position"`
	Extent        Vec     `yaml:"extent,omitempty"`
	Yaw           float32 `yaml:"yaw,omitempty"`
	Value         int     `yaml:"value,omitempty"`          // Coins only
	RequiredScore int     `yaml:"required_score,omitempty"` // Doors only; 0 means key-gated
}

// Level is a parsed level file
type Level struct {
	Name                string         `yaml:"name"`
	Player              PlayerSpec     `yaml:"player"`
	InteractionDistance float32        `yaml:"interaction_distance"`
	Timings             Timings        `yaml:"timings"`
	Checkpoints         map[string]Vec `yaml:"checkpoints"`
	Entities            []EntitySpec   `yaml:"entities"`
}

// Default returns the embedded three-room level
func Default() (*Level, error) {
	return Parse(defaultLevelYAML)
}

// Load reads and parses a level file
func Load(path string) (*Level, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level %s: %w", path, err)
	}
	lvl, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return lvl, nil
}

// Parse decodes a level, fills in defaults and validates it
func Parse(b []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(b, &lvl); err != nil {
		return nil, fmt.Errorf("decoding level: %w", err)
	}
	lvl.applyDefaults()
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) applyDefaults() {
	def := gameplay.DefaultConfig()
	if l.InteractionDistance <= 0 {
		l.InteractionDistance = def.InteractionDistance
	}
	if l.Timings.Intro <= 0 {
		l.Timings.Intro = def.IntroDuration
	}
	if l.Timings.Hint <= 0 {
		l.Timings.Hint = def.HintDuration
	}
	if l.Timings.Respawn <= 0 {
		l.Timings.Respawn = def.RespawnDelay
	}
	if l.Player.Spawn == nil {
		l.Player.Spawn = Vec{0, 1, 0}
	}
	if l.Player.EyeHeight <= 0 {
		l.Player.EyeHeight = 0.2
	}
	if l.Player.Radius <= 0 {
		l.Player.Radius = 0.4
	}
	if l.Player.Speed <= 0 {
		l.Player.Speed = 4
	}
	if l.Player.TurnSpeed <= 0 {
		l.Player.TurnSpeed = 120
	}
}

// Validate checks vectors, entity kinds and the hazard checkpoints
func (l *Level) Validate() error {
	if _, err := l.Player.Spawn.Vec3(); err != nil {
		return fmt.Errorf("player spawn: %w", err)
	}
	for _, info := range entities.HazardTypes {
		v, ok := l.Checkpoints[info.Checkpoint]
		if !ok {
			return fmt.Errorf("%q: %w", info.Checkpoint, ErrMissingCheckpoint)
		}
		if _, err := v.Vec3(); err != nil {
			return fmt.Errorf("checkpoint %q: %w", info.Checkpoint, err)
		}
	}
	if len(l.Entities) == 0 {
		return ErrNoEntities
	}
	for i, spec := range l.Entities {
		if _, ok := kindDefaults[spec.Kind]; !ok {
			return fmt.Errorf("entity %d (%s): %q: %w", i, spec.Name, spec.Kind, ErrUnknownKind)
		}
		if _, err := spec.Position.Vec3(); err != nil {
			return fmt.Errorf("entity %d (%s) position: %w", i, spec.Name, err)
		}
		if spec.Extent != nil {
			if _, err := spec.Extent.Vec3(); err != nil {
				return fmt.Errorf("entity %d (%s) extent: %w", i, spec.Name, err)
			}
		}
	}
	return nil
}

// PlayerConfig returns the player tunables this level asks for
func (l *Level) PlayerConfig() gameplay.Config {
	cfg := gameplay.DefaultConfig()
	cfg.InteractionDistance = l.InteractionDistance
	cfg.IntroDuration = l.Timings.Intro
	cfg.HintDuration = l.Timings.Hint
	cfg.RespawnDelay = l.Timings.Respawn
	cfg.Checkpoints = make(map[string]mgl32.Vec3, len(l.Checkpoints))
	for name, v := range l.Checkpoints {
		pos, _ := v.Vec3() // validated by Parse
		cfg.Checkpoints[name] = pos
	}
	return cfg
}

// Spawn returns the player's spawn position
func (l *Level) Spawn() mgl32.Vec3 {
	pos, _ := l.Player.Spawn.Vec3()
	return pos
}
