package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"crystalhunt/pkg/engine/world"
)

// MaxPitch limits how far the view can tilt up or down, in degrees
const MaxPitch = 80

// Body is the player's kinematic capsule, approximated by a sphere at its centre
type Body struct {
	Entity    *world.Entity
	Velocity  mgl32.Vec3
	Pitch     float32
	Radius    float32
	EyeHeight float32 // View origin above the body centre

	enabled bool
}

func newBody(pos mgl32.Vec3, yaw, radius, eyeHeight float32) *Body {
	e := world.NewEntity("player", world.TagPlayer, pos, mgl32.Vec3{radius, 1, radius})
	e.Yaw = yaw
	return &Body{
		Entity:    e,
		Radius:    radius,
		EyeHeight: eyeHeight,
		enabled:   true,
	}
}

// SetMovementEnabled turns movement control on or off.
// Disabling also drops any velocity the body carried.
func (b *Body) SetMovementEnabled(enabled bool) {
	b.enabled = enabled
	if !enabled {
		b.Velocity = mgl32.Vec3{}
	}
}

// MovementEnabled reports whether the body accepts movement input
func (b *Body) MovementEnabled() bool {
	return b.enabled
}

// Teleport places the body at pos with zero velocity
func (b *Body) Teleport(pos mgl32.Vec3) {
	b.Entity.Position = pos
	b.Velocity = mgl32.Vec3{}
}

// Position returns the body centre
func (b *Body) Position() mgl32.Vec3 {
	return b.Entity.Position
}

// Yaw returns the view yaw in degrees
func (b *Body) Yaw() float32 {
	return b.Entity.Yaw
}

// Turn rotates the view by the given yaw and pitch deltas
func (b *Body) Turn(dYaw, dPitch float32) {
	b.Entity.Yaw = world.NormalizeYaw(b.Entity.Yaw + dYaw)
	b.Pitch = mgl32.Clamp(b.Pitch+dPitch, -MaxPitch, MaxPitch)
}

// Eye returns the view origin
func (b *Body) Eye() mgl32.Vec3 {
	return b.Entity.Position.Add(mgl32.Vec3{0, b.EyeHeight, 0})
}

// Forward returns the view direction
func (b *Body) Forward() mgl32.Vec3 {
	return world.Forward(b.Entity.Yaw, b.Pitch)
}
