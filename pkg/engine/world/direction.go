package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction represents a cardinal heading on the ground plane
type Direction int

// Direction constants. North is +Z.
const (
	North Direction = iota
	East
	South
	West
)

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Heading returns the cardinal direction closest to the given yaw
func Heading(yaw float32) Direction {
	y := NormalizeYaw(yaw)
	return Direction(int((y+45)/90) % 4)
}

// NormalizeYaw wraps an angle in degrees into [0, 360)
func NormalizeYaw(yaw float32) float32 {
	y := float32(math.Mod(float64(yaw), 360))
	if y < 0 {
		y += 360
	}
	return y
}

// Forward returns the unit view vector for yaw and pitch in degrees.
// Yaw 0 looks down +Z and grows clockwise seen from above (+X is yaw 90).
// Positive pitch looks down.
func Forward(yaw, pitch float32) mgl32.Vec3 {
	y := float64(mgl32.DegToRad(yaw))
	p := float64(mgl32.DegToRad(pitch))
	return mgl32.Vec3{
		float32(math.Sin(y) * math.Cos(p)),
		float32(-math.Sin(p)),
		float32(math.Cos(y) * math.Cos(p)),
	}.Normalize()
}

// Right returns the unit strafe vector on the ground plane for the given yaw
func Right(yaw float32) mgl32.Vec3 {
	return Forward(yaw+90, 0)
}
