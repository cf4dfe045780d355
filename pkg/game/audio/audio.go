// Package audio plays the game's sound effects.
package audio

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Sound identifies a sound effect
type Sound int

const (
	SoundCoin Sound = iota
	SoundKey
	SoundGun
	SoundMask
	SoundCrystal
	SoundDamage
	SoundDeath
)

// String returns the sound's name
func (s Sound) String() string {
	switch s {
	case SoundCoin:
		return "coin"
	case SoundKey:
		return "key"
	case SoundGun:
		return "gun"
	case SoundMask:
		return "mask"
	case SoundCrystal:
		return "crystal"
	case SoundDamage:
		return "damage"
	case SoundDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Player plays a sound at a point in the world (fire and forget)
type Player interface {
	PlayAt(s Sound, pos mgl32.Vec3)
}

// Silent discards every sound
type Silent struct{}

// PlayAt does nothing
func (Silent) PlayAt(Sound, mgl32.Vec3) {}

// Attenuation returns the volume factor in [0, 1] for a sound at distance d
// from the listener. Full volume inside minDistance, linear roll-off to zero at maxDistance.
func Attenuation(d, minDistance, maxDistance float32) float32 {
	if d <= minDistance {
		return 1
	}
	if d >= maxDistance {
		return 0
	}
	return 1 - (d-minDistance)/(maxDistance-minDistance)
}
