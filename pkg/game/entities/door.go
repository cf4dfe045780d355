package entities

import (
	"crystalhunt/pkg/engine/world"
)

// Gating is the rule a door uses to decide whether it may open
type Gating int

const (
	GateKey   Gating = iota // Needs the key
	GateScore               // Needs RequiredScore points
)

// DoorOpenAngle is how far a door swings, in degrees, when it opens
const DoorOpenAngle = 90

// Door swings between a closed and an open orientation.
// RequiredScore > 0 makes it score-gated, otherwise it is key-gated.
type Door struct {
	Entity        *world.Entity
	RequiredScore int

	open      bool
	closedYaw float32
}

// NewDoor creates a closed door, remembering the entity's current yaw as closed
func NewDoor(e *world.Entity, requiredScore int) *Door {
	if requiredScore < 0 {
		requiredScore = 0
	}
	return &Door{
		Entity:        e,
		RequiredScore: requiredScore,
		closedYaw:     e.Yaw,
	}
}

// IsOpen reports whether the door is open
func (d *Door) IsOpen() bool {
	return d.open
}

// ClosedYaw returns the yaw of the closed door
func (d *Door) ClosedYaw() float32 {
	return d.closedYaw
}

// Gating returns the door's gating mode
func (d *Door) Gating() Gating {
	if d.RequiredScore > 0 {
		return GateScore
	}
	return GateKey
}

// Toggle opens a closed door or closes an open one.
// An open door no longer blocks movement.
func (d *Door) Toggle() {
	if d.open {
		d.Entity.Yaw = d.closedYaw
	} else {
		d.Entity.Yaw = d.closedYaw - DoorOpenAngle
	}
	d.open = !d.open
	d.Entity.Solid = !d.open
}

// DoorName returns the display name for this door
func (d *Door) DoorName() string {
	return d.Entity.Name
}
