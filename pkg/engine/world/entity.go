package world

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// EntityID uniquely identifies an entity for the lifetime of a session
type EntityID = uuid.UUID

// Tag is the single engine tag an entity carries (what the level editor calls its tag)
type Tag string

// Tags used by the content
const (
	TagNone        Tag = ""
	TagCollectable Tag = "Collectable"
	TagDoor        Tag = "Door"
	TagWater       Tag = "Water"
	TagGas         Tag = "Gas"
	TagRoom2Start  Tag = "Room2Start"
	TagProjectile  Tag = "Projectile"
	TagMonster     Tag = "Monster"
	TagWall        Tag = "Wall"
	TagPlayer      Tag = "Player"
)

// Entity is a placed object in the world.
// Position is the centre of its box and Extent the half-size on each axis.
type Entity struct {
	ID       EntityID
	Name     string
	Tag      Tag
	Position mgl32.Vec3
	Yaw      float32 // Rotation about the vertical axis, in degrees
	Extent   mgl32.Vec3
	Solid    bool // Blocks movement
	Trigger  bool // Reports overlap enter/exit events

	// GameData holds game-specific capabilities (see game/world)
	GameData any

	alive bool
}

// NewEntity creates an entity with a fresh ID. It is not alive until spawned.
func NewEntity(name string, tag Tag, pos, extent mgl32.Vec3) *Entity {
	return &Entity{
		ID:       uuid.New(),
		Name:     name,
		Tag:      tag,
		Position: pos,
		Extent:   extent,
	}
}

// Alive returns true while the entity is registered in a world
func (e *Entity) Alive() bool {
	return e != nil && e.alive
}

// CompareTag reports whether the entity carries the given tag
func (e *Entity) CompareTag(tag Tag) bool {
	return e != nil && e.Tag == tag
}

// Bounds returns the axis-aligned box occupied by the entity
func (e *Entity) Bounds() Box {
	return Box{
		Min: e.Position.Sub(e.Extent),
		Max: e.Position.Add(e.Extent),
	}
}

func (e *Entity) String() string {
	if e == nil {
		return "<nil>"
	}
	return e.Name
}
