// Package world provides game-specific world extensions for Crystal Hunt.
// It attaches game behaviours to the generic engine/world entities.
package world

import (
	"crystalhunt/pkg/engine/world"
	"crystalhunt/pkg/game/entities"
)

// EntityData holds game-specific behaviour references for an entity.
// This is stored in the engine Entity's GameData field.
type EntityData struct {
	Coin    *entities.Coin    // Coin behaviour (if any)
	Key     *entities.Item    // Key collectible (if any)
	Gun     *entities.Item    // Gun collectible (if any)
	Mask    *entities.Item    // Mask collectible (if any)
	Crystal *entities.Item    // Crystal collectible (if any)
	Door    *entities.Door    // Door behaviour (if any)
	Monster *entities.Monster // Monster behaviour (if any)
}

// InitGameData initializes game data for an entity if not already set
func InitGameData(e *world.Entity) *EntityData {
	if e.GameData == nil {
		e.GameData = &EntityData{}
	}
	return e.GameData.(*EntityData)
}

// GetGameData retrieves game data from an entity, initializing if needed.
// A nil entity yields an empty, detached EntityData.
func GetGameData(e *world.Entity) *EntityData {
	if e == nil {
		return &EntityData{}
	}
	return InitGameData(e)
}

// AttachItem stores the item under the slot matching its kind
func AttachItem(e *world.Entity, item *entities.Item) {
	data := InitGameData(e)
	switch item.ItemKind {
	case entities.ItemKey:
		data.Key = item
	case entities.ItemGun:
		data.Gun = item
	case entities.ItemMask:
		data.Mask = item
	case entities.ItemCrystal:
		data.Crystal = item
	}
}

// Collectible returns the entity's collectible behaviour in priority order:
// coin, key, gun, mask, crystal. The second result is false if it has none.
func Collectible(e *world.Entity) (entities.Collectible, bool) {
	data := GetGameData(e)
	switch {
	case data.Coin != nil:
		return data.Coin, true
	case data.Key != nil:
		return data.Key, true
	case data.Gun != nil:
		return data.Gun, true
	case data.Mask != nil:
		return data.Mask, true
	case data.Crystal != nil:
		return data.Crystal, true
	}
	return nil, false
}

// Helper functions for checking behaviour presence on entities

// HasCoin returns true if this entity is a coin
func HasCoin(e *world.Entity) bool {
	return GetGameData(e).Coin != nil
}

// HasKey returns true if this entity is the key
func HasKey(e *world.Entity) bool {
	return GetGameData(e).Key != nil
}

// HasGun returns true if this entity is the gun
func HasGun(e *world.Entity) bool {
	return GetGameData(e).Gun != nil
}

// HasMask returns true if this entity is the mask
func HasMask(e *world.Entity) bool {
	return GetGameData(e).Mask != nil
}

// HasCrystal returns true if this entity is the crystal
func HasCrystal(e *world.Entity) bool {
	return GetGameData(e).Crystal != nil
}

// HasDoor returns true if this entity is a door
func HasDoor(e *world.Entity) bool {
	return GetGameData(e).Door != nil
}

// HasOpenDoor returns true if this entity is an open door
func HasOpenDoor(e *world.Entity) bool {
	data := GetGameData(e)
	return data.Door != nil && data.Door.IsOpen()
}

// HasMonster returns true if this entity is the monster
func HasMonster(e *world.Entity) bool {
	return GetGameData(e).Monster != nil
}
