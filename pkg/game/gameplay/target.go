package gameplay

import (
	"log"

	"crystalhunt/pkg/engine/world"
	"crystalhunt/pkg/game/entities"
	gameworld "crystalhunt/pkg/game/world"
)

// TargetKind is the closed set of things the player can be aimed at
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetCoin
	TargetKey
	TargetGun
	TargetMask
	TargetCrystal
	TargetDoor
)

// String returns the kind's name
func (k TargetKind) String() string {
	switch k {
	case TargetNone:
		return "None"
	case TargetCoin:
		return "Coin"
	case TargetKey:
		return "Key"
	case TargetGun:
		return "Gun"
	case TargetMask:
		return "Mask"
	case TargetCrystal:
		return "Crystal"
	case TargetDoor:
		return "Door"
	default:
		return "Unknown"
	}
}

// IsCollectible reports whether the kind is picked up rather than operated
func (k TargetKind) IsCollectible() bool {
	return k >= TargetCoin && k <= TargetCrystal
}

var itemTargets = map[entities.ItemKind]TargetKind{
	entities.ItemCoin:    TargetCoin,
	entities.ItemKey:     TargetKey,
	entities.ItemGun:     TargetGun,
	entities.ItemMask:    TargetMask,
	entities.ItemCrystal: TargetCrystal,
}

// Target is the result of one resolution step: at most one candidate and
// the advisory message that goes with it.
type Target struct {
	Kind    TargetKind
	Entity  *world.Entity
	Message string
}

// Valid reports whether the target names a live candidate
func (t Target) Valid() bool {
	return t.Kind != TargetNone && t.Entity.Alive()
}

// Coin returns the coin behaviour of a coin target
func (t Target) Coin() *entities.Coin {
	return gameworld.GetGameData(t.Entity).Coin
}

// Collectible returns the collectible behaviour of a collectible target
func (t Target) Collectible() entities.Collectible {
	c, _ := gameworld.Collectible(t.Entity)
	return c
}

// Door returns the door behaviour of a door target
func (t Target) Door() *entities.Door {
	return gameworld.GetGameData(t.Entity).Door
}

// Classify maps an entity to exactly one target kind.
// Collectables are matched coin, key, gun, mask, crystal, in that order.
// A collectable with none of those behaviours is not a target.
func Classify(e *world.Entity) TargetKind {
	if !e.Alive() {
		return TargetNone
	}
	switch {
	case e.CompareTag(world.TagCollectable):
		c, ok := gameworld.Collectible(e)
		if !ok {
			log.Printf("Collectable %q has no collectible behaviour", e.Name)
			return TargetNone
		}
		return itemTargets[c.Kind()]
	case e.CompareTag(world.TagDoor):
		if gameworld.HasDoor(e) {
			return TargetDoor
		}
	}
	return TargetNone
}

// targetFor classifies e and attaches the advisory message
func targetFor(e *world.Entity) Target {
	kind := Classify(e)
	if kind == TargetNone {
		return Target{}
	}
	t := Target{Kind: kind, Entity: e}
	switch {
	case kind == TargetDoor:
		t.Message = msg(MsgOpenDoor)
	case kind.IsCollectible():
		if prompt := entities.ItemTypes[t.Collectible().Kind()].Prompt; prompt != "" {
			t.Message = dynamicGet(prompt)
		}
	}
	return t
}
