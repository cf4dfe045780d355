package entities

import (
	"log"

	"crystalhunt/pkg/engine/world"
	"crystalhunt/pkg/game/audio"
)

// ItemKind identifies a collectible variant
type ItemKind int

const (
	ItemCoin ItemKind = iota
	ItemKey
	ItemGun
	ItemMask
	ItemCrystal
)

// ItemInfo contains display and feedback information for each item kind
type ItemInfo struct {
	Name   string
	Prompt string // Interaction prompt shown while aimed at (empty: highlight only)
	Sound  audio.Sound
}

// ItemTypes maps item kinds to their information
var ItemTypes = map[ItemKind]ItemInfo{
	ItemCoin: {
		Name:  "Coin",
		Sound: audio.SoundCoin,
	},
	ItemKey: {
		Name:   "Key",
		Prompt: "Press 'E' to collect the key",
		Sound:  audio.SoundKey,
	},
	ItemGun: {
		Name:   "Gun",
		Prompt: "Press 'E' to collect the gun",
		Sound:  audio.SoundGun,
	},
	ItemMask: {
		Name:   "Mask",
		Prompt: "Press 'E' to collect the mask",
		Sound:  audio.SoundMask,
	},
	ItemCrystal: {
		Name:   "Crystal",
		Prompt: "Press 'E' to collect the crystal",
		Sound:  audio.SoundCrystal,
	},
}

// String returns the item's display name
func (k ItemKind) String() string {
	if info, ok := ItemTypes[k]; ok {
		return info.Name
	}
	return "Unknown"
}

// Collectible is anything the player can pick up
type Collectible interface {
	Kind() ItemKind
	Collect(actor Collector, fx Effects)
}

// Item is a key, gun, mask or crystal
type Item struct {
	ItemKind ItemKind
	Entity   *world.Entity
}

// NewItem creates an item behaviour for the given entity
func NewItem(kind ItemKind, e *world.Entity) *Item {
	return &Item{ItemKind: kind, Entity: e}
}

// Kind returns the item kind
func (i *Item) Kind() ItemKind {
	return i.ItemKind
}

// Collect plays the item's feedback and removes it from the world.
// Collecting the crystal wins the game.
func (i *Item) Collect(actor Collector, fx Effects) {
	if !i.Entity.Alive() {
		return
	}
	log.Printf("%s collected!", i.ItemKind)
	if i.ItemKind == ItemCrystal {
		actor.Win()
	}
	fx.PlaySoundAt(ItemTypes[i.ItemKind].Sound, i.Entity.Position)
	fx.Destroy(i.Entity)
}
