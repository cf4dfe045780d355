// Package state holds the player's progression: score, inventory flags,
// win state and the short event log shown by the frontends.
package state

import (
	"github.com/zyedidia/generic/mapset"

	"crystalhunt/pkg/game/entities"
)

const maxMessages = 5

// Player represents the progression state of one player
type Player struct {
	Score int

	OwnedItems mapset.Set[entities.ItemKind]

	Won bool

	Messages []string
}

// NewPlayer creates a player with zero score and an empty inventory
func NewPlayer() *Player {
	return &Player{
		OwnedItems: mapset.New[entities.ItemKind](),
		Messages:   make([]string, 0),
	}
}

// ModifyScore adds delta to the score. Negative deltas are applied as-is.
func (p *Player) ModifyScore(delta int) {
	p.Score += delta
}

// PickUpItem records an inventory flag. Only the key, gun and mask are
// tracked; flags never revert. Returns true if the flag was newly set.
func (p *Player) PickUpItem(kind entities.ItemKind) bool {
	switch kind {
	case entities.ItemKey, entities.ItemGun, entities.ItemMask:
	default:
		return false
	}
	if p.OwnedItems.Has(kind) {
		return false
	}
	p.OwnedItems.Put(kind)
	return true
}

// HasItem checks if the player owns a specific item
func (p *Player) HasItem(kind entities.ItemKind) bool {
	return p.OwnedItems.Has(kind)
}

// HasKey reports whether the key has been collected
func (p *Player) HasKey() bool { return p.HasItem(entities.ItemKey) }

// HasGun reports whether the gun has been collected
func (p *Player) HasGun() bool { return p.HasItem(entities.ItemGun) }

// HasMask reports whether the mask has been collected
func (p *Player) HasMask() bool { return p.HasItem(entities.ItemMask) }

// Win marks the game as won
func (p *Player) Win() {
	p.Won = true
}

// Inventory returns the owned items in a stable order
func (p *Player) Inventory() []entities.ItemKind {
	var items []entities.ItemKind
	for _, k := range []entities.ItemKind{entities.ItemKey, entities.ItemGun, entities.ItemMask} {
		if p.HasItem(k) {
			items = append(items, k)
		}
	}
	return items
}

// AddMessage adds a message to the event log
func (p *Player) AddMessage(msg string) {
	p.Messages = append(p.Messages, msg)

	// Keep only the last maxMessages
	if len(p.Messages) > maxMessages {
		p.Messages = p.Messages[len(p.Messages)-maxMessages:]
	}
}
