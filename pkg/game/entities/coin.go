package entities

import (
	"crystalhunt/pkg/engine/world"
	"crystalhunt/pkg/game/audio"
)

const (
	// DefaultCoinValue is the score a coin awards unless the level overrides it
	DefaultCoinValue = 10
	// DefaultCoinRotationSpeed is the spin speed in degrees per second
	DefaultCoinRotationSpeed = 100
)

// Coin is a spinning collectible worth Value points
type Coin struct {
	Entity        *world.Entity
	Value         int
	RotationSpeed float32
	Angle         float32 // Spin about the coin's own axis, degrees
	Highlighted   bool
}

// NewCoin creates a coin with the default value and spin speed
func NewCoin(e *world.Entity) *Coin {
	return &Coin{
		Entity:        e,
		Value:         DefaultCoinValue,
		RotationSpeed: DefaultCoinRotationSpeed,
	}
}

// Kind returns ItemCoin
func (c *Coin) Kind() ItemKind {
	return ItemCoin
}

// Collect adds the coin's value to the actor's score and removes the coin
func (c *Coin) Collect(actor Collector, fx Effects) {
	if !c.Entity.Alive() {
		return
	}
	actor.ModifyScore(c.Value)
	fx.PlaySoundAt(audio.SoundCoin, c.Entity.Position)
	fx.Destroy(c.Entity)
}

// Highlight swaps in the highlight material
func (c *Coin) Highlight(fx Effects) {
	c.Highlighted = true
	fx.SetHighlight(c.Entity, true)
}

// Unhighlight restores the original material
func (c *Coin) Unhighlight(fx Effects) {
	c.Highlighted = false
	fx.SetHighlight(c.Entity, false)
}

// Spin advances the coin's rotation by dt seconds
func (c *Coin) Spin(dt float32) {
	c.Angle = world.NormalizeYaw(c.Angle + c.RotationSpeed*dt)
}
