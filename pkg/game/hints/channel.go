// Package hints implements the single-slot hint/status channel.
//
// Last write wins. Every write cancels the clear scheduled by the previous
// timed message, so a new message is never erased early by an older timer.
package hints

import (
	"time"

	"crystalhunt/pkg/engine/clock"
	"crystalhunt/pkg/game/renderer"
)

// Channel owns the hint text slot of a display
type Channel struct {
	sched   *clock.Scheduler
	display renderer.Display

	text    string
	gen     uint64
	pending *clock.Timer
}

// New creates a channel writing to the hint slot of display
func New(sched *clock.Scheduler, display renderer.Display) *Channel {
	return &Channel{sched: sched, display: display}
}

// Show displays msg and clears it after d.
// A non-positive d shows the message until it is replaced.
func (c *Channel) Show(msg string, d time.Duration) {
	gen := c.replace(msg)
	if d <= 0 {
		return
	}
	c.pending = c.sched.After(d, func() {
		if c.gen != gen {
			return
		}
		c.pending = nil
		c.set("")
	})
}

// ShowPersistent displays msg with no scheduled clear
func (c *Channel) ShowPersistent(msg string) {
	c.replace(msg)
}

// Clear empties the slot and cancels any pending clear
func (c *Channel) Clear() {
	c.replace("")
}

// Text returns the message currently shown
func (c *Channel) Text() string {
	return c.text
}

// Pending reports whether a timed clear is outstanding
func (c *Channel) Pending() bool {
	return c.pending != nil
}

func (c *Channel) replace(msg string) uint64 {
	c.gen++
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.set(msg)
	return c.gen
}

func (c *Channel) set(msg string) {
	c.text = msg
	if c.display != nil {
		c.display.SetText(renderer.SlotHint, msg)
	}
}
