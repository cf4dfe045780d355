// Package renderer defines the text sink the game logic writes to and the
// interface every frontend implements.
package renderer

import (
	"context"
)

// TextSlot identifies one of the on-screen text fields
type TextSlot int

const (
	SlotScore       TextSlot = iota // "Score: N"
	SlotInteraction                 // Advisory prompt for the current target
	SlotHint                        // Timed hint/status message
)

// String returns the slot name
func (s TextSlot) String() string {
	switch s {
	case SlotScore:
		return "score"
	case SlotInteraction:
		return "interaction"
	case SlotHint:
		return "hint"
	default:
		return "unknown"
	}
}

// Display is the set-displayed-text sink. Writes replace the slot's content.
type Display interface {
	SetText(slot TextSlot, text string)
}

// Texts is an in-memory Display frontends read from when drawing
type Texts struct {
	slots [3]string
}

// SetText replaces the text of a slot. Unknown slots are ignored.
func (t *Texts) SetText(slot TextSlot, text string) {
	if slot < 0 || int(slot) >= len(t.slots) {
		return
	}
	t.slots[slot] = text
}

// Text returns the current text of a slot
func (t *Texts) Text(slot TextSlot) string {
	if slot < 0 || int(slot) >= len(t.slots) {
		return ""
	}
	return t.slots[slot]
}

// Renderer defines the interface for game frontends.
// Implementations include the terminal (TUI) and Ebiten.
type Renderer interface {
	// Init prepares the frontend (colours, terminal mode, window, etc.)
	Init() error

	// Run drives the game loop until the player quits or ctx is cancelled
	Run(ctx context.Context) error

	// Close releases whatever Init acquired
	Close() error
}
