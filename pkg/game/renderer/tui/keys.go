package tui

import (
	"time"

	"crystalhunt/pkg/engine/input"
	"crystalhunt/pkg/game/gameplay"
)

// holdWindow is how long one key press keeps a held action active.
// Terminals report presses, not releases, so auto-repeat refreshes it.
const holdWindow = 250 * time.Millisecond

// heldKeys turns terminal key presses into per-step commands
type heldKeys struct {
	until   map[input.Action]time.Time
	pending []input.Action
}

func newHeldKeys() *heldKeys {
	return &heldKeys{until: make(map[input.Action]time.Time)}
}

// press records an action. Interact and the meta actions fire once;
// everything else stays held for holdWindow.
func (h *heldKeys) press(a input.Action, now time.Time) {
	switch a {
	case input.ActionNone:
		return
	case input.ActionInteract, input.ActionResetLevel, input.ActionToggleMute, input.ActionQuit:
		h.pending = append(h.pending, a)
	default:
		h.until[a] = now.Add(holdWindow)
	}
}

// commands returns the input for one step and consumes the one-shot actions
func (h *heldKeys) commands(now time.Time) gameplay.Commands {
	var c gameplay.Commands
	for a, until := range h.until {
		if now.After(until) {
			delete(h.until, a)
			continue
		}
		gameplay.ProcessIntent(&c, input.Intent{Action: a})
	}
	for _, a := range h.pending {
		gameplay.ProcessIntent(&c, input.Intent{Action: a})
	}
	h.pending = h.pending[:0]
	return c
}
