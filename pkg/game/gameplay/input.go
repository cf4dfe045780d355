package gameplay

import (
	engineinput "crystalhunt/pkg/engine/input"
)

// Commands is one simulation step's worth of player input.
// Axes are in [-1, 1]; Interact is already edge-triggered.
type Commands struct {
	Forward float32 // +1 forward, -1 back
	Strafe  float32 // +1 right, -1 left
	Turn    float32 // +1 right, -1 left
	Look    float32 // +1 down, -1 up

	Interact   bool
	Shoot      bool
	ResetLevel bool
	ToggleMute bool
	Quit       bool
}

// ProcessIntent folds a high-level intent from the tiered input system into c
func ProcessIntent(c *Commands, intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionNone:
		return
	case engineinput.ActionMoveForward:
		c.Forward = clampAxis(c.Forward + 1)
	case engineinput.ActionMoveBack:
		c.Forward = clampAxis(c.Forward - 1)
	case engineinput.ActionStrafeRight:
		c.Strafe = clampAxis(c.Strafe + 1)
	case engineinput.ActionStrafeLeft:
		c.Strafe = clampAxis(c.Strafe - 1)
	case engineinput.ActionTurnRight:
		c.Turn = clampAxis(c.Turn + 1)
	case engineinput.ActionTurnLeft:
		c.Turn = clampAxis(c.Turn - 1)
	case engineinput.ActionLookDown:
		c.Look = clampAxis(c.Look + 1)
	case engineinput.ActionLookUp:
		c.Look = clampAxis(c.Look - 1)
	case engineinput.ActionInteract:
		c.Interact = true
	case engineinput.ActionShoot:
		c.Shoot = true
	case engineinput.ActionResetLevel:
		c.ResetLevel = true
	case engineinput.ActionToggleMute:
		c.ToggleMute = true
	case engineinput.ActionQuit:
		c.Quit = true
	}
}

func clampAxis(v float32) float32 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}

// EdgeTrigger turns a held button into a single press per hold
type EdgeTrigger struct {
	held bool
}

// Update reports whether the button went down since the previous call
func (e *EdgeTrigger) Update(down bool) bool {
	pressed := down && !e.held
	e.held = down
	return pressed
}
