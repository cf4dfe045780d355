package renderer

import (
	"strings"

	"github.com/leonelquinteros/gotext"

	"crystalhunt/pkg/engine/input"
)

var arrowLabels = map[string]string{
	"arrow_up":    "↑",
	"arrow_down":  "↓",
	"arrow_left":  "←",
	"arrow_right": "→",
}

// ControlsHelp returns the one-line key summary for the current bindings
func ControlsHelp() string {
	bound := input.GetBindingsByAction()
	label := func(actions ...input.Action) string {
		var b strings.Builder
		for _, a := range actions {
			b.WriteString(keyLabel(bound[a]))
		}
		return b.String()
	}

	return gotext.Get("%s move, %s look, %s interact, %s shoot, %s reset, %s mute, %s quit",
		label(input.ActionMoveForward, input.ActionStrafeLeft, input.ActionMoveBack, input.ActionStrafeRight),
		label(input.ActionLookUp, input.ActionTurnLeft, input.ActionLookDown, input.ActionTurnRight),
		label(input.ActionInteract),
		label(input.ActionShoot),
		label(input.ActionResetLevel),
		label(input.ActionToggleMute),
		label(input.ActionQuit),
	)
}

// keyLabel picks the code to show for an action: an arrow, else a single
// character, else the first code. Unbound actions show "-".
func keyLabel(codes []string) string {
	if len(codes) == 0 {
		return "-"
	}
	for _, c := range codes {
		if l, ok := arrowLabels[c]; ok {
			return l
		}
	}
	for _, c := range codes {
		if len([]rune(c)) == 1 {
			return strings.ToUpper(c)
		}
	}
	return strings.ToUpper(codes[0])
}
