package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveForward
	ActionMoveBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionTurnLeft
	ActionTurnRight
	ActionLookUp
	ActionLookDown

	// Gameplay
	ActionInteract // Edge-triggered: one dispatch per press
	ActionShoot    // Level-triggered: fires while held

	// Meta / UI
	ActionResetLevel
	ActionToggleMute
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "ctrl_c").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Terminal key events arrive one per press (or per auto-repeat), Ebiten edge
// detection is done by inpututil, so this stays a thin layer.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// reserved codes can never be rebound
var reserved = map[string]bool{
	"e":      true,
	"ctrl_c": true,
}

// defaultBindings is the initial code → action table
func defaultBindings() map[string]Action {
	return map[string]Action{
		// Movement (WASD)
		"w": ActionMoveForward,
		"s": ActionMoveBack,
		"a": ActionStrafeLeft,
		"d": ActionStrafeRight,

		// Looking
		"arrow_left":  ActionTurnLeft,
		"arrow_right": ActionTurnRight,
		"arrow_up":    ActionLookUp,
		"arrow_down":  ActionLookDown,
		"j":           ActionTurnLeft,
		"l":           ActionTurnRight,
		"i":           ActionLookUp,
		"k":           ActionLookDown,

		// Gameplay
		"e":     ActionInteract,
		"enter": ActionInteract,
		"f":     ActionShoot,
		"space": ActionShoot,

		// Meta
		"f5":     ActionResetLevel,
		"m":      ActionToggleMute,
		"q":      ActionQuit,
		"escape": ActionQuit,
		"ctrl_c": ActionQuit,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = defaultBindings()

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveForward:
		return "Move Forward"
	case ActionMoveBack:
		return "Move Back"
	case ActionStrafeLeft:
		return "Strafe Left"
	case ActionStrafeRight:
		return "Strafe Right"
	case ActionTurnLeft:
		return "Turn Left"
	case ActionTurnRight:
		return "Turn Right"
	case ActionLookUp:
		return "Look Up"
	case ActionLookDown:
		return "Look Down"
	case ActionInteract:
		return "Interact"
	case ActionShoot:
		return "Shoot"
	case ActionResetLevel:
		return "Reset Level"
	case ActionToggleMute:
		return "Toggle Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// Actions lists every bindable action in help-line order
func Actions() []Action {
	actions := make([]Action, 0, ActionQuit)
	for a := ActionMoveForward; a <= ActionQuit; a++ {
		actions = append(actions, a)
	}
	return actions
}

// ActionKey returns the identifier used for an action in settings, e.g. "move_forward"
func ActionKey(a Action) string {
	return strings.ReplaceAll(strings.ToLower(ActionName(a)), " ", "_")
}

// ParseAction returns the action whose ActionKey is key
func ParseAction(key string) (Action, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, a := range Actions() {
		if ActionKey(a) == key {
			return a, true
		}
	}
	return ActionNone, false
}

// IsReserved reports whether code is fixed to its default action
func IsReserved(code string) bool {
	return reserved[code]
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so the help line doesn't flicker
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Reserved codes keep their binding and cannot be taken by another action.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}

// ResetBindings restores the default bindings
func ResetBindings() {
	bindings = defaultBindings()
}
