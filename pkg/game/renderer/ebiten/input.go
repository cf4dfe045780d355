package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "crystalhunt/pkg/engine/input"
	"crystalhunt/pkg/game/gameplay"
)

// keyCodes maps Ebiten keys onto the codes the bindings table uses.
// Every letter is listed so any of them can be bound.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyA:          "a",
	ebiten.KeyB:          "b",
	ebiten.KeyC:          "c",
	ebiten.KeyD:          "d",
	ebiten.KeyE:          "e",
	ebiten.KeyF:          "f",
	ebiten.KeyG:          "g",
	ebiten.KeyH:          "h",
	ebiten.KeyI:          "i",
	ebiten.KeyJ:          "j",
	ebiten.KeyK:          "k",
	ebiten.KeyL:          "l",
	ebiten.KeyM:          "m",
	ebiten.KeyN:          "n",
	ebiten.KeyO:          "o",
	ebiten.KeyP:          "p",
	ebiten.KeyQ:          "q",
	ebiten.KeyR:          "r",
	ebiten.KeyS:          "s",
	ebiten.KeyT:          "t",
	ebiten.KeyU:          "u",
	ebiten.KeyV:          "v",
	ebiten.KeyW:          "w",
	ebiten.KeyX:          "x",
	ebiten.KeyY:          "y",
	ebiten.KeyZ:          "z",
	ebiten.KeyF5:         "f5",
	ebiten.KeySpace:      "space",
	ebiten.KeyEnter:      "enter",
	ebiten.KeyEscape:     "escape",
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
}

// keyState folds the held keys into commands. Interact and the meta actions
// fire once per press; movement, look and shoot apply while held.
type keyState struct {
	interact gameplay.EdgeTrigger
	reset    gameplay.EdgeTrigger
	mute     gameplay.EdgeTrigger
	quit     gameplay.EdgeTrigger
}

// pressedCodes returns the binding codes of every key currently down
func pressedCodes() []string {
	var codes []string
	for _, k := range inpututil.AppendPressedKeys(nil) {
		if code, ok := keyCodes[k]; ok {
			codes = append(codes, code)
		}
	}
	return codes
}

func (k *keyState) commands(codes []string) gameplay.Commands {
	var c gameplay.Commands
	var interact, reset, mute, quit bool
	for _, code := range codes {
		raw := engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code}
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
		switch intent.Action {
		case engineinput.ActionInteract:
			interact = true
		case engineinput.ActionResetLevel:
			reset = true
		case engineinput.ActionToggleMute:
			mute = true
		case engineinput.ActionQuit:
			quit = true
		default:
			gameplay.ProcessIntent(&c, intent)
		}
	}
	c.Interact = k.interact.Update(interact)
	c.ResetLevel = k.reset.Update(reset)
	c.ToggleMute = k.mute.Update(mute)
	c.Quit = k.quit.Update(quit)
	return c
}
