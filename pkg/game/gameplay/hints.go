package gameplay

import (
	"github.com/leonelquinteros/gotext"
)

// Player-facing messages. The English text is the gettext msgid.
const (
	MsgIntro = "Use WASD to move and mouse to look around\n" +
		"Collect coins to increase your score\n" +
		"Find the crystal to win the game"
	MsgScore        = "Score: %d"
	MsgOpenDoor     = "Press 'E' to open the door"
	MsgNeedScore    = "You need %d scores to open the door"
	MsgNeedKey      = "You need a key to open this door."
	MsgGunCollected = "Press 'F' to shoot the monster"
	MsgMaskGained   = "You can now go through the toxic gas area"
	MsgMaskRequired = "Dangerous! You need a mask to go through the toxic gas area"
	MsgWaterWarning = "Be careful, if you fall into the water, you'll die"
	MsgDied         = "You died"
	MsgWin          = "You win!"
	MsgPickedUp     = "Picked up the %s"
)

// dynamicGet is used for translation lookups of msgids held in variables.
// We use a function variable to avoid go vet's non-constant format string check.
var dynamicGet = gotext.Get

func msg(id string, args ...any) string {
	return dynamicGet(id, args...)
}

// showHint displays a situational hint for the configured hint duration
func (p *Player) showHint(id string, args ...any) {
	p.hints.Show(msg(id, args...), p.cfg.HintDuration)
}

// logMessage adds a formatted line to the HUD event log
func (p *Player) logMessage(id string, args ...any) {
	p.state.AddMessage(msg(id, args...))
}
