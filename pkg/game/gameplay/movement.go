package gameplay

import (
	"log"

	"crystalhunt/pkg/game/audio"
	"crystalhunt/pkg/game/entities"
)

// die enters the Respawning phase: movement stays suspended until the
// respawn delay has elapsed and the body has been moved to the checkpoint.
func (p *Player) die(hazard entities.HazardType) {
	if p.Respawning() {
		return
	}
	log.Printf("Killed by %s", hazard)
	p.phase = PhaseRespawning
	p.target = Target{}

	if p.mover != nil {
		p.mover.SetMovementEnabled(false)
		if p.fx != nil {
			p.fx.PlaySoundAt(audio.SoundDeath, p.mover.Position())
		}
	}
	p.hints.Show(msg(MsgDied), p.cfg.HintDuration)
	p.logMessage(MsgDied)

	p.respawn = p.sched.After(p.cfg.RespawnDelay, func() {
		p.finishRespawn(hazard)
	})
}

// finishRespawn teleports to the hazard's checkpoint and restores control
func (p *Player) finishRespawn(hazard entities.HazardType) {
	p.respawn = nil
	name := entities.HazardTypes[hazard].Checkpoint
	if p.mover != nil {
		if pos, ok := p.cfg.Checkpoints[name]; ok {
			p.mover.Teleport(pos)
		} else {
			log.Printf("No checkpoint %q configured, respawning in place", name)
		}
		p.mover.SetMovementEnabled(true)
	}
	p.phase = PhaseActive
}

// CancelRespawn abandons an in-flight respawn and restores control in place.
// Used when the level is rebuilt.
func (p *Player) CancelRespawn() {
	if p.respawn == nil {
		return
	}
	p.respawn.Stop()
	p.respawn = nil
	p.phase = PhaseActive
	if p.mover != nil {
		p.mover.SetMovementEnabled(true)
	}
}
