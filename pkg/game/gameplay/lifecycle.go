package gameplay

import (
	"log"

	"crystalhunt/pkg/engine/world"
	"crystalhunt/pkg/game/entities"
	"crystalhunt/pkg/game/renderer"
)

// Start shows the initial score and the introductory hint
func (p *Player) Start() {
	p.setText(renderer.SlotScore, msg(MsgScore, p.state.Score))
	p.setText(renderer.SlotInteraction, "")
	p.hints.Show(msg(MsgIntro), p.cfg.IntroDuration)
}

// OnZoneEnter handles the body starting to overlap a trigger or solid
func (p *Player) OnZoneEnter(e *world.Entity) {
	if !e.Alive() {
		return
	}
	log.Printf("Entered %s", e.Name)

	if p.Respawning() {
		return
	}

	if hazard, ok := entities.HazardForTag(e.Tag); ok {
		if hazard.IsFatal(p.state.HasMask()) {
			p.die(hazard)
		}
		return
	}

	switch {
	case e.CompareTag(world.TagRoom2Start):
		p.showHint(MsgWaterWarning)
	case e.CompareTag(world.TagCollectable):
		p.collect(targetFor(e))
	}
}

// OnZoneExit handles the body leaving an overlapped trigger or solid
func (p *Player) OnZoneExit(e *world.Entity) {
	if p.highlighted != nil && p.highlighted.Entity == e {
		p.highlighted.Unhighlight(p.fx)
		p.highlighted = nil
	}
}
