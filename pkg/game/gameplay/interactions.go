package gameplay

import (
	"log"

	"crystalhunt/pkg/engine/world"
	"crystalhunt/pkg/game/entities"
	"crystalhunt/pkg/game/renderer"
)

// Resolve runs one resolution step: it probes along the view and records at
// most one candidate with its advisory message. The result replaces the
// previous step's candidate and is what the next Interact acts on.
func (p *Player) Resolve(v View) Target {
	p.setText(renderer.SlotInteraction, "")
	if p.highlighted != nil {
		p.highlighted.Unhighlight(p.fx)
	}
	p.target = Target{}

	if p.Respawning() || p.probe == nil {
		return p.target
	}

	hit, ok := p.probe.Raycast(v.Origin, v.Direction, p.cfg.InteractionDistance)
	if !ok {
		return p.target
	}
	e := hit.Entity

	if e.CompareTag(world.TagGas) && !p.state.HasMask() {
		p.showHint(MsgMaskRequired)
	}

	t := targetFor(e)
	if t.Kind == TargetCoin {
		coin := t.Coin()
		coin.Highlight(p.fx)
		p.highlighted = coin
	}
	if t.Message != "" {
		p.setText(renderer.SlotInteraction, t.Message)
	}
	p.target = t
	return t
}

// Interact performs the single effect the current candidate allows.
// Returns true if the world changed; gating failures only show a hint.
func (p *Player) Interact() bool {
	t := p.target
	if p.Respawning() || !t.Valid() {
		return false
	}
	if t.Kind == TargetDoor {
		return p.operateDoor(t.Door())
	}
	return p.collect(t)
}

// collect is the one collection path shared by interact and walk-over pickup
func (p *Player) collect(t Target) bool {
	if !t.Kind.IsCollectible() || !t.Valid() {
		return false
	}
	item := t.Collectible()
	item.Collect(p, p.fx)
	p.forget(t.Entity)

	kind := item.Kind()
	if p.state.PickUpItem(kind) {
		p.logMessage(MsgPickedUp, kind)
	}
	switch kind {
	case entities.ItemGun:
		p.showHint(MsgGunCollected)
	case entities.ItemMask:
		p.showHint(MsgMaskGained)
	}
	return true
}

// forget drops every reference the player holds to a destroyed entity
func (p *Player) forget(e *world.Entity) {
	if p.target.Entity == e {
		p.target = Target{}
		p.setText(renderer.SlotInteraction, "")
	}
	if p.highlighted != nil && p.highlighted.Entity == e {
		p.highlighted = nil
	}
}

// operateDoor checks the door's gating and toggles it if the check passes
func (p *Player) operateDoor(door *entities.Door) bool {
	log.Printf("Door %q requires %d points; you have %d", door.DoorName(), door.RequiredScore, p.state.Score)

	switch door.Gating() {
	case entities.GateScore:
		if p.state.Score < door.RequiredScore {
			p.showHint(MsgNeedScore, door.RequiredScore)
			return false
		}
	case entities.GateKey:
		if !p.state.HasKey() {
			p.showHint(MsgNeedKey)
			return false
		}
	}

	door.Toggle()
	return true
}

// Shoot fires a projectile along the view if the gun has been collected.
// Holding the trigger fires at most once per cooldown.
func (p *Player) Shoot(v View) bool {
	if !p.state.HasGun() || p.Respawning() || p.fx == nil {
		return false
	}
	now := p.sched.Now()
	if p.hasShot && now-p.lastShot < p.cfg.ShootCooldown {
		return false
	}
	shot := p.fx.Spawn(entities.PrefabProjectile, v.Origin, v.Yaw)
	if shot == nil {
		return false
	}
	if p.launcher != nil {
		p.launcher.Launch(shot, v.Direction.Normalize().Mul(p.cfg.ShootSpeed), true)
	}
	p.lastShot = now
	p.hasShot = true
	return true
}
