package gameplay

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"crystalhunt/pkg/engine/world"
	"crystalhunt/pkg/game/entities"
	"crystalhunt/pkg/game/renderer"
	gameworld "crystalhunt/pkg/game/world"
)

func TestCoins_ScoreIsSumOfCollectedValues(t *testing.T) {
	h := newHarness(t)
	values := []int{10, 5, 25}
	for i, v := range values {
		h.spawnCoin(mgl32.Vec3{0, 0, float32(i + 1)}, v)
	}

	for range values {
		if got := h.step(true); got.Kind != TargetCoin {
			t.Fatalf("step target = %v, want Coin", got.Kind)
		}
	}
	if got := h.p.State().Score; got != 40 {
		t.Errorf("Score = %d, want 40", got)
	}
	if got := h.texts.Text(renderer.SlotScore); got != "Score: 40" {
		t.Errorf("score text = %q, want %q", got, "Score: 40")
	}
}

func TestCoin_CannotBeCollectedTwice(t *testing.T) {
	h := newHarness(t)
	coin := h.spawnCoin(ahead, 10)

	h.step(true)
	if coin.Entity.Alive() {
		t.Fatal("coin alive after interact")
	}
	for i := 0; i < 3; i++ {
		if got := h.step(true); got.Kind != TargetNone {
			t.Errorf("step %d after collection: target = %v, want None", i, got.Kind)
		}
	}
	if got := h.p.State().Score; got != 10 {
		t.Errorf("Score = %d, want 10", got)
	}
}

func TestCoin_AutoCollectClearsCandidate(t *testing.T) {
	h := newHarness(t)
	coin := h.spawnCoin(ahead, 10)

	if got := h.p.Resolve(look); got.Kind != TargetCoin {
		t.Fatalf("Resolve = %v, want Coin", got.Kind)
	}
	h.p.OnZoneEnter(coin.Entity)

	if h.p.Interact() {
		t.Error("Interact() acted on a coin already collected by walking over it")
	}
	if got := h.p.State().Score; got != 10 {
		t.Errorf("Score = %d, want 10", got)
	}
	if h.p.Target().Kind != TargetNone {
		t.Errorf("Target() = %v after collection, want None", h.p.Target().Kind)
	}
}

func TestCoin_HighlightFollowsProbe(t *testing.T) {
	h := newHarness(t)
	coin := h.spawnCoin(ahead, 10)

	h.p.Resolve(look)
	if !coin.Highlighted {
		t.Fatal("coin not highlighted while aimed at")
	}
	h.p.Resolve(View{Direction: mgl32.Vec3{1, 0, 0}})
	if coin.Highlighted {
		t.Error("coin still highlighted after looking away")
	}

	h.p.Resolve(look)
	h.p.OnZoneExit(coin.Entity)
	if coin.Highlighted || h.fx.highlight[coin.Entity] {
		t.Error("coin still highlighted after trigger exit")
	}
}

func TestDoor_ScoreGated(t *testing.T) {
	h := newHarness(t)
	door := h.spawnDoor(50, ahead)
	h.p.State().PickUpItem(entities.ItemKey) // key is irrelevant to a score-gated door

	for score := 0; score < 50; score += 10 {
		if got := h.step(true); got.Kind != TargetDoor {
			t.Fatalf("target = %v, want Door", got.Kind)
		}
		if door.IsOpen() {
			t.Fatalf("door opened at score %d", score)
		}
		h.p.ModifyScore(10)
	}
	if got := h.hint(); got != "You need 50 scores to open the door" {
		t.Errorf("hint = %q, want the shortfall message", got)
	}

	h.step(true)
	if !door.IsOpen() {
		t.Error("door closed after interact at score 50")
	}
}

func TestDoor_KeyGated(t *testing.T) {
	h := newHarness(t)
	door := h.spawnDoor(0, ahead)
	h.p.ModifyScore(1000) // score is irrelevant to a key-gated door

	for i := 0; i < 3; i++ {
		h.step(true)
		if door.IsOpen() {
			t.Fatalf("door opened without the key on attempt %d", i)
		}
	}
	if got := h.hint(); got != "You need a key to open this door." {
		t.Errorf("hint = %q, want the key message", got)
	}

	h.p.State().PickUpItem(entities.ItemKey)
	h.step(true)
	if !door.IsOpen() {
		t.Error("door closed after interact with the key")
	}
	h.step(true)
	if door.IsOpen() {
		t.Error("second interact did not close the door again")
	}
}

func TestDoor_Message(t *testing.T) {
	h := newHarness(t)
	h.spawnDoor(0, ahead)
	h.p.Resolve(look)
	if got := h.texts.Text(renderer.SlotInteraction); got != MsgOpenDoor {
		t.Errorf("interaction text = %q, want %q", got, MsgOpenDoor)
	}
	h.p.Resolve(View{Direction: mgl32.Vec3{0, 1, 0}})
	if got := h.texts.Text(renderer.SlotInteraction); got != "" {
		t.Errorf("interaction text after looking away = %q, want empty", got)
	}
}

func TestResolve_CoinBeatsKeyOnSameEntity(t *testing.T) {
	h := newHarness(t)
	coin := h.spawnCoin(ahead, 10)
	gameworld.AttachItem(coin.Entity, entities.NewItem(entities.ItemKey, coin.Entity))

	got := h.p.Resolve(look)
	if got.Kind != TargetCoin || got.Entity != coin.Entity {
		t.Fatalf("Resolve = %v, want the coin", got.Kind)
	}
	if msg := h.texts.Text(renderer.SlotInteraction); msg != "" {
		t.Errorf("interaction text = %q, want none (the key prompt must not show)", msg)
	}

	h.p.Interact()
	if h.p.State().Score != 10 || h.p.State().HasKey() {
		t.Errorf("after interact: score=%d hasKey=%v, want 10 false", h.p.State().Score, h.p.State().HasKey())
	}
}

func TestInteract_NoCandidateIsNoOp(t *testing.T) {
	h := newHarness(t)
	h.spawnCoin(mgl32.Vec3{10, 0, 0}, 10) // off to the side

	h.p.Resolve(look)
	if h.p.Interact() {
		t.Error("Interact() = true with no candidate")
	}
	if h.p.State().Score != 0 || len(h.p.State().Messages) != 0 {
		t.Error("state changed by an empty interact")
	}
	if h.fx.calls() != 0 {
		t.Errorf("%d effects invoked by an empty interact, want 0", h.fx.calls())
	}
	if h.hint() != "" {
		t.Errorf("hint = %q, want empty", h.hint())
	}
}

func TestResolve_Idempotent(t *testing.T) {
	tests := []struct {
		name  string
		setup func(h *harness)
		want  TargetKind
	}{
		{"nothing", func(h *harness) {}, TargetNone},
		{"coin", func(h *harness) { h.spawnCoin(ahead, 10) }, TargetCoin},
		{"mask", func(h *harness) { h.spawnItem(entities.ItemMask, ahead) }, TargetMask},
		{"door", func(h *harness) { h.spawnDoor(50, ahead) }, TargetDoor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			tt.setup(h)
			first := h.p.Resolve(look)
			second := h.p.Resolve(look)
			if first != second || first.Kind != tt.want {
				t.Errorf("Resolve twice = %v then %v, want %v both times", first.Kind, second.Kind, tt.want)
			}
		})
	}
}

func TestItems_SetFlagsAndHints(t *testing.T) {
	tests := []struct {
		kind     entities.ItemKind
		has      func(h *harness) bool
		wantHint string
	}{
		{entities.ItemKey, func(h *harness) bool { return h.p.State().HasKey() }, ""},
		{entities.ItemGun, func(h *harness) bool { return h.p.State().HasGun() }, MsgGunCollected},
		{entities.ItemMask, func(h *harness) bool { return h.p.State().HasMask() }, MsgMaskGained},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			h := newHarness(t)
			e := h.spawnItem(tt.kind, ahead)

			target := h.p.Resolve(look)
			want := "Press 'E' to collect the " + map[entities.ItemKind]string{
				entities.ItemKey: "key", entities.ItemGun: "gun", entities.ItemMask: "mask",
			}[tt.kind]
			if got := h.texts.Text(renderer.SlotInteraction); got != want || target.Message != want {
				t.Errorf("prompt = %q, want %q", got, want)
			}

			h.p.Interact()
			if !tt.has(h) {
				t.Errorf("flag for %s not set", tt.kind)
			}
			if e.Alive() {
				t.Error("item not destroyed")
			}
			if got := h.hint(); got != tt.wantHint {
				t.Errorf("hint = %q, want %q", got, tt.wantHint)
			}
		})
	}
}

func TestItems_AutoCollectMatchesInteract(t *testing.T) {
	h := newHarness(t)
	key := h.spawnItem(entities.ItemKey, mgl32.Vec3{0, 0, -3})
	door := h.spawnDoor(0, ahead)

	h.p.OnZoneEnter(key)
	if !h.p.State().HasKey() || key.Alive() {
		t.Fatal("walking over the key did not collect it")
	}
	h.step(true)
	if !door.IsOpen() {
		t.Error("key-gated door stayed closed after walk-over pickup")
	}
}

func TestCrystal_WinIsPersistentAndKeepsControl(t *testing.T) {
	h := newHarness(t)
	h.spawnItem(entities.ItemCrystal, ahead)

	h.step(true)
	if !h.p.State().Won {
		t.Fatal("Won = false after collecting the crystal")
	}
	h.advance(time.Minute)
	if got := h.hint(); got != MsgWin {
		t.Errorf("hint a minute later = %q, want %q", got, MsgWin)
	}
	if len(h.mover.toggles) != 0 {
		t.Errorf("movement toggled %v after winning, want untouched", h.mover.toggles)
	}
}

func TestResolve_GasWithoutMaskHints(t *testing.T) {
	h := newHarness(t)
	h.spawn("gas", world.TagGas, ahead)

	if got := h.p.Resolve(look); got.Kind != TargetNone {
		t.Errorf("Resolve(gas) = %v, want None", got.Kind)
	}
	if got := h.hint(); got != MsgMaskRequired {
		t.Errorf("hint = %q, want %q", got, MsgMaskRequired)
	}

	h.advance(3 * time.Second)
	h.p.State().PickUpItem(entities.ItemMask)
	h.p.Resolve(look)
	if got := h.hint(); got != "" {
		t.Errorf("hint with mask = %q, want empty", got)
	}
}

func TestResolve_CollectableWithoutBehaviour(t *testing.T) {
	h := newHarness(t)
	h.spawn("junk", world.TagCollectable, ahead)

	if got := h.p.Resolve(look); got.Kind != TargetNone || got.Message != "" {
		t.Errorf("Resolve(bare collectable) = %+v, want no candidate", got)
	}
}

func TestShoot(t *testing.T) {
	h := newHarness(t)
	if h.p.Shoot(look) {
		t.Fatal("Shoot() without the gun = true")
	}

	h.p.State().PickUpItem(entities.ItemGun)
	if !h.p.Shoot(look) {
		t.Fatal("Shoot() with the gun = false")
	}
	if len(h.launcher.velocities) != 1 || h.launcher.velocities[0] != (mgl32.Vec3{0, 0, 20}) {
		t.Errorf("launch velocities = %v, want [(0,0,20)]", h.launcher.velocities)
	}
	if h.p.Shoot(look) {
		t.Error("Shoot() inside the cooldown = true")
	}
	h.advance(250 * time.Millisecond)
	if !h.p.Shoot(look) {
		t.Error("Shoot() after the cooldown = false")
	}
}

func TestClassify(t *testing.T) {
	h := newHarness(t)
	tests := []struct {
		name string
		e    *world.Entity
		want TargetKind
	}{
		{"nil", nil, TargetNone},
		{"coin", h.spawnCoin(ahead, 1).Entity, TargetCoin},
		{"key", h.spawnItem(entities.ItemKey, ahead), TargetKey},
		{"gun", h.spawnItem(entities.ItemGun, ahead), TargetGun},
		{"mask", h.spawnItem(entities.ItemMask, ahead), TargetMask},
		{"crystal", h.spawnItem(entities.ItemCrystal, ahead), TargetCrystal},
		{"door", h.spawnDoor(0, ahead).Entity, TargetDoor},
		{"door tag without door", h.spawn("frame", world.TagDoor, ahead), TargetNone},
		{"wall", h.spawn("wall", world.TagWall, ahead), TargetNone},
		{"unspawned", world.NewEntity("ghost", world.TagCollectable, ahead, ahead), TargetNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.e); got != tt.want {
				t.Errorf("Classify(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
