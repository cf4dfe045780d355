// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"crystalhunt/pkg/engine/world"
	"crystalhunt/pkg/game/renderer"
	"crystalhunt/pkg/game/sim"
	gameworld "crystalhunt/pkg/game/world"
)

// mapMargin is the empty border, in cells, around the dumped layout
const mapMargin = 1

// DumpMapToFile writes DumpMap's output to path and returns its absolute path
func DumpMapToFile(s *sim.Sim, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpMap(f, s); err != nil {
		return "", err
	}
	return absPath, f.Close()
}

// DumpMap writes a debug dump of the session: metadata, legend, the whole
// level as a top-down map and every live entity with its state.
func DumpMap(w io.Writer, s *sim.Sim) error {
	if s.World().Len() == 0 {
		return fmt.Errorf("no entities")
	}

	body := s.Body()
	st := s.Player().State()
	lo, hi := bounds(s.World(), body.Position())
	rows := int(hi.Z()-lo.Z()) + 1 + 2*mapMargin
	cols := int(hi.X()-lo.X()) + 1 + 2*mapMargin

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (level layout, entities) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "time: %s\n", s.Now())
	fmt.Fprintf(w, "coordinate_system: x right, z up, 1 unit per cell\n")
	fmt.Fprintf(w, "player_position: %s\n", vec(body.Position()))
	fmt.Fprintf(w, "player_yaw: %.0f (%s)\n", body.Yaw(), world.Heading(body.Yaw()))
	fmt.Fprintf(w, "respawning: %v\n", s.Player().Respawning())
	fmt.Fprintf(w, "score: %d\n", st.Score)
	fmt.Fprintf(w, "inventory: %v\n", st.Inventory())
	fmt.Fprintf(w, "won: %v\n", st.Won)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend ---")
	for m := renderer.MarkRoomStart; m <= renderer.MarkPlayer; m++ {
		fmt.Fprintf(w, "%c = %s  ", m.Glyph(), markNames[m])
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	center := lo.Add(hi).Mul(0.5)
	m := renderer.Minimap{Rows: rows, Cols: cols, Scale: 1}
	grid := m.Project(s.World(), center, s.Highlighted)
	if r, c, ok := m.Cell(center, body.Position()); ok {
		grid[r][c] = renderer.MarkPlayer
	}
	for _, row := range grid {
		for _, mark := range row {
			fmt.Fprintf(w, "%c", mark.Glyph())
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "")

	// --- Entities ---
	fmt.Fprintln(w, "--- Entities ---")
	s.World().Each(func(e *world.Entity) {
		fmt.Fprintf(w, "  name: %q tag: %q position: %s solid: %v trigger: %v%s\n",
			e.Name, e.Tag, vec(e.Position), e.Solid, e.Trigger, state(e))
	})
	return nil
}

var markNames = map[renderer.Mark]string{
	renderer.MarkRoomStart:  "room 2 start",
	renderer.MarkWater:      "water",
	renderer.MarkGas:        "gas",
	renderer.MarkDoorOpen:   "open door",
	renderer.MarkWall:       "wall",
	renderer.MarkDoorClosed: "closed door",
	renderer.MarkCoin:       "coin",
	renderer.MarkCoinLit:    "highlighted coin",
	renderer.MarkKey:        "key",
	renderer.MarkGun:        "gun",
	renderer.MarkMask:       "mask",
	renderer.MarkCrystal:    "crystal",
	renderer.MarkMonster:    "monster",
	renderer.MarkProjectile: "projectile",
	renderer.MarkPlayer:     "player",
}

// state describes an entity's game behaviour, if any
func state(e *world.Entity) string {
	data := gameworld.GetGameData(e)
	switch {
	case data.Door != nil:
		return fmt.Sprintf(" door_open: %v required_score: %d closed_yaw: %.0f",
			data.Door.IsOpen(), data.Door.RequiredScore, data.Door.ClosedYaw())
	case data.Coin != nil:
		return fmt.Sprintf(" coin_value: %d", data.Coin.Value)
	case data.Monster != nil:
		return " monster: true"
	}
	if c, ok := gameworld.Collectible(e); ok {
		return fmt.Sprintf(" item: %s", c.Kind())
	}
	return ""
}

// bounds returns the ground-plane extent of every entity and the player
func bounds(w *world.World, player mgl32.Vec3) (lo, hi mgl32.Vec3) {
	lo, hi = player, player
	w.Each(func(e *world.Entity) {
		b := e.Bounds()
		for _, i := range []int{0, 2} {
			lo[i] = min(lo[i], b.Min[i])
			hi[i] = max(hi[i], b.Max[i])
		}
	})
	return lo, hi
}

func vec(v mgl32.Vec3) string {
	return fmt.Sprintf("%.1f,%.1f,%.1f", v.X(), v.Y(), v.Z())
}
