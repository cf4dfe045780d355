package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"crystalhunt/pkg/engine/world"
	gameworld "crystalhunt/pkg/game/world"
)

// Mark is what a minimap cell shows
type Mark int

// Marks in increasing draw priority
const (
	MarkEmpty Mark = iota
	MarkRoomStart
	MarkWater
	MarkGas
	MarkDoorOpen
	MarkWall
	MarkDoorClosed
	MarkCoin
	MarkCoinLit
	MarkKey
	MarkGun
	MarkMask
	MarkCrystal
	MarkMonster
	MarkProjectile
	MarkPlayer
)

// Glyph returns the single-character icon for a mark
func (m Mark) Glyph() rune {
	switch m {
	case MarkRoomStart:
		return ':'
	case MarkWater:
		return '~'
	case MarkGas:
		return '%'
	case MarkDoorOpen:
		return '/'
	case MarkWall:
		return '#'
	case MarkDoorClosed:
		return '+'
	case MarkCoin:
		return 'o'
	case MarkCoinLit:
		return 'O'
	case MarkKey:
		return 'k'
	case MarkGun:
		return 'g'
	case MarkMask:
		return 'm'
	case MarkCrystal:
		return '*'
	case MarkMonster:
		return 'M'
	case MarkProjectile:
		return '.'
	case MarkPlayer:
		return '@'
	default:
		return ' '
	}
}

// HeadingGlyph returns the arrow drawn for the player facing d
func HeadingGlyph(d world.Direction) rune {
	switch d {
	case world.East:
		return '>'
	case world.South:
		return 'v'
	case world.West:
		return '<'
	default:
		return '^'
	}
}

// Minimap projects the world onto a top-down grid centred on the player.
// North (+Z) is up and +X is right. Scale is world units per cell.
type Minimap struct {
	Cols  int
	Rows  int
	Scale float32
}

// MarkOf classifies an entity for the minimap
func MarkOf(e *world.Entity, highlighted bool) Mark {
	switch {
	case gameworld.HasCoin(e):
		if highlighted {
			return MarkCoinLit
		}
		return MarkCoin
	case gameworld.HasKey(e):
		return MarkKey
	case gameworld.HasGun(e):
		return MarkGun
	case gameworld.HasMask(e):
		return MarkMask
	case gameworld.HasCrystal(e):
		return MarkCrystal
	case gameworld.HasMonster(e):
		return MarkMonster
	case gameworld.HasOpenDoor(e):
		return MarkDoorOpen
	case gameworld.HasDoor(e):
		return MarkDoorClosed
	}
	switch e.Tag {
	case world.TagWall:
		return MarkWall
	case world.TagWater:
		return MarkWater
	case world.TagGas:
		return MarkGas
	case world.TagRoom2Start:
		return MarkRoomStart
	case world.TagProjectile:
		return MarkProjectile
	}
	return MarkEmpty
}

// Render returns Rows rows of Cols marks centred on the player.
// The centre cell is always MarkPlayer. highlighted may be nil.
func (m Minimap) Render(w *world.World, center mgl32.Vec3, highlighted func(*world.Entity) bool) [][]Mark {
	grid := m.Project(w, center, highlighted)
	if r, c, ok := m.Cell(center, center); ok {
		grid[r][c] = MarkPlayer
	}
	return grid
}

// Project draws every entity onto a grid centred on center. Where entities
// share a cell the higher mark wins.
func (m Minimap) Project(w *world.World, center mgl32.Vec3, highlighted func(*world.Entity) bool) [][]Mark {
	grid := make([][]Mark, m.Rows)
	for r := range grid {
		grid[r] = make([]Mark, m.Cols)
	}
	if m.Rows == 0 || m.Cols == 0 || m.Scale <= 0 {
		return grid
	}

	west, north := m.origin(center)
	w.Each(func(e *world.Entity) {
		mark := MarkOf(e, highlighted != nil && highlighted(e))
		if mark == MarkEmpty {
			return
		}
		b := e.Bounds()
		c0, c1 := m.span(b.Min.X()-west, b.Max.X()-west, m.Cols)
		r0, r1 := m.span(north-b.Max.Z(), north-b.Min.Z(), m.Rows)
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				if mark > grid[r][c] {
					grid[r][c] = mark
				}
			}
		}
	})
	return grid
}

// Cell returns the grid cell containing p on a grid centred on center
func (m Minimap) Cell(center, p mgl32.Vec3) (row, col int, ok bool) {
	if m.Rows == 0 || m.Cols == 0 || m.Scale <= 0 {
		return 0, 0, false
	}
	west, north := m.origin(center)
	col = int(math.Floor(float64((p.X() - west) / m.Scale)))
	row = int(math.Floor(float64((north - p.Z()) / m.Scale)))
	ok = row >= 0 && row < m.Rows && col >= 0 && col < m.Cols
	return row, col, ok
}

// origin returns the world coordinates of the grid's west and north edges
func (m Minimap) origin(center mgl32.Vec3) (west, north float32) {
	west = center.X() - float32(m.Cols)*m.Scale/2
	north = center.Z() + float32(m.Rows)*m.Scale/2
	return west, north
}

// span converts a [lo, hi] offset in world units into an inclusive cell range
// clamped to n cells. An empty range is returned as lo > hi.
func (m Minimap) span(lo, hi float32, n int) (int, int) {
	a := int(math.Floor(float64(lo / m.Scale)))
	b := int(math.Floor(float64(hi / m.Scale)))
	if b < 0 || a >= n {
		return 1, 0
	}
	if a < 0 {
		a = 0
	}
	if b >= n {
		b = n - 1
	}
	return a, b
}
