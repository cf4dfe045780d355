package ebiten

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"crystalhunt/pkg/engine/world"
	"crystalhunt/pkg/game/renderer"
)

// dynamicGet looks up translation keys that are not literals
var dynamicGet = gotext.Get

// Draw renders the map on the left and the HUD on the right
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.face == nil {
		return
	}

	e.drawText(screen, gotext.Get("Crystal Hunt"), mapX, 12, colorAction)
	e.drawText(screen, e.sim.Text(renderer.SlotScore), hudX, 12, colorText)

	e.drawMap(screen)
	e.drawHUD(screen)
}

func (e *EbitenRenderer) drawMap(screen *ebiten.Image) {
	w := float32(mapCols * tileSize)
	h := float32(mapRows * tileSize)
	vector.DrawFilledRect(screen, mapX, mapY, w, h, colorMapBackground, false)

	body := e.sim.Body()
	grid := e.minimap.Render(e.sim.World(), body.Position(), e.sim.Highlighted)
	for r, row := range grid {
		for c, mark := range row {
			clr, ok := markColors[mark]
			if !ok {
				continue
			}
			if mark == renderer.MarkCoinLit {
				clr = pulseColor(markColors[renderer.MarkCoin], clr, e.sim.Now(), pulsePeriod)
			}
			x := float32(mapX + c*tileSize)
			y := float32(mapY + r*tileSize)
			vector.DrawFilledRect(screen, x+1, y+1, tileSize-2, tileSize-2, clr, false)
		}
	}

	// Facing indicator from the player cell
	cx := float32(mapX + (mapCols/2)*tileSize + tileSize/2)
	cy := float32(mapY + (mapRows/2)*tileSize + tileSize/2)
	fwd := world.Forward(body.Yaw(), 0)
	vector.StrokeLine(screen, cx, cy, cx+fwd.X()*tileSize*1.5, cy-fwd.Z()*tileSize*1.5, 2, colorPlayer, true)
}

func (e *EbitenRenderer) drawHUD(screen *ebiten.Image) {
	y := float64(mapY)
	line := func(s string, clr color.Color) {
		e.drawText(screen, s, hudX, y, clr)
		y += lineHeight
	}

	st := e.sim.Player().State()
	line(gotext.Get("Inventory: "), colorSubtle)
	if items := st.Inventory(); len(items) == 0 {
		line("  "+gotext.Get("(empty)"), colorSubtle)
	}
	for _, k := range st.Inventory() {
		line("  "+dynamicGet(k.String()), colorItem)
	}
	y += lineHeight / 2

	for _, l := range wrap(e.sim.Text(renderer.SlotInteraction), hudWrap) {
		line(l, colorAction)
	}
	for _, l := range wrap(e.sim.Text(renderer.SlotHint), hudWrap) {
		line(l, colorHint)
	}
	y += lineHeight / 2

	line(gotext.Get("Messages"), colorSubtle)
	for _, msg := range st.Messages {
		for i, l := range wrap(msg, hudWrap-2) {
			if i == 0 {
				l = "• " + l
			} else {
				l = "  " + l
			}
			line(l, colorText)
		}
	}

	e.drawText(screen, renderer.ControlsHelp(),
		mapX, float64(mapY+mapRows*tileSize+12), colorSubtle)
}

func (e *EbitenRenderer) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, e.face, op)
}

// wrap splits s on newlines and then on word boundaries so no line is longer
// than width runes. Empty input yields no lines.
func wrap(s string, width int) []string {
	if s == "" {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		var cur []rune
		for _, word := range strings.Fields(para) {
			w := []rune(word)
			if len(cur) > 0 && len(cur)+1+len(w) > width {
				lines = append(lines, string(cur))
				cur = cur[:0]
			}
			if len(cur) > 0 {
				cur = append(cur, ' ')
			}
			cur = append(cur, w...)
		}
		lines = append(lines, string(cur))
	}
	return lines
}
