package ebiten

import (
	"image/color"
	"math"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Pulse period for the highlighted coin
const pulsePeriod = time.Second

// pulseColor oscillates between from and toward once per period, blending in
// Lab space. It returns from at the start of each period and toward halfway.
func pulseColor(from, toward color.RGBA, now, period time.Duration) color.RGBA {
	a, okA := colorful.MakeColor(from)
	b, okB := colorful.MakeColor(toward)
	if !okA || !okB || period <= 0 {
		return from
	}
	phase := float64(now%period) / float64(period)
	t := (1 - math.Cos(2*math.Pi*phase)) / 2
	r, g, bl := a.BlendLab(b, t).Clamped().RGB255()
	return color.RGBA{r, g, bl, from.A}
}
