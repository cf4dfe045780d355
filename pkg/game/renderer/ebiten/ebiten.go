// Package ebiten is the windowed frontend: the same top-down map and HUD as
// the terminal, drawn with Ebiten and driven by held keys.
package ebiten

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"crystalhunt/pkg/game/renderer"
	"crystalhunt/pkg/game/sim"
)

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	sim      *sim.Sim
	tickRate int
	ctx      context.Context

	keys    keyState
	minimap renderer.Minimap

	monoFontSource *text.GoTextFaceSource
	face           *text.GoTextFace

	windowOpenedLogged bool
}

// New creates a windowed renderer that steps s tickRate times per second
func New(s *sim.Sim, tickRate int) *EbitenRenderer {
	if tickRate <= 0 {
		tickRate = 30
	}
	return &EbitenRenderer{
		sim:      s,
		tickRate: tickRate,
		ctx:      context.Background(),
		minimap:  renderer.Minimap{Rows: mapRows, Cols: mapCols, Scale: 1},
	}
}

// Init loads the font and configures the window
func (e *EbitenRenderer) Init() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}
	e.monoFontSource = src
	e.face = &text.GoTextFace{Source: src, Size: fontSize}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Crystal Hunt")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(e.tickRate)
	return nil
}

// Run opens the window and blocks until it is closed, the player quits or
// ctx is cancelled
func (e *EbitenRenderer) Run(ctx context.Context) error {
	e.ctx = ctx
	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("running ebiten: %w", err)
	}
	return nil
}

// Close is a no-op; Ebiten releases the window when RunGame returns
func (e *EbitenRenderer) Close() error {
	return nil
}

// Update steps the simulation once per tick
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}
	if e.ctx.Err() != nil {
		return ebiten.Termination
	}

	cmd := e.keys.commands(pressedCodes())
	if cmd.Quit {
		log.Printf("Quit requested")
		return ebiten.Termination
	}
	e.sim.Step(time.Second/time.Duration(e.tickRate), cmd)
	return nil
}

// Layout returns the game's logical screen size
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
