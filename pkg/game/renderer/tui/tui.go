// Package tui is the terminal frontend: a top-down map of the level with a
// text HUD, driven by key presses read from a raw-mode terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/term"

	"crystalhunt/pkg/engine/input"
	"crystalhunt/pkg/engine/world"
	"crystalhunt/pkg/game/renderer"
	"crystalhunt/pkg/game/sim"
)

// Viewport limits and the fallback terminal size
const (
	DefaultWidth  = 80
	DefaultHeight = 24

	ViewportMinRows = 7
	ViewportMinCols = 15
	ViewportMaxRows = 25
	ViewportMaxCols = 41

	// Lines needed outside the map: title, inventory, prompt, hint,
	// messages pane (header + 5) and the controls line
	ViewportTopMargin = 13
)

const clearScreen = "\033[H\033[2J"

// dynamicGet looks up translation keys that are not literals
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	sim  *sim.Sim
	tick time.Duration

	in      *os.File
	out     io.Writer
	restore func()
	keys    chan string
	errs    chan error
	done    chan struct{} // Closed when Run returns
	stop    sync.Once
	held    *heldKeys

	colorTitle   color.Style
	colorSubtle  color.Style
	colorAction  color.Style
	colorHint    color.Style
	colorItem    color.Style
	colorPlayer  color.Style
	markerColors map[renderer.Mark]color.Style
}

// New creates a terminal renderer that steps s tickRate times per second
func New(s *sim.Sim, tickRate int) *TUIRenderer {
	if tickRate <= 0 {
		tickRate = 30
	}
	t := &TUIRenderer{
		sim:  s,
		tick: time.Second / time.Duration(tickRate),
		in:   os.Stdin,
		out:  os.Stdout,
		keys: make(chan string, 16),
		errs: make(chan error, 1),
		done: make(chan struct{}),
		held: newHeldKeys(),

		colorTitle:  color.Style{color.FgCyan, color.OpBold},
		colorSubtle: color.Style{color.FgGray, color.OpBold},
		colorAction: color.Style{color.FgMagenta},
		colorHint:   color.Style{color.FgYellow, color.OpBold},
		colorItem:   color.Style{color.FgMagenta, color.OpBold},
		colorPlayer: color.Style{color.FgGreen, color.BgBlack, color.OpBold},
	}
	t.markerColors = map[renderer.Mark]color.Style{
		renderer.MarkRoomStart:  {color.FgGray},
		renderer.MarkWater:      {color.FgBlue},
		renderer.MarkGas:        {color.FgGreen},
		renderer.MarkDoorOpen:   {color.FgGreen},
		renderer.MarkWall:       {color.FgGray},
		renderer.MarkDoorClosed: {color.FgYellow, color.OpBold},
		renderer.MarkCoin:       {color.FgYellow},
		renderer.MarkCoinLit:    {color.FgYellow, color.OpBold, color.OpReverse},
		renderer.MarkKey:        {color.FgBlue, color.OpBold},
		renderer.MarkGun:        {color.FgMagenta, color.OpBold},
		renderer.MarkMask:       {color.FgCyan, color.OpBold},
		renderer.MarkCrystal:    {color.FgLightCyan, color.OpBold},
		renderer.MarkMonster:    {color.FgRed, color.OpBold},
		renderer.MarkProjectile: {color.FgWhite},
	}
	return t
}

// Init puts the terminal into raw mode and starts reading keys
func (t *TUIRenderer) Init() error {
	restore, err := input.MakeRaw(t.in)
	if err != nil {
		return err
	}
	t.restore = restore
	go t.readKeys(input.NewKeyReader(t.in))
	return nil
}

// Close restores the terminal
func (t *TUIRenderer) Close() error {
	if t.restore != nil {
		t.restore()
		t.restore = nil
	}
	fmt.Fprint(t.out, clearScreen)
	return nil
}

// readKeys forwards decoded key presses until the reader fails or Run returns.
// A ReadKey already blocked on the terminal only returns with the next key.
func (t *TUIRenderer) readKeys(kr *input.KeyReader) {
	for {
		code, err := kr.ReadKey()
		if err != nil {
			select {
			case t.errs <- err:
			case <-t.done:
			}
			return
		}
		select {
		case t.keys <- code:
		case <-t.done:
			return
		}
	}
}

// Run steps the simulation on a fixed tick and redraws after every step
func (t *TUIRenderer) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()
	defer t.stop.Do(func() { close(t.done) })

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-t.errs:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading keys: %w", err)
		case code := <-t.keys:
			t.press(code, time.Now())
		case now := <-ticker.C:
			cmd := t.held.commands(now)
			if cmd.Quit {
				log.Printf("Quit requested")
				return nil
			}
			t.sim.Step(t.tick, cmd)
			io.WriteString(t.out, t.Frame())
		}
	}
}

func (t *TUIRenderer) press(code string, now time.Time) {
	raw := input.RawInput{
		Device:    input.DeviceTerminal,
		Code:      code,
		Timestamp: now,
	}
	t.held.press(input.MapToIntent(input.NewDebouncedInput(raw)).Action, now)
}

// viewportSize returns the map size in cells for the current terminal
func (t *TUIRenderer) viewportSize() (rows, cols int) {
	width, height := DefaultWidth, DefaultHeight
	if f, ok := t.out.(*os.File); ok {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			width, height = w, h
		}
	}

	rows = min(max(height-ViewportTopMargin, ViewportMinRows), ViewportMaxRows)
	// Each cell is drawn two characters wide to keep the map square
	cols = min(max((width-2)/2, ViewportMinCols), ViewportMaxCols)
	// Odd sizes keep the player in the middle cell
	return rows | 1, cols | 1
}

// Frame renders the whole screen. Lines end in CRLF for raw mode.
func (t *TUIRenderer) Frame() string {
	var b strings.Builder
	b.WriteString(clearScreen)

	line := func(s string) {
		b.WriteString(s)
		b.WriteString("\r\n")
	}

	line(t.colorTitle.Sprint(gotext.Get("Crystal Hunt")) + "   " + t.colorAction.Sprint(t.sim.Text(renderer.SlotScore)))
	line("")

	rows, cols := t.viewportSize()
	m := renderer.Minimap{Rows: rows, Cols: cols, Scale: 1}
	body := t.sim.Body()
	player := string(renderer.HeadingGlyph(world.Heading(body.Yaw())))
	for _, row := range m.Render(t.sim.World(), body.Position(), t.sim.Highlighted) {
		var rb strings.Builder
		for _, mark := range row {
			if mark == renderer.MarkPlayer {
				rb.WriteString(t.colorPlayer.Sprint(player))
			} else {
				glyph := string(mark.Glyph())
				if style, ok := t.markerColors[mark]; ok {
					glyph = style.Sprint(glyph)
				}
				rb.WriteString(glyph)
			}
			rb.WriteByte(' ')
		}
		line(rb.String())
	}
	line("")

	t.printStatusBar(line)
	t.printMessagesPane(line)
	line(t.colorSubtle.Sprint(renderer.ControlsHelp()))
	return b.String()
}

func (t *TUIRenderer) printStatusBar(line func(string)) {
	st := t.sim.Player().State()
	inv := t.colorSubtle.Sprint(gotext.Get("Inventory: "))
	if items := st.Inventory(); len(items) == 0 {
		inv += t.colorSubtle.Sprint(gotext.Get("(empty)"))
	} else {
		names := make([]string, 0, len(items))
		for _, k := range items {
			names = append(names, t.colorItem.Sprint(dynamicGet(k.String())))
		}
		inv += strings.Join(names, t.colorSubtle.Sprint(", "))
	}
	line(inv)

	line(t.colorAction.Sprint(t.sim.Text(renderer.SlotInteraction)))
	// The hint may span several lines (the intro does)
	for _, l := range strings.Split(t.sim.Text(renderer.SlotHint), "\n") {
		line(t.colorHint.Sprint(l))
	}
}

// printMessagesPane renders the event log
func (t *TUIRenderer) printMessagesPane(line func(string)) {
	line(t.colorSubtle.Sprint("── " + gotext.Get("Messages") + " ──"))
	for _, msg := range t.sim.Player().State().Messages {
		line(" • " + msg)
	}
}
