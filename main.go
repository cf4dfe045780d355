package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leonelquinteros/gotext"

	"crystalhunt/pkg/game/audio"
	"crystalhunt/pkg/game/config"
	"crystalhunt/pkg/game/devtools"
	"crystalhunt/pkg/game/level"
	"crystalhunt/pkg/game/renderer"
	ebitenrenderer "crystalhunt/pkg/game/renderer/ebiten"
	"crystalhunt/pkg/game/renderer/tui"
	"crystalhunt/pkg/game/sim"
)

func initGettext(localeDir, locale string) {
	gotext.Configure(localeDir, locale, "default")
}

func loadLevel(path string) (*level.Level, error) {
	if path == "" {
		return level.Default()
	}
	return level.Load(path)
}

// redirectLog sends log output to a file so it does not scribble over the terminal
func redirectLog(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}

func newRenderer(cfg config.Config, s *sim.Sim) renderer.Renderer {
	if cfg.Frontend == config.FrontendGUI {
		return ebitenrenderer.New(s, cfg.TickRate)
	}
	return tui.New(s, cfg.TickRate)
}

func main() {
	cfg, err := config.Load(os.Args[1:], ".env")
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	if err := run(cfg); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(cfg config.Config) error {
	initGettext(cfg.LocaleDir, cfg.Locale)
	cfg.ApplyBindings()

	lvl, err := loadLevel(cfg.LevelPath)
	if err != nil {
		return fmt.Errorf("level: %w", err)
	}

	s, err := sim.New(lvl, nil)
	if err != nil {
		return fmt.Errorf("starting level %q: %w", lvl.Name, err)
	}

	if cfg.DumpMap != "" {
		path, err := devtools.DumpMapToFile(s, cfg.DumpMap)
		if err != nil {
			return fmt.Errorf("map dump: %w", err)
		}
		fmt.Println(path)
		return nil
	}

	if cfg.Frontend == config.FrontendTUI {
		restore, err := redirectLog(cfg.LogFile)
		if err != nil {
			return err
		}
		defer restore()
	}

	speaker, err := audio.NewSpeaker(func() mgl32.Vec3 { return s.Body().Eye() })
	if err != nil {
		log.Printf("Audio disabled: %v", err)
	} else {
		defer speaker.Close()
		speaker.SetMuted(cfg.Muted)
		s.SetSound(speaker)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := newRenderer(cfg, s)
	if err := r.Init(); err != nil {
		return fmt.Errorf("init %s frontend: %w", cfg.Frontend, err)
	}
	defer r.Close()

	if err := r.Run(ctx); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Printf("Bye")
	return nil
}
