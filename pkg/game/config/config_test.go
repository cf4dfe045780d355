package config

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"crystalhunt/pkg/engine/input"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil, "")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, want %+v", cfg, Default())
	}
}

func TestLoad_Priority(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "CRYSTALHUNT_LOCALE=de\nCRYSTALHUNT_TICK_RATE=20\nCRYSTALHUNT_MUTE=true\n"
	if err := os.WriteFile(envFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CRYSTALHUNT_LOCALE", "")
	t.Setenv("CRYSTALHUNT_TICK_RATE", "")
	t.Setenv("CRYSTALHUNT_MUTE", "")
	os.Unsetenv("CRYSTALHUNT_LOCALE")
	os.Unsetenv("CRYSTALHUNT_TICK_RATE")
	os.Unsetenv("CRYSTALHUNT_MUTE")
	t.Setenv("CRYSTALHUNT_FRONTEND", "gui")

	cfg, err := Load([]string{"-tick-rate", "60"}, envFile)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Locale != "de" || !cfg.Muted {
		t.Errorf(".env values not applied: %+v", cfg)
	}
	if cfg.Frontend != FrontendGUI {
		t.Errorf("Frontend = %q, want %q from the environment", cfg.Frontend, FrontendGUI)
	}
	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60 (flag beats .env)", cfg.TickRate)
	}
}

func TestLoad_MissingEnvFileIsFine(t *testing.T) {
	if _, err := Load(nil, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("Load(missing .env) error: %v", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown frontend", []string{"-frontend", "vr"}, ErrUnknownFrontend},
		{"bad tick rate", []string{"-tick-rate", "0"}, nil},
		{"unknown flag", []string{"-nope"}, nil},
		{"bind without key", []string{"-bind", "shoot"}, nil},
		{"bind unknown action", []string{"-bind", "fly=g"}, nil},
		{"bind reserved key", []string{"-bind", "shoot=e"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, "")
			if err == nil {
				t.Fatal("Load() error = nil")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestApplyEnv_BadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"mute", map[string]string{"CRYSTALHUNT_MUTE": "loud"}},
		{"tick rate", map[string]string{"CRYSTALHUNT_TICK_RATE": "fast"}},
		{"reserved binding", map[string]string{"CRYSTALHUNT_BIND_QUIT": "ctrl_c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := cfg.applyEnv(func(k string) string { return tt.env[k] })
			if err == nil {
				t.Error("applyEnv() error = nil")
			}
		})
	}
}

func TestLoad_Help(t *testing.T) {
	var out bytes.Buffer
	old := usageOutput
	usageOutput = &out
	defer func() { usageOutput = old }()

	_, err := Load([]string{"-h"}, "")
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("Load(-h) error = %v, want flag.ErrHelp", err)
	}
	for _, want := range []string{"-frontend", "-bind", "-tick-rate"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("usage missing %q:\n%s", want, out.String())
		}
	}
}

func TestLoad_UnknownFlagPrintsNoUsage(t *testing.T) {
	var out bytes.Buffer
	old := usageOutput
	usageOutput = &out
	defer func() { usageOutput = old }()

	if _, err := Load([]string{"-nope"}, ""); err == nil {
		t.Fatal("Load(-nope) error = nil")
	}
	if out.Len() != 0 {
		t.Errorf("usage written for a bad flag: %q", out.String())
	}
}

func TestLoad_Bindings(t *testing.T) {
	t.Setenv("CRYSTALHUNT_BIND_TOGGLE_MUTE", "N")
	t.Setenv("CRYSTALHUNT_BIND_SHOOT", "x")

	cfg, err := Load([]string{"-bind", "shoot=g", "-bind", "move_forward=arrow_up"}, "")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := map[input.Action]string{
		input.ActionToggleMute:  "n",
		input.ActionShoot:       "g",
		input.ActionMoveForward: "arrow_up",
	}
	if !reflect.DeepEqual(cfg.Bindings, want) {
		t.Errorf("Bindings = %v, want %v", cfg.Bindings, want)
	}
}

func TestApplyEnv_UnknownActionIgnored(t *testing.T) {
	cfg := Default()
	env := map[string]string{"CRYSTALHUNT_BIND_FLY": "g"}
	if err := cfg.applyEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatalf("applyEnv() error: %v", err)
	}
	if cfg.Bindings != nil {
		t.Errorf("Bindings = %v, want none", cfg.Bindings)
	}
}

func TestApplyEnv_ReservedBinding(t *testing.T) {
	cfg := Default()
	env := map[string]string{"CRYSTALHUNT_BIND_SHOOT": "e"}
	err := cfg.applyEnv(func(k string) string { return env[k] })
	if !errors.Is(err, ErrReservedKey) {
		t.Errorf("applyEnv() error = %v, want %v", err, ErrReservedKey)
	}
}

func TestApplyBindings(t *testing.T) {
	defer input.ResetBindings()

	cfg := Default()
	cfg.Bindings = map[input.Action]string{input.ActionShoot: "g"}
	cfg.ApplyBindings()

	shoot := func(code string) input.Action {
		return input.MapToIntent(input.DebouncedInput{Code: code}).Action
	}
	if got := shoot("g"); got != input.ActionShoot {
		t.Errorf("g = %s, want Shoot", input.ActionName(got))
	}
	if got := shoot("f"); got != input.ActionNone {
		t.Errorf("f = %s, want None after rebinding", input.ActionName(got))
	}

	Default().ApplyBindings()
	if got := shoot("f"); got != input.ActionShoot {
		t.Errorf("f = %s, want Shoot with no bindings configured", input.ActionName(got))
	}
}
