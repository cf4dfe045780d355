// Package config resolves the runtime settings from defaults, an optional
// .env file, CRYSTALHUNT_* environment variables and command-line flags,
// in increasing order of priority.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"crystalhunt/pkg/engine/input"
)

// Frontends
const (
	FrontendTUI = "tui"
	FrontendGUI = "gui"
)

const envPrefix = "CRYSTALHUNT_"

var (
	// ErrUnknownFrontend is returned when the frontend is neither tui nor gui
	ErrUnknownFrontend = errors.New("unknown frontend")
	ErrUnknownAction   = errors.New("unknown action")
	ErrReservedKey     = errors.New("key cannot be rebound")
	ErrBadBinding      = errors.New("binding must look like action=key")
)

// usageOutput receives the flag usage when -h is given
var usageOutput io.Writer = os.Stderr

// Config holds the runtime settings
type Config struct {
	Frontend  string // "tui" or "gui"
	LevelPath string // Empty means the built-in level
	Muted     bool
	Locale    string
	LocaleDir string
	TickRate  int // Simulation steps per second
	LogFile   string
	DumpMap   string // Write a map dump here and exit

	// Bindings replaces the keys of an action with a single key
	Bindings map[input.Action]string
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Frontend:  FrontendTUI,
		Locale:    "en_GB",
		LocaleDir: "locales",
		TickRate:  30,
		LogFile:   "crystalhunt.log",
	}
}

// Load resolves the configuration. envFile may be empty to skip the .env file;
// a missing .env file is not an error.
func Load(args []string, envFile string) (Config, error) {
	cfg := Default()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return cfg, err
	}

	var usage bytes.Buffer
	fset := flag.NewFlagSet("crystalhunt", flag.ContinueOnError)
	fset.SetOutput(&usage)
	fset.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "frontend to run: tui or gui")
	fset.StringVar(&cfg.LevelPath, "level", cfg.LevelPath, "path to a level YAML file (default: built-in level)")
	fset.BoolVar(&cfg.Muted, "mute", cfg.Muted, "start with sound muted")
	fset.StringVar(&cfg.Locale, "locale", cfg.Locale, "language for hints and prompts")
	fset.StringVar(&cfg.LocaleDir, "locale-dir", cfg.LocaleDir, "directory holding <locale>/default.po catalogues")
	fset.IntVar(&cfg.TickRate, "tick-rate", cfg.TickRate, "simulation steps per second")
	fset.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "file the terminal frontend logs to")
	fset.StringVar(&cfg.DumpMap, "dump-map", cfg.DumpMap, "write a debug map of the level to this file and exit")
	fset.Func("bind", "rebind an action to one key, e.g. shoot=g (repeatable)", cfg.addBinding)
	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			io.Copy(usageOutput, &usage)
		}
		return cfg, fmt.Errorf("parsing flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	log.Printf("Config: frontend=%s level=%q locale=%s tick=%d muted=%v bindings=%d",
		cfg.Frontend, cfg.LevelPath, cfg.Locale, cfg.TickRate, cfg.Muted, len(cfg.Bindings))
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv(envPrefix + "FRONTEND"); v != "" {
		c.Frontend = v
	}
	if v := getenv(envPrefix + "LEVEL"); v != "" {
		c.LevelPath = v
	}
	if v := getenv(envPrefix + "LOCALE"); v != "" {
		c.Locale = v
	}
	if v := getenv(envPrefix + "LOCALE_DIR"); v != "" {
		c.LocaleDir = v
	}
	if v := getenv(envPrefix + "LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := getenv(envPrefix + "MUTE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sMUTE: %w", envPrefix, err)
		}
		c.Muted = b
	}
	if v := getenv(envPrefix + "TICK_RATE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sTICK_RATE: %w", envPrefix, err)
		}
		c.TickRate = n
	}
	for _, a := range input.Actions() {
		key := envPrefix + "BIND_" + strings.ToUpper(input.ActionKey(a))
		if v := getenv(key); v != "" {
			if err := c.bind(a, v); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
	}
	return nil
}

// addBinding parses one action=key pair
func (c *Config) addBinding(s string) error {
	name, code, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("%q: %w", s, ErrBadBinding)
	}
	a, ok := input.ParseAction(name)
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownAction)
	}
	return c.bind(a, code)
}

func (c *Config) bind(a input.Action, code string) error {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return fmt.Errorf("%s: %w", input.ActionKey(a), ErrBadBinding)
	}
	if input.IsReserved(code) {
		return fmt.Errorf("%q: %w", code, ErrReservedKey)
	}
	if c.Bindings == nil {
		c.Bindings = make(map[input.Action]string)
	}
	c.Bindings[a] = code
	return nil
}

// ApplyBindings installs the configured key bindings on top of the defaults
func (c Config) ApplyBindings() {
	input.ResetBindings()
	for _, a := range input.Actions() {
		if code, ok := c.Bindings[a]; ok {
			input.SetSingleBinding(a, code)
			log.Printf("Bound %s to %s", input.ActionKey(a), code)
		}
	}
}

// Validate checks the frontend name and the tick rate
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendTUI, FrontendGUI:
	default:
		return fmt.Errorf("%q: %w", c.Frontend, ErrUnknownFrontend)
	}
	if c.TickRate <= 0 || c.TickRate > 1000 {
		return fmt.Errorf("tick rate %d out of range 1..1000", c.TickRate)
	}
	return nil
}
