package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Toggle button
	ButtonWidth  = 170
	ButtonHeight = 36
	ButtonX      = WindowWidth/2 + 20
	ButtonY      = 28

	// Open deck button
	OpenButtonWidth = 110
	OpenButtonX     = WindowWidth - OpenButtonWidth - 20

	// Item tiles
	TileSize   = 200
	TileRadius = 20
	// UnitDistance is the pixel length of one lateral unit
	UnitDistance = 180
	// FocusBrightness lifts the focused tile's colour
	FocusBrightness = 1.2

	// Indicator dots
	DotSize = 12
	DotGap  = 8
	DotsY   = WindowHeight - 80

	LabelSize  = 22
	NumberSize = 36
	TitleSize  = 24

	TPS = 60
)

// Config is the runtime configuration. Flags win over environment variables,
// which win over defaults. A .env file in the working directory is read into
// the environment first.
type Config struct {
	DeckPath   string
	Focus      int // -1 keeps the deck's own focus
	Interval   time.Duration
	Transition time.Duration
	Motion     string
	Headless   bool
	Mute       bool
	CuePath    string
	LogLevel   slog.Level
}

const envPrefix = "CAROUSEL_"

// Parse reads args (without the program name).
func Parse(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("read .env: %w", err)
	}

	cfg := Config{Focus: -1}
	var level string

	fs := flag.NewFlagSet("sliding-scale", flag.ContinueOnError)
	fs.StringVar(&cfg.DeckPath, "deck", "", "YAML deck file (default: built-in deck)")
	fs.IntVar(&cfg.Focus, "focus", -1, "initially focused item, 0-based (default: deck's focus)")
	fs.DurationVar(&cfg.Interval, "interval", 0, "autoplay interval")
	fs.DurationVar(&cfg.Transition, "transition", 0, "transition duration for eased motion")
	fs.StringVar(&cfg.Motion, "motion", "", "motion style: ease or spring")
	fs.BoolVar(&cfg.Headless, "headless", false, "run in the terminal instead of a window")
	fs.BoolVar(&cfg.Mute, "mute", false, "start with the focus sound muted")
	fs.StringVar(&cfg.CuePath, "cue", "", "wav, mp3 or flac file played on focus change")
	fs.StringVar(&level, "log-level", "", "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Fall back to environment variables
	if !set["deck"] {
		cfg.DeckPath = os.Getenv(envPrefix + "DECK")
	}
	if !set["focus"] {
		if v := os.Getenv(envPrefix + "FOCUS"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, fmt.Errorf("invalid %sFOCUS %q", envPrefix, v)
			}
			cfg.Focus = n
		}
	}
	if !set["interval"] {
		d, err := envDuration("INTERVAL")
		if err != nil {
			return Config{}, err
		}
		cfg.Interval = d
	}
	if !set["transition"] {
		d, err := envDuration("TRANSITION")
		if err != nil {
			return Config{}, err
		}
		cfg.Transition = d
	}
	if !set["motion"] {
		cfg.Motion = os.Getenv(envPrefix + "MOTION")
	}
	if !set["headless"] {
		b, err := envBool("HEADLESS")
		if err != nil {
			return Config{}, err
		}
		cfg.Headless = b
	}
	if !set["mute"] {
		b, err := envBool("MUTE")
		if err != nil {
			return Config{}, err
		}
		cfg.Mute = b
	}
	if !set["cue"] {
		cfg.CuePath = os.Getenv(envPrefix + "CUE")
	}
	if !set["log-level"] {
		level = os.Getenv(envPrefix + "LOG_LEVEL")
	}

	if cfg.Motion == "" {
		cfg.Motion = "ease"
	}
	if cfg.Motion != "ease" && cfg.Motion != "spring" {
		return Config{}, fmt.Errorf("unknown motion %q (want ease or spring)", cfg.Motion)
	}
	if cfg.Interval < 0 || cfg.Transition < 0 {
		return Config{}, errors.New("durations must not be negative")
	}
	if cfg.Focus < -1 {
		return Config{}, fmt.Errorf("invalid focus %d", cfg.Focus)
	}
	if level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
			return Config{}, fmt.Errorf("invalid log level %q", level)
		}
	}

	return cfg, nil
}

func envDuration(key string) (time.Duration, error) {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s %q", envPrefix, key, v)
	}
	return d, nil
}

func envBool(key string) (bool, error) {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s%s %q", envPrefix, key, v)
	}
	return b, nil
}
