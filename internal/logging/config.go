// Package logging configures the process-wide zerolog root logger.
package logging

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel     = "RELAYWIRE_LOG_LEVEL"
	EnvLogTimestamp = "RELAYWIRE_LOG_TIMESTAMP"
	EnvLogNoColor   = "RELAYWIRE_LOG_NOCOLOR"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config mirrors the [log] section of relaywire.toml.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
}

var (
	configureOnce sync.Once
	root          = zerolog.Nop()
)

func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

// Configure applies a profile's defaults plus env overrides, once per
// process. Later calls are no-ops.
func Configure(profile Profile) {
	Apply(defaultConfig(profile))
}

// Apply installs an explicit config (env still wins), once per process.
func Apply(cfg Config) {
	configureOnce.Do(func() {
		applyEnvOverrides(&cfg)
		root = build(cfg)
	})
}

// Logger returns a child of the root logger tagged with a component
// name.
func Logger(component string) zerolog.Logger {
	return root.With().Str("component", component).Logger()
}

// ParseLevel maps a config level string to a zerolog level, falling
// back to info on anything unrecognized.
func ParseLevel(raw string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func defaultConfig(profile Profile) Config {
	switch profile {
	case ProfileTest:
		return Config{Level: zerolog.DebugLevel, Timestamp: false, NoColor: true}
	default:
		return Config{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

func applyEnvOverrides(cfg *Config) {
	if raw, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.Level = ParseLevel(raw)
	}
	if raw, ok := os.LookupEnv(EnvLogTimestamp); ok {
		if v, err := strconv.ParseBool(raw); err == nil {
			cfg.Timestamp = v
		}
	}
	if raw, ok := os.LookupEnv(EnvLogNoColor); ok {
		if v, err := strconv.ParseBool(raw); err == nil {
			cfg.NoColor = v
		}
	}
}

func build(cfg Config) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
		NoColor:    cfg.NoColor,
	}
	ctx := zerolog.New(output).Level(cfg.Level).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}
