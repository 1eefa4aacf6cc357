// Package config loads relaywire runtime configuration from TOML.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Log     LogConfig     `toml:"log"`
	Session SessionConfig `toml:"session"`
}

type LogConfig struct {
	Level     string `toml:"level"`
	Timestamp bool   `toml:"timestamp"`
	NoColor   bool   `toml:"no_color"`
}

type SessionConfig struct {
	MaxFrameBytes uint32 `toml:"max_frame_bytes"`
	ChanBuffer    int    `toml:"chan_buffer"`
}

func Default() Config {
	return Config{
		Log: LogConfig{
			Level:     "info",
			Timestamp: true,
		},
		Session: SessionConfig{
			MaxFrameBytes: 8 * 1024 * 1024,
			ChanBuffer:    64,
		},
	}
}

// Load reads a TOML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	switch cfg.Log.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log.level %q", cfg.Log.Level)
	}
	if cfg.Session.MaxFrameBytes == 0 {
		return fmt.Errorf("config: session.max_frame_bytes must be positive")
	}
	if cfg.Session.ChanBuffer <= 0 {
		return fmt.Errorf("config: session.chan_buffer must be positive")
	}
	return nil
}
