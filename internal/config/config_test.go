package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/relaywire/internal/testutil/testlog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "relaywire.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("log.level=%q want=info", cfg.Log.Level)
	}
	if cfg.Session.MaxFrameBytes != 8*1024*1024 {
		t.Fatalf("max_frame_bytes=%d", cfg.Session.MaxFrameBytes)
	}
	if cfg.Session.ChanBuffer != 64 {
		t.Fatalf("chan_buffer=%d", cfg.Session.ChanBuffer)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
[log]
level = "debug"
timestamp = false

[session]
max_frame_bytes = 1024
chan_buffer = 8
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Timestamp {
		t.Fatalf("log config not applied: %+v", cfg.Log)
	}
	if cfg.Session.MaxFrameBytes != 1024 || cfg.Session.ChanBuffer != 8 {
		t.Fatalf("session config not applied: %+v", cfg.Session)
	}
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
[log]
level = "loud"
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown log level")
	}
}

func TestLoadRejectsZeroFrameLimit(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
[session]
max_frame_bytes = 0
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for zero frame limit")
	}
}

func TestLoadMissingFile(t *testing.T) {
	testlog.Start(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
