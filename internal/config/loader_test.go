package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// No custom path and no fallback paths pins the embedded YAML branch
	// regardless of what config the host user has lying around.
	cfg, err := load("", nil)
	if err != nil {
		t.Fatalf("load(\"\", nil) error: %v", err)
	}

	if cfg.Display.TickMillis != 10 {
		t.Errorf("TickMillis = %d, expected 10", cfg.Display.TickMillis)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, expected \"info\"", cfg.Log.Level)
	}
	if cfg.SSH.Address == "" {
		t.Error("SSH.Address is empty")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paddle.yaml")
	body := `display:
  tick_millis: 25
  debug: true
log:
  level: debug
ssh:
  address: ":2222"
  idle_minutes: 5
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}

	if cfg.Display.TickMillis != 25 || !cfg.Display.Debug {
		t.Errorf("display = %+v, expected tick 25 and debug on", cfg.Display)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, expected \"debug\"", cfg.Log.Level)
	}
	if cfg.SSH.Address != ":2222" || cfg.SSH.IdleMinutes != 5 {
		t.Errorf("ssh = %+v", cfg.SSH)
	}
}

func TestLoadFallbackPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paddle.yaml")
	if err := os.WriteFile(path, []byte("display:\n  tick_millis: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := load("", []string{filepath.Join(t.TempDir(), "absent.yaml"), path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display.TickMillis != 7 {
		t.Errorf("TickMillis = %d, expected 7 from the fallback file", cfg.Display.TickMillis)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config path")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("display: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestDefaultMatchesEmbedded(t *testing.T) {
	cfg, err := load("", nil)
	if err != nil {
		t.Fatal(err)
	}
	if def := Default(); def.Display.TickMillis != cfg.Display.TickMillis {
		t.Errorf("hardcoded default tick %d disagrees with embedded %d",
			def.Display.TickMillis, cfg.Display.TickMillis)
	}
}
