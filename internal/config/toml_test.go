package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
	if cfg.Display.Key != nil || cfg.Server.Addr != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[display]\nkey = \"D\"\ndegrees = true\n\n[server]\naddr = \":9000\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Display.Key == nil || *cfg.Display.Key != "D" {
		t.Fatalf("expected key D, got %+v", cfg.Display.Key)
	}
	if cfg.Display.ShowDegrees == nil || !*cfg.Display.ShowDegrees {
		t.Fatalf("expected degrees true")
	}
	if cfg.Display.Pentatonic != nil {
		t.Fatalf("expected pentatonic unset")
	}
	if cfg.Server.Addr == nil || *cfg.Server.Addr != ":9000" {
		t.Fatalf("expected server addr :9000")
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[display]\ntuning = \"dGDGBD\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "display.tuning") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultConfigPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got, want := DefaultConfigPath(), filepath.Join(dir, "frets", "config.toml"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
