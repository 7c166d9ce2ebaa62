package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/sneakout/internal/engine"
)

func TestDefaultConfigMatchesEngineDefaults(t *testing.T) {
	if got, want := DefaultEngineConfig().ToParams(), engine.DefaultParams(); got != want {
		t.Errorf("DefaultEngineConfig().ToParams() = %+v, want %+v", got, want)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg EngineConfig
	if err := yaml.Unmarshal(defaultEngineYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultEngineConfig() {
		t.Errorf("embedded YAML = %+v, want %+v", cfg, DefaultEngineConfig())
	}
}

func TestLoadEngineCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	if err := os.WriteFile(path, defaultEngineYAML, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEngine(path)
	if err != nil {
		t.Fatalf("LoadEngine: %v", err)
	}
	if cfg != DefaultEngineConfig() {
		t.Errorf("loaded config = %+v, want defaults", cfg)
	}
}

func TestLoadEngineMissingCustomPathFails(t *testing.T) {
	if _, err := LoadEngine(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}
}

func TestLoadEngineRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	if err := os.WriteFile(path, []byte("run: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadEngine(path); err == nil {
		t.Error("expected a parse error")
	}
}
