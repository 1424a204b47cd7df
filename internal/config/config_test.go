package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecsim.toml")
	raw := `
[sim]
tick_rate = "50ms"
max_ticks = 10

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Sim.TickRate != 50*time.Millisecond {
		t.Errorf("tick_rate = %s, want 50ms", cfg.Sim.TickRate)
	}
	if cfg.Sim.MaxTicks != 10 {
		t.Errorf("max_ticks = %d, want 10", cfg.Sim.MaxTicks)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	// Unset keys keep their defaults.
	if cfg.Sim.ScenarioPath != Defaults().Sim.ScenarioPath {
		t.Errorf("scenario_path should default, got %q", cfg.Sim.ScenarioPath)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
