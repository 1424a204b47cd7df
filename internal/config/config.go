package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Sim     SimConfig     `toml:"sim"`
	Logging LoggingConfig `toml:"logging"`
}

type SimConfig struct {
	TickRate     time.Duration `toml:"tick_rate"`
	MaxTicks     int           `toml:"max_ticks"` // 0 = run until signal
	ScenarioPath string        `toml:"scenario_path"`
	ScriptsDir   string        `toml:"scripts_dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Sim: SimConfig{
			TickRate:     200 * time.Millisecond,
			MaxTicks:     300,
			ScenarioPath: "data/yaml/scenario.yaml",
			ScriptsDir:   "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
