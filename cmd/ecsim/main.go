package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/enthus1ast/ecs"
	"github.com/enthus1ast/ecs/internal/config"
	"github.com/enthus1ast/ecs/internal/data"
	"github.com/enthus1ast/ecs/internal/scripting"
	"github.com/enthus1ast/ecs/internal/sim"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/ecsim.toml"
	if p := os.Getenv("ECSIM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Load scenario data
	scn, err := data.LoadScenario(cfg.Sim.ScenarioPath)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}
	log.Info("scenario loaded",
		zap.String("path", cfg.Sim.ScenarioPath),
		zap.Int("templates", scn.Count()))

	// 4. Initialize Lua scripting engine
	luaEngine, err := scripting.NewEngine(cfg.Sim.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer luaEngine.Close()

	// 5. Create registry, spawn creatures, wire destructors
	reg := ecs.NewRegistry()
	ecs.OnRemove(reg, func(r *ecs.Registry, e ecs.Entity, p sim.Poison) {
		log.Debug("poison wore off",
			zap.Uint64("entity", uint64(e)),
			zap.Int("ticks_left", p.TicksLeft))
	})
	spawned := sim.SpawnScenario(reg, scn)
	log.Info("creatures spawned", zap.Int("count", spawned))

	// 6. Register systems with the runner
	runner := sim.NewRunner()
	runner.Register(sim.NewRegenSystem(reg, luaEngine))
	runner.Register(sim.NewPoisonSystem(reg, luaEngine))
	deathSys := sim.NewDeathSystem(reg, log)
	runner.Register(deathSys)
	runner.Register(sim.NewCleanupSystem(reg))

	// 7. Tick loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Sim.TickRate)
	defer ticker.Stop()

	log.Info("simulation started",
		zap.Duration("tick", cfg.Sim.TickRate),
		zap.Int("max_ticks", cfg.Sim.MaxTicks))

	ticks := 0
	for {
		select {
		case <-ticker.C:
			runner.Tick(cfg.Sim.TickRate)
			ticks++
			if cfg.Sim.MaxTicks > 0 && ticks >= cfg.Sim.MaxTicks {
				report(reg, deathSys, ticks, log)
				return nil
			}
		case sig := <-shutdownCh:
			log.Info("received shutdown signal", zap.String("signal", sig.String()))
			report(reg, deathSys, ticks, log)
			return nil
		}
	}
}

func report(reg *ecs.Registry, deaths *sim.DeathSystem, ticks int, log *zap.Logger) {
	survivors := 0
	for range ecs.Entities[sim.Health](reg) {
		survivors++
	}
	log.Info("simulation finished",
		zap.Int("ticks", ticks),
		zap.Int("survivors", survivors),
		zap.Int("deaths", deaths.Total))
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
