package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM holding the tunable simulation
// formulas. Single-goroutine access only (tick loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given
// directory tree. Missing subdirectories are skipped.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	// Set API version global
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}

	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load scripts: %w", err)
	}
	for _, sub := range []string{"sim"} {
		p := filepath.Join(scriptsDir, sub)
		if err := e.loadDir(p); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}

	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// RegenContext holds pre-packed data for a regen amount calculation.
type RegenContext struct {
	Cur     int
	Max     int
	PerTick int
}

// CalcRegenAmount calls the Lua calc_regen_amount function. Falls back to
// the flat per-tick amount when the script is absent or errors out.
func (e *Engine) CalcRegenAmount(ctx RegenContext) int {
	fn := e.vm.GetGlobal("calc_regen_amount")
	if fn == lua.LNil {
		return ctx.PerTick
	}

	t := e.vm.NewTable()
	t.RawSetString("cur", lua.LNumber(ctx.Cur))
	t.RawSetString("max", lua.LNumber(ctx.Max))
	t.RawSetString("per_tick", lua.LNumber(ctx.PerTick))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua calc_regen_amount error", zap.Error(err))
		return ctx.PerTick
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)
	return int(lua.LVAsNumber(result))
}

// CalcPoisonDamage calls Lua calc_poison_damage(per_tick, ticks_left).
// Falls back to the flat per-tick damage.
func (e *Engine) CalcPoisonDamage(perTick, ticksLeft int) int {
	return e.callIntFunc("calc_poison_damage", perTick, perTick, ticksLeft)
}

// callIntFunc calls a Lua function taking numeric args and returning one
// number. Returns fallback when the function is missing or errors.
func (e *Engine) callIntFunc(name string, fallback int, args ...int) int {
	fn := e.vm.GetGlobal(name)
	if fn == lua.LNil {
		return fallback
	}

	lArgs := make([]lua.LValue, len(args))
	for i, a := range args {
		lArgs[i] = lua.LNumber(a)
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lArgs...); err != nil {
		e.log.Error("lua call error", zap.String("func", name), zap.Error(err))
		return fallback
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)
	return int(lua.LVAsNumber(result))
}

func (e *Engine) Close() {
	e.vm.Close()
}
