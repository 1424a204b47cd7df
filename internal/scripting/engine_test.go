package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func newTestEngine(t *testing.T, script string) *Engine {
	t.Helper()
	dir := t.TempDir()
	if script != "" {
		if err := os.WriteFile(filepath.Join(dir, "formulas.lua"), []byte(script), 0644); err != nil {
			t.Fatal(err)
		}
	}
	e, err := NewEngine(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

func TestCalcRegenAmountFromLua(t *testing.T) {
	e := newTestEngine(t, `
function calc_regen_amount(ctx)
    return ctx.per_tick * 3
end
`)
	got := e.CalcRegenAmount(RegenContext{Cur: 5, Max: 20, PerTick: 2})
	if got != 6 {
		t.Errorf("calc_regen_amount = %d, want 6", got)
	}
}

func TestCalcRegenAmountFallback(t *testing.T) {
	e := newTestEngine(t, "") // no scripts at all
	got := e.CalcRegenAmount(RegenContext{Cur: 5, Max: 20, PerTick: 2})
	if got != 2 {
		t.Errorf("fallback should return the flat per-tick amount, got %d", got)
	}
}

func TestCalcPoisonDamage(t *testing.T) {
	e := newTestEngine(t, `
function calc_poison_damage(per_tick, ticks_left)
    if ticks_left <= 10 then
        return per_tick * 2
    end
    return per_tick
end
`)
	if got := e.CalcPoisonDamage(3, 50); got != 3 {
		t.Errorf("early poison damage = %d, want 3", got)
	}
	if got := e.CalcPoisonDamage(3, 5); got != 6 {
		t.Errorf("late poison damage = %d, want 6", got)
	}
}

func TestCalcPoisonDamageFallback(t *testing.T) {
	e := newTestEngine(t, "")
	if got := e.CalcPoisonDamage(4, 1); got != 4 {
		t.Errorf("fallback poison damage = %d, want 4", got)
	}
}

func TestNewEngineMissingDir(t *testing.T) {
	e, err := NewEngine(filepath.Join(t.TempDir(), "absent"), zap.NewNop())
	if err != nil {
		t.Fatalf("missing script dir should be skipped, got %v", err)
	}
	e.Close()
}

func TestNewEngineBadScript(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.lua"), []byte("function ("), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewEngine(dir, zap.NewNop()); err == nil {
		t.Error("expected an error for a lua syntax error")
	}
}
