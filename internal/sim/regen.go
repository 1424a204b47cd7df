package sim

import (
	"time"

	"github.com/enthus1ast/ecs"
	"github.com/enthus1ast/ecs/internal/scripting"
)

// RegenSystem restores HP for every creature holding both Health and Regen.
// Phase 0 (Update). The amount per tick comes from Lua when a script engine
// is attached; otherwise the component's flat value applies.
type RegenSystem struct {
	reg *ecs.Registry
	lua *scripting.Engine // may be nil
}

func NewRegenSystem(reg *ecs.Registry, lua *scripting.Engine) *RegenSystem {
	return &RegenSystem{reg: reg, lua: lua}
}

func (s *RegenSystem) Phase() Phase { return PhaseUpdate }

func (s *RegenSystem) Update(_ time.Duration) {
	healths := ecs.StoreOf[Health](s.reg)
	regens := ecs.StoreOf[Regen](s.reg)
	// Regen is the smaller store, so it leads the join.
	for e := range ecs.Join2[Regen, Health](s.reg) {
		h, _ := healths.Get(e)
		if h.Cur <= 0 || h.Cur >= h.Max {
			continue
		}
		rg, _ := regens.Get(e)
		amount := rg.PerTick
		if s.lua != nil {
			amount = s.lua.CalcRegenAmount(scripting.RegenContext{
				Cur:     h.Cur,
				Max:     h.Max,
				PerTick: rg.PerTick,
			})
		}
		h.Cur += amount
		if h.Cur > h.Max {
			h.Cur = h.Max
		}
		healths.Set(e, h) // overwrite of a present key, not a structural mutation
	}
}
