package sim

import (
	"time"

	"github.com/enthus1ast/ecs"
	"github.com/enthus1ast/ecs/internal/scripting"
)

// PoisonSystem applies per-tick poison damage to every creature holding both
// Health and Poison, triggers Damaged/Died events and expires worn-off
// poison through the deferred removal queue. Phase 0 (Update).
type PoisonSystem struct {
	reg *ecs.Registry
	lua *scripting.Engine // may be nil
}

func NewPoisonSystem(reg *ecs.Registry, lua *scripting.Engine) *PoisonSystem {
	return &PoisonSystem{reg: reg, lua: lua}
}

func (s *PoisonSystem) Phase() Phase { return PhaseUpdate }

func (s *PoisonSystem) Update(_ time.Duration) {
	healths := ecs.StoreOf[Health](s.reg)
	poisons := ecs.StoreOf[Poison](s.reg)
	for e := range ecs.Join2[Poison, Health](s.reg) {
		p, _ := poisons.Get(e)
		h, _ := healths.Get(e)

		dmg := p.PerTick
		if s.lua != nil {
			dmg = s.lua.CalcPoisonDamage(p.PerTick, p.TicksLeft)
		}
		if dmg > 0 && h.Cur > 0 {
			h.Cur -= dmg
			if h.Cur < 0 {
				h.Cur = 0
			}
			healths.Set(e, h)
			ecs.Trigger(s.reg, Damaged{Entity: e, Amount: dmg, Source: "poison"})
			if h.Cur == 0 {
				ecs.Trigger(s.reg, Died{Entity: e})
			}
		}

		p.TicksLeft--
		if p.TicksLeft <= 0 {
			// Structural removal mid-iteration goes through the queue.
			ecs.RemoveLater[Poison](s.reg, e)
		} else {
			poisons.Set(e, p)
		}
	}
}
