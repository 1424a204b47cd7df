package sim

import (
	"github.com/enthus1ast/ecs"
	"github.com/enthus1ast/ecs/internal/data"
)

// SpawnFromTemplate creates one entity with the template's components.
func SpawnFromTemplate(r *ecs.Registry, t *data.Template) ecs.Entity {
	e := r.NewEntity()
	ecs.Add(r, e, Name{Value: t.Name})
	ecs.Add(r, e, Health{Cur: t.HP, Max: t.HP})
	if t.RegenPerTick > 0 {
		ecs.Add(r, e, Regen{PerTick: t.RegenPerTick})
	}
	if t.PoisonPerTick > 0 {
		ecs.Add(r, e, Poison{PerTick: t.PoisonPerTick, TicksLeft: t.PoisonTicks})
	}
	return e
}

// SpawnScenario creates every entity the scenario's spawn list asks for and
// returns how many were created.
func SpawnScenario(r *ecs.Registry, scn *data.Scenario) int {
	n := 0
	for _, sp := range scn.Spawns {
		t, ok := scn.Template(sp.Template)
		if !ok {
			continue
		}
		for i := 0; i < sp.Count; i++ {
			SpawnFromTemplate(r, t)
			n++
		}
	}
	return n
}
