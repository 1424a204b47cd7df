package sim

import (
	"time"

	"github.com/enthus1ast/ecs"
	"go.uber.org/zap"
)

// DeathSystem collects Died events during the tick and invalidates the dead
// entities in Phase 1 (PostUpdate), before CleanupSystem destroys them.
// Invalidation never mutates a store, so the triggering system may still be
// iterating one.
type DeathSystem struct {
	reg   *ecs.Registry
	log   *zap.Logger
	dead  []ecs.Entity
	Total int // lifetime death count
}

func NewDeathSystem(reg *ecs.Registry, log *zap.Logger) *DeathSystem {
	s := &DeathSystem{reg: reg, log: log}
	ecs.Connect(reg, func(ev Died) {
		s.dead = append(s.dead, ev.Entity)
	})
	return s
}

func (s *DeathSystem) Phase() Phase { return PhasePostUpdate }

func (s *DeathSystem) Update(_ time.Duration) {
	for _, e := range s.dead {
		if !s.reg.Valid(e) {
			continue // already invalidated this tick
		}
		name, _ := ecs.Get[Name](s.reg, e)
		s.log.Info("creature died",
			zap.Uint64("entity", uint64(e)),
			zap.String("name", name.Value))
		s.reg.InvalidateEntity(e)
		s.Total++
	}
	s.dead = s.dead[:0]
}
