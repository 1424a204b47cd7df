package sim

import (
	"time"

	"github.com/enthus1ast/ecs"
)

// CleanupSystem runs the registry maintenance tick at tick end: destroys
// invalidated entities and drains the deferred component removals.
// Phase 2 (Cleanup).
type CleanupSystem struct {
	reg *ecs.Registry
}

func NewCleanupSystem(reg *ecs.Registry) *CleanupSystem {
	return &CleanupSystem{reg: reg}
}

func (s *CleanupSystem) Phase() Phase { return PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	s.reg.Update()
}
