package sim

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseUpdate     Phase = iota // 0: simulation logic (regen, poison)
	PhasePostUpdate              // 1: reactions to this tick's events
	PhaseCleanup                 // 2: registry maintenance (deferred removals, invalidated entities)
)

// System is the interface every simulation system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
