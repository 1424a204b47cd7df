package sim

import "github.com/enthus1ast/ecs"

// Damaged is triggered whenever a creature loses HP.
type Damaged struct {
	Entity ecs.Entity
	Amount int
	Source string
}

// Died is triggered once when a creature's HP reaches zero.
type Died struct {
	Entity ecs.Entity
}
