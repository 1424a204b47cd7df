package sim

// Component types attached to simulated creatures.

type Health struct {
	Cur, Max int
}

type Regen struct {
	PerTick int
}

type Poison struct {
	PerTick   int
	TicksLeft int
}

type Name struct {
	Value string
}
