package ecs

import "testing"

func collect(seq func(func(Entity) bool)) map[Entity]bool {
	got := make(map[Entity]bool)
	for e := range seq {
		got[e] = true
	}
	return got
}

func TestEntitiesFiltersValidity(t *testing.T) {
	r := NewRegistry()
	a := r.NewEntity()
	b := r.NewEntity()
	Add(r, a, Position{X: 1})
	Add(r, b, Position{X: 2})
	r.InvalidateEntity(b)

	got := collect(Entities[Position](r))
	if len(got) != 1 || !got[a] {
		t.Errorf("expected only valid entity %d, got %v", a, got)
	}

	all := collect(AllEntities[Position](r))
	if len(all) != 2 || !all[a] || !all[b] {
		t.Errorf("AllEntities should include invalidated entities, got %v", all)
	}
}

func TestEntitiesOfUnknownType(t *testing.T) {
	r := NewRegistry()
	r.NewEntity()
	for range Entities[Velocity](r) {
		t.Fatal("no store of this type, sequence should be empty")
	}
}

func TestEntitiesWithYieldsValues(t *testing.T) {
	r := NewRegistry()
	want := map[Entity]int{}
	for i := 1; i <= 5; i++ {
		e := r.NewEntity()
		Add(r, e, Position{X: i})
		want[e] = i
	}
	seen := 0
	for e, p := range EntitiesWith[Position](r) {
		if want[e] != p.X {
			t.Errorf("entity %d: got %+v, want X=%d", e, p, want[e])
		}
		seen++
	}
	if seen != len(want) {
		t.Errorf("yielded %d entities, want %d", seen, len(want))
	}
}

func TestEntitiesReiterable(t *testing.T) {
	r := NewRegistry()
	Add(r, r.NewEntity(), Position{})
	Add(r, r.NewEntity(), Position{})
	first := collect(Entities[Position](r))
	second := collect(Entities[Position](r))
	if len(first) != 2 || len(second) != 2 {
		t.Errorf("sequence should restart per call: %v / %v", first, second)
	}
}

func TestEntitiesEarlyBreak(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 10; i++ {
		Add(r, r.NewEntity(), Position{})
	}
	n := 0
	for range Entities[Position](r) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("break should stop the sequence, visited %d", n)
	}
}

// joinFixture builds entities with disjoint and overlapping component sets.
// Entities holding all of Position, Velocity and Health are returned.
func joinFixture(t *testing.T, r *Registry) map[Entity]bool {
	t.Helper()
	all3 := make(map[Entity]bool)
	for i := 0; i < 4; i++ { // Position only
		Add(r, r.NewEntity(), Position{X: i})
	}
	for i := 0; i < 3; i++ { // Position + Velocity
		e := r.NewEntity()
		Add(r, e, Position{})
		Add(r, e, Velocity{DX: i})
	}
	for i := 0; i < 2; i++ { // Velocity + Health
		e := r.NewEntity()
		Add(r, e, Velocity{})
		Add(r, e, Health{Cur: i})
	}
	for i := 0; i < 3; i++ { // all three
		e := r.NewEntity()
		Add(r, e, Position{})
		Add(r, e, Velocity{})
		Add(r, e, Health{})
		all3[e] = true
	}
	return all3
}

func TestJoin2MatchesManualEnumeration(t *testing.T) {
	r := NewRegistry()
	joinFixture(t, r)

	want := make(map[Entity]bool)
	for e := range Entities[Position](r) {
		if Has[Velocity](r, e) {
			want[e] = true
		}
	}
	got := collect(Join2[Position, Velocity](r))
	if len(got) != 6 {
		t.Errorf("expected 6 Position+Velocity entities, got %d", len(got))
	}
	for e := range want {
		if !got[e] {
			t.Errorf("join missed entity %d", e)
		}
	}
	if len(got) != len(want) {
		t.Errorf("join yielded %d, manual enumeration %d", len(got), len(want))
	}
}

func TestJoin3YieldsOnlyFullHolders(t *testing.T) {
	r := NewRegistry()
	all3 := joinFixture(t, r)
	got := collect(Join3[Position, Velocity, Health](r))
	if len(got) != len(all3) {
		t.Fatalf("3-way join yielded %d entities, want %d", len(got), len(all3))
	}
	for e := range all3 {
		if !got[e] {
			t.Errorf("3-way join missed entity %d", e)
		}
	}
}

func TestProbeAndIntersectJoinsAgree(t *testing.T) {
	r := NewRegistry()
	joinFixture(t, r)

	probe := collect(Join2[Position, Velocity](r))
	inter := collect(Intersect2[Position, Velocity](r))
	if len(probe) != len(inter) {
		t.Fatalf("strategy mismatch: probe %d entities, intersect %d", len(probe), len(inter))
	}
	for e := range probe {
		if !inter[e] {
			t.Errorf("intersect join missed entity %d", e)
		}
	}

	// Argument order must not change the result set either.
	swapped := collect(Intersect2[Velocity, Position](r))
	if len(swapped) != len(inter) {
		t.Errorf("intersect should be symmetric: %d vs %d", len(swapped), len(inter))
	}
}

func TestJoinsSkipInvalidated(t *testing.T) {
	r := NewRegistry()
	e := r.NewEntity()
	Add(r, e, Position{})
	Add(r, e, Velocity{})
	r.InvalidateEntity(e)
	if got := collect(Join2[Position, Velocity](r)); len(got) != 0 {
		t.Errorf("probe join yielded invalidated entity: %v", got)
	}
	if got := collect(Intersect2[Position, Velocity](r)); len(got) != 0 {
		t.Errorf("intersect join yielded invalidated entity: %v", got)
	}
}

func TestInvalidateDuringIteration(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 8; i++ {
		e := r.NewEntity()
		Add(r, e, Health{Cur: i})
	}
	// Invalidation performs no store mutation, so it is legal mid-iteration.
	for e, h := range EntitiesWith[Health](r) {
		if h.Cur%2 == 0 {
			r.InvalidateEntity(e)
		}
	}
	r.Cleanup()
	if got := StoreOf[Health](r).Len(); got != 4 {
		t.Errorf("expected 4 survivors, store has %d", got)
	}
}
