package ecs

// Entity is an opaque numeric handle identifying one logical object in a
// Registry. Handles are unique for the lifetime of the Registry and
// monotonically increasing unless explicitly supplied via NewEntityAt.
type Entity uint64

// allocator issues entity handles and tracks the valid and
// pending-invalidated sets.
type allocator struct {
	next  Entity
	alive map[Entity]struct{}
	stale map[Entity]struct{} // invalidated, destroyed on next Cleanup
}

func newAllocator() allocator {
	return allocator{
		alive: make(map[Entity]struct{}, 256),
		stale: make(map[Entity]struct{}, 64),
	}
}

// NewEntity issues a fresh entity handle and marks it valid.
func (r *Registry) NewEntity() Entity {
	r.next++
	e := r.next
	r.alive[e] = struct{}{}
	return e
}

// NewEntityAt adopts the given id as the new counter baseline, marks it valid
// and returns it. No collision check is performed against previously issued
// handles, including handles of destroyed entities; supplying a colliding id
// is a caller error.
func (r *Registry) NewEntityAt(id Entity) Entity {
	r.next = id
	r.alive[id] = struct{}{}
	return id
}

// Valid reports whether e is in the valid set. Invalidated and destroyed
// entities are not valid.
func (r *Registry) Valid(e Entity) bool {
	_, ok := r.alive[e]
	return ok
}

// InvalidateEntity removes e from the valid set and queues it for destruction
// on the next Cleanup. It touches no component store, so it is safe to call
// while iterating one.
func (r *Registry) InvalidateEntity(e Entity) {
	delete(r.alive, e)
	r.stale[e] = struct{}{}
}

// InvalidateAll invalidates every valid entity except those listed in keep.
func (r *Registry) InvalidateAll(keep ...Entity) {
	kept := make(map[Entity]struct{}, len(keep))
	for _, e := range keep {
		kept[e] = struct{}{}
	}
	for e := range r.alive {
		if _, ok := kept[e]; !ok {
			r.InvalidateEntity(e)
		}
	}
}
