// Package ecs is an in-memory entity-component registry: arbitrarily typed
// components keyed by entity handle and component type, with deferred entity
// destruction, per-type destructor hooks and a synchronous typed event bus.
//
// The Registry is single-threaded by contract. All deferred semantics are
// explicit queues drained by Update, which converts mutate-during-iteration
// hazards into mutate-after-iteration by construction.
package ecs

import "reflect"

// Registry owns all component stores, the destructor table, the entity
// lifecycle sets, the deferred-removal queue and the event subscriber table.
// It is the sole root of ownership; everything else holds entities by handle.
type Registry struct {
	allocator
	stores  map[reflect.Type]anyStore
	pending []pendingRemoval
	subs    map[reflect.Type]map[uint64]any
	nextSub uint64
}

// pendingRemoval is one queued RemoveLater, drained by Update in enqueue order.
type pendingRemoval struct {
	e     Entity
	store anyStore
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		allocator: newAllocator(),
		stores:    make(map[reflect.Type]anyStore, 16),
		pending:   make([]pendingRemoval, 0, 64),
		subs:      make(map[reflect.Type]map[uint64]any),
	}
}

// typeKey returns the stable identity used to route T to its store or
// subscriber set. Reflection is used for identity only, never on the data path.
func typeKey[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// storeFor returns T's store, creating it on first use.
func storeFor[T any](r *Registry) *Store[T] {
	k := typeKey[T]()
	if s, ok := r.stores[k]; ok {
		return s.(*Store[T])
	}
	s := newStore[T]()
	r.stores[k] = s
	return s
}

// Add attaches v to e, overwriting any prior component of type T. Entity
// validity is not checked: components attached to an invalidated entity are
// simply reclaimed when it is destroyed.
func Add[T any](r *Registry, e Entity, v T) {
	storeFor[T](r).Set(e, v)
}

// Get returns e's component of type T.
//
// The default build enforces the access contract and fails with NoStoreError
// when nothing of type T was ever added to the registry, InvalidEntityError
// when e is not valid, and MissingComponentError when the store has no entry
// for e. Building with -tags ecsrelease elides all three checks; a miss then
// returns the zero value with a nil error.
func Get[T any](r *Registry, e Entity) (T, error) {
	var zero T
	s, ok := r.stores[typeKey[T]()]
	if checksEnabled {
		if !ok {
			return zero, &NoStoreError{Type: typeKey[T]()}
		}
		if !r.Valid(e) {
			return zero, &InvalidEntityError{Entity: e}
		}
	}
	if !ok {
		return zero, nil
	}
	v, ok := s.(*Store[T]).Get(e)
	if checksEnabled && !ok {
		return zero, &MissingComponentError{Entity: e, Type: typeKey[T]()}
	}
	return v, nil
}

// Has reports whether e is valid and holds a component of type T. It is the
// safe existence probe: absent store, invalid entity and absent entry all
// yield false, never an error.
func Has[T any](r *Registry, e Entity) bool {
	if !r.Valid(e) {
		return false
	}
	s, ok := r.stores[typeKey[T]()]
	return ok && s.Has(e)
}

// Remove deletes e's component of type T, invoking the registered destructor
// first. No-op when e has no such component. Entity validity is untouched.
// Must not be called while iterating T's store; use RemoveLater there.
func Remove[T any](r *Registry, e Entity) {
	if s, ok := r.stores[typeKey[T]()]; ok {
		s.remove(r, e)
	}
}

// RemoveLater queues removal of e's component of type T for the next Update,
// deferring the structural mutation out of an in-progress iteration.
func RemoveLater[T any](r *Registry, e Entity) {
	r.pending = append(r.pending, pendingRemoval{e: e, store: storeFor[T](r)})
}

// OnRemove registers fn as the destructor for components of type T,
// overwriting any previous one. It is invoked synchronously with the
// component value just before the entry is deleted, on Remove, queued
// removals and entity destruction alike.
func OnRemove[T any](r *Registry, fn func(*Registry, Entity, T)) {
	storeFor[T](r).dtor = fn
}

// StoreOf returns the raw store for T, creating it on first use. The store
// must not be structurally mutated while one of its iterations is in flight.
func StoreOf[T any](r *Registry) *Store[T] {
	return storeFor[T](r)
}

// DestroyEntity synchronously destroys e: every store holding e fires its
// destructor (if registered) and drops the entry, then e leaves the valid
// set. Must not be called while iterating any component store.
func (r *Registry) DestroyEntity(e Entity) {
	for _, s := range r.stores {
		s.remove(r, e)
	}
	delete(r.alive, e)
	delete(r.stale, e)
}

// DestroyAll destroys every valid entity. The valid set is snapshotted first
// so destructors may create or invalidate entities without disturbing the
// walk.
func (r *Registry) DestroyAll() {
	snapshot := make([]Entity, 0, len(r.alive))
	for e := range r.alive {
		snapshot = append(snapshot, e)
	}
	for _, e := range snapshot {
		r.DestroyEntity(e)
	}
}

// Cleanup destroys every invalidated entity and clears the pending set.
func (r *Registry) Cleanup() {
	if len(r.stale) == 0 {
		return
	}
	queued := make([]Entity, 0, len(r.stale))
	for e := range r.stale {
		queued = append(queued, e)
	}
	clear(r.stale)
	for _, e := range queued {
		r.DestroyEntity(e)
	}
}

// Update is the periodic maintenance tick: Cleanup, then the deferred
// component removals in enqueue order. Call once per logical tick.
func (r *Registry) Update() {
	r.Cleanup()
	pending := r.pending
	r.pending = nil // destructors may enqueue further removals
	for _, p := range pending {
		p.store.remove(r, p.e)
	}
}
