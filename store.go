package ecs

// anyStore is the type-erased face of a Store[T] so the Registry can walk
// every store on entity destruction without knowing component types.
type anyStore interface {
	// remove fires the registered destructor (if any) for e's component and
	// deletes the entry. No-op when e has no entry.
	remove(r *Registry, e Entity)
	Has(e Entity) bool
	Len() int
}

// Store is a typed map store holding at most one component of type T per
// entity. Stores are owned by a Registry, created lazily on first use and
// never removed; an empty store persists. No reflect on the data path, pure
// generics.
type Store[T any] struct {
	data map[Entity]T
	dtor func(*Registry, Entity, T)
}

func newStore[T any]() *Store[T] {
	return &Store[T]{
		data: make(map[Entity]T, 64),
	}
}

// Set inserts or overwrites e's component. Entity validity is not checked.
func (s *Store[T]) Set(e Entity, v T) {
	s.data[e] = v
}

// Get returns e's component and whether an entry exists. Unlike the Registry
// level Get, this looks at the raw store only and ignores entity validity.
func (s *Store[T]) Get(e Entity) (T, bool) {
	v, ok := s.data[e]
	return v, ok
}

// Has reports whether the store holds an entry for e.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.data[e]
	return ok
}

// Len returns the number of entries, valid or not.
func (s *Store[T]) Len() int {
	return len(s.data)
}

// Each calls fn for every entry in the store in unspecified order. fn must
// not structurally mutate the store; use RemoveLater for that.
func (s *Store[T]) Each(fn func(Entity, T)) {
	for e, v := range s.data {
		fn(e, v)
	}
}

func (s *Store[T]) remove(r *Registry, e Entity) {
	v, ok := s.data[e]
	if !ok {
		return
	}
	if s.dtor != nil {
		s.dtor(r, e, v)
	}
	delete(s.data, e)
}
