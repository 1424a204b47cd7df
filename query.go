package ecs

import "iter"

// Query iteration. All sequences are lazy, finite and one-shot per call;
// calling the function again restarts from the store's current contents.
// Iteration order over a store is unspecified. The consumer must not
// structurally mutate the store being walked (no Remove, no DestroyEntity);
// InvalidateEntity and RemoveLater are the safe in-iteration mutations.

// Entities yields every valid entity present in T's store.
func Entities[T any](r *Registry) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		s, ok := r.stores[typeKey[T]()]
		if !ok {
			return
		}
		for e := range s.(*Store[T]).data {
			if !r.Valid(e) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// AllEntities yields every entity present in T's store, including
// invalidated ones not yet cleaned up.
func AllEntities[T any](r *Registry) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		s, ok := r.stores[typeKey[T]()]
		if !ok {
			return
		}
		for e := range s.(*Store[T]).data {
			if !yield(e) {
				return
			}
		}
	}
}

// EntitiesWith yields every valid entity in T's store together with its
// component value.
func EntitiesWith[T any](r *Registry) iter.Seq2[Entity, T] {
	return func(yield func(Entity, T) bool) {
		s, ok := r.stores[typeKey[T]()]
		if !ok {
			return
		}
		for e, v := range s.(*Store[T]).data {
			if !r.Valid(e) {
				continue
			}
			if !yield(e, v) {
				return
			}
		}
	}
}

// Join2 yields every valid entity holding both A and B. It walks A's store
// and probes B, so iteration cost is O(len(A's store)); order the type
// arguments by expected smallest store. No automatic reordering is done.
func Join2[A, B any](r *Registry) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for e := range Entities[A](r) {
			if Has[B](r, e) {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Join3 yields every valid entity holding A, B and C. Walks A's store and
// probes the rest, as Join2.
func Join3[A, B, C any](r *Registry) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for e := range Entities[A](r) {
			if Has[B](r, e) && Has[C](r, e) {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Intersect2 yields every valid entity holding both A and B by intersecting
// the two stores' key sets, walking the smaller one. Same result set as
// Join2[A, B] in a different (unspecified) order, without the per-entity
// store lookups.
func Intersect2[A, B any](r *Registry) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		ka, oka := r.stores[typeKey[A]()]
		kb, okb := r.stores[typeKey[B]()]
		if !oka || !okb {
			return
		}
		sa, sb := ka.(*Store[A]), kb.(*Store[B])
		if sa.Len() <= sb.Len() {
			for e := range sa.data {
				if sb.Has(e) && r.Valid(e) {
					if !yield(e) {
						return
					}
				}
			}
		} else {
			for e := range sb.data {
				if sa.Has(e) && r.Valid(e) {
					if !yield(e) {
						return
					}
				}
			}
		}
	}
}
