package ecs

import "reflect"

// Typed synchronous event bus, embedded in the Registry. Subscriber sets are
// keyed by event type; fan-out order within a set is unspecified.

// Subscription is the explicit handle identifying one connected callback.
// Identity lives in the handle, not in the callback value, so two Connect
// calls with the same function yield two independent subscriptions.
type Subscription struct {
	kind reflect.Type
	id   uint64
}

// Connect subscribes fn to events of type T and returns its handle. The
// callback's parameter type is part of the signature, so connecting a
// callback for a different event type does not compile.
func Connect[T any](r *Registry, fn func(T)) Subscription {
	k := typeKey[T]()
	set, ok := r.subs[k]
	if !ok {
		set = make(map[uint64]any, 4)
		r.subs[k] = set
	}
	r.nextSub++
	set[r.nextSub] = fn
	return Subscription{kind: k, id: r.nextSub}
}

// Disconnect removes the subscription. No-op for an unknown or already
// disconnected handle.
func (r *Registry) Disconnect(sub Subscription) {
	if set, ok := r.subs[sub.kind]; ok {
		delete(set, sub.id)
	}
}

// DisconnectAll drops every subscriber for event type T. No-op if none exist.
func DisconnectAll[T any](r *Registry) {
	delete(r.subs, typeKey[T]())
}

// Trigger synchronously invokes every callback currently connected for T's
// event type. The subscriber set is snapshotted first, so callbacks may
// connect or disconnect freely; changes take effect on the next Trigger.
// A callback that structurally mutates a store the caller is iterating must
// go through RemoveLater or InvalidateEntity.
func Trigger[T any](r *Registry, ev T) {
	set := r.subs[typeKey[T]()]
	if len(set) == 0 {
		return
	}
	handlers := make([]func(T), 0, len(set))
	for _, h := range set {
		handlers = append(handlers, h.(func(T)))
	}
	for _, h := range handlers {
		h(ev)
	}
}
