package ecs

import (
	"fmt"
	"reflect"
)

// NoStoreError reports a Get for a component type that was never added to the
// registry.
type NoStoreError struct {
	Type reflect.Type
}

func (e *NoStoreError) Error() string {
	return fmt.Sprintf("ecs: no store for component type %v", e.Type)
}

// InvalidEntityError reports a Get against an entity that is not in the valid
// set (never created, invalidated or destroyed).
type InvalidEntityError struct {
	Entity Entity
}

func (e *InvalidEntityError) Error() string {
	return fmt.Sprintf("ecs: entity %d is not valid", e.Entity)
}

// MissingComponentError reports a Get for a store that exists but holds no
// entry for the entity.
type MissingComponentError struct {
	Entity Entity
	Type   reflect.Type
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("ecs: entity %d has no %v component", e.Entity, e.Type)
}
