// Package component holds the pure-data gameplay components and the
// registration machinery that assigns each component type its world
// storage key.
package component

import (
	"errors"
	"sync/atomic"
)

// ComponentID keys a component's sparse storage inside a world. IDs
// start at 1 so the zero value always reads as unregistered.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentKind pairs a storage key with its component type. Kinds come
// from NewComponentKind or a handle; the zero value is invalid.
type ComponentKind[T any] struct {
	id ComponentID
}

// NewComponentKind registers a fresh kind for T.
func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// ComponentHandle wraps a kind for the package-level component
// variables declared alongside each component type.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

// NewComponent registers a component type and returns its handle.
func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)
