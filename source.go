package cascade

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Source is a mutable root cell. Every node compiled from the same source
// aliases its cell and listener set, so a push reaches all activations.
type Source[T any] struct {
	val  *cell[T]
	subs mapset.Set[*sig]
	gate func(old, next T) bool
}

func NewSource[T any](initial T) *Source[T] {
	return &Source[T]{
		val:  &cell[T]{v: initial, ok: true},
		subs: mapset.NewThreadUnsafeSet[*sig](),
	}
}

// NewSourceWithPredicate gates propagation: the cell always takes the new
// value, but listeners only run when pred(old, next) is true.
func NewSourceWithPredicate[T any](pred func(old, next T) bool, initial T) *Source[T] {
	s := NewSource(initial)
	s.gate = pred
	return s
}

func (s *Source[T]) Value() T {
	return s.val.v
}

// Push stores v and runs one propagation pass over the source's listeners.
// A rejected predicate still persists v.
func (s *Source[T]) Push(v T) error {
	old := s.val.v
	s.val.v, s.val.ok = v, true
	if s.gate != nil && !s.gate(old, v) {
		return nil
	}
	return propagate(s.subs)
}
