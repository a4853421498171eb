package cascade

import (
	"errors"
	"fmt"
)

// ErrEmptySource signals a read from a source cell that was never filled.
// Unreachable through the public constructors, which require an initial
// value.
var ErrEmptySource = errors.New("cascade: source read before initial value")

// Effect is a value that performs work when sampled. Flatten runs it on
// every recompute.
type Effect[T any] func() (T, error)

// Signal is an immutable description of a dataflow computation. Building
// one has no side effects; Start compiles it into a live node graph.
// Compiling the same description twice yields independent graphs that
// share nothing except sources.
type Signal[T any] interface {
	compile(p *program) (*node[T], error)
}

type constantSig[T any] struct{ v T }

// Constant describes a value that never changes.
func Constant[T any](v T) Signal[T] {
	return constantSig[T]{v: v}
}

func (s constantSig[T]) compile(p *program) (*node[T], error) {
	v := s.v
	n := intern(p, "constant", func() (T, error) { return v, nil })
	n.val.v, n.val.ok = v, true
	return n, nil
}

type sourceSig[T any] struct{ src *Source[T] }

// From describes a reference to a source. Every node compiled from the
// same source aliases its cell and listener set.
func From[T any](src *Source[T]) Signal[T] {
	return sourceSig[T]{src: src}
}

func (s sourceSig[T]) compile(p *program) (*node[T], error) {
	src := s.src
	n := intern(p, "source", func() (T, error) {
		if !src.val.ok {
			var zero T
			return zero, ErrEmptySource
		}
		return src.val.v, nil
	})
	n.val = src.val
	n.core.subs = src.subs
	n.core.up = []*sig{n.core}
	return n, nil
}

type applySig[A, B any] struct {
	fn  Signal[func(A) B]
	arg Signal[A]
}

// Apply describes applicative composition: the function side and the
// argument side both flow, and the result recomputes when either does.
func Apply[A, B any](fn Signal[func(A) B], arg Signal[A]) Signal[B] {
	return applySig[A, B]{fn: fn, arg: arg}
}

// Map describes applying a fixed function to a signal.
func Map[A, B any](fn func(A) B, s Signal[A]) Signal[B] {
	return Apply(Constant(fn), s)
}

func (s applySig[A, B]) compile(p *program) (*node[B], error) {
	fn, err := s.fn.compile(p)
	if err != nil {
		return nil, err
	}
	arg, err := s.arg.compile(p)
	if err != nil {
		return nil, err
	}
	// The argument is live: it gets poked by the scheduler so its cache
	// is always fresh when this node reads it. The function side stays
	// passive and is recomputed through its action on every run.
	p.enliven(arg.core)
	n := intern(p, "apply", func() (B, error) {
		f, err := fn.act()
		if err != nil {
			var zero B
			return zero, err
		}
		x, err := arg.value()
		if err != nil {
			var zero B
			return zero, err
		}
		return f(x), nil
	})
	n.core.up = append([]*sig{arg.core}, fn.core.up...)
	return n, nil
}

type flattenSig[T any] struct{ s Signal[Effect[T]] }

// Flatten describes a signal of effects whose current effect runs on
// every recompute. Sinks are built from it.
func Flatten[T any](s Signal[Effect[T]]) Signal[T] {
	return flattenSig[T]{s: s}
}

func (s flattenSig[T]) compile(p *program) (*node[T], error) {
	inner, err := s.s.compile(p)
	if err != nil {
		return nil, err
	}
	n := intern(p, "flatten", func() (T, error) {
		eff, err := inner.act()
		if err != nil {
			var zero T
			return zero, err
		}
		return eff()
	})
	n.core.up = append([]*sig(nil), inner.core.up...)
	return n, nil
}

type dynamicSig[T any] struct{ gen func() (Signal[T], error) }

// Dynamic describes a signal whose shape is decided by a generator run
// exactly once, at compile time. The generated description is compiled
// in place.
func Dynamic[T any](gen func() (Signal[T], error)) Signal[T] {
	return dynamicSig[T]{gen: gen}
}

func (s dynamicSig[T]) compile(p *program) (*node[T], error) {
	sub, err := s.gen()
	if err != nil {
		return nil, fmt.Errorf("dynamic generator: %w", err)
	}
	return sub.compile(p)
}

type lazySig[T comparable] struct{ s Signal[T] }

// Lazy describes a change filter: downstream only hears about recomputes
// whose value differs from the previous one.
func Lazy[T comparable](s Signal[T]) Signal[T] {
	return lazySig[T]{s: s}
}

func (s lazySig[T]) compile(p *program) (*node[T], error) {
	inner, err := s.s.compile(p)
	if err != nil {
		return nil, err
	}
	p.enliven(inner.core)
	n := intern(p, "lazy", inner.value)
	n.keep = func(old *T, next T) bool {
		return old == nil || *old != next
	}
	p.wire(inner.core, n.core)
	// Downstream must subscribe to the wrapper itself, never past its
	// gate to the inner node.
	n.core.up = []*sig{n.core}
	return n, nil
}

type bufferedSig[T any] struct{ s Signal[T] }

// Buffered describes a propagation barrier: the node keeps recomputing
// and stays sample-able, but never notifies downstream.
func Buffered[T any](s Signal[T]) Signal[T] {
	return bufferedSig[T]{s: s}
}

func (s bufferedSig[T]) compile(p *program) (*node[T], error) {
	inner, err := s.s.compile(p)
	if err != nil {
		return nil, err
	}
	p.enliven(inner.core)
	n := intern(p, "buffered", inner.value)
	n.keep = func(*T, T) bool { return false }
	p.wire(inner.core, n.core)
	n.core.up = []*sig{n.core}
	return n, nil
}
