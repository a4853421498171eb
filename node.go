package cascade

import (
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
)

// creation stamps are only used as a deterministic sort tie-break
var sigStamp atomic.Uint64

// cell holds a node's last computed value. Shared by pointer between a
// source and every node compiled from it.
type cell[T any] struct {
	v  T
	ok bool
}

// sig is the concrete scheduling core shared by every node kind. The
// scheduler only ever sees these; the typed node wrapper hangs the
// recompute body on run.
type sig struct {
	stamp uint64
	idx   int
	kind  string
	subs  mapset.Set[*sig]
	up    []*sig
	run   func() error

	fire  bool
	depth int
}

func (s *sig) listen(l *sig) {
	if l == s {
		return
	}
	s.subs.Add(l)
}

func (s *sig) poke() error {
	fired := s.fire
	s.fire = false
	if !fired {
		return nil
	}
	return s.run()
}

type node[T any] struct {
	core *sig
	act  func() (T, error)
	val  *cell[T]
	keep func(old *T, next T) bool // nil means always notify
}

func newNode[T any](kind string, act func() (T, error)) *node[T] {
	n := &node[T]{act: act, val: &cell[T]{}}
	n.core = &sig{
		stamp: sigStamp.Add(1),
		kind:  kind,
		subs:  mapset.NewThreadUnsafeSet[*sig](),
	}
	n.core.run = n.recompute
	return n
}

// value returns the cached value, computing and caching it on first read.
func (n *node[T]) value() (T, error) {
	if n.val.ok {
		return n.val.v, nil
	}
	v, err := n.act()
	if err != nil {
		var zero T
		return zero, err
	}
	n.val.v, n.val.ok = v, true
	return v, nil
}

func (n *node[T]) recompute() error {
	var old *T
	if n.val.ok {
		prev := n.val.v
		old = &prev
	}
	next, err := n.act()
	if err != nil {
		return err
	}
	n.val.v, n.val.ok = next, true
	if n.keep != nil && !n.keep(old, next) {
		return nil
	}
	for l := range n.core.subs.Iter() {
		l.fire = true
	}
	return nil
}
