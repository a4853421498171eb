package cascade

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Activation is the owning handle for one compiled graph. Dropping it
// without Close keeps the graph listening to its sources.
type Activation[T any] struct {
	ID   uuid.UUID
	root *node[T]
	prog *program
}

// Start compiles a description into a live graph and subscribes the root
// so pushes reach it.
func Start[T any](s Signal[T]) (*Activation[T], error) {
	p := &program{}
	root, err := s.compile(p)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	p.enliven(root.core)
	return &Activation[T]{ID: uuid.New(), root: root, prog: p}, nil
}

// Sink runs fn on every value the signal produces.
func Sink[T any](s Signal[T], fn func(T) error) (*Activation[T], error) {
	return Start(Flatten(Map(func(v T) Effect[T] {
		return func() (T, error) { return v, fn(v) }
	}, s)))
}

// Value samples the root, computing it if it was never poked.
func (a *Activation[T]) Value() (T, error) {
	return a.root.value()
}

// Close detaches every listener edge this activation registered. Pushes
// on shared sources no longer reach the graph.
func (a *Activation[T]) Close() {
	for _, e := range a.prog.edges {
		e.dep.subs.Remove(e.sub)
	}
	a.prog.edges = nil
}

// Dump renders the compiled topology, one node per line in compile
// order, with listener edges that stay inside this activation. The
// output is deterministic.
func (a *Activation[T]) Dump() string {
	mine := make(map[*sig]struct{}, len(a.prog.arena))
	for _, s := range a.prog.arena {
		mine[s] = struct{}{}
	}
	var sb strings.Builder
	for _, s := range a.prog.arena {
		fmt.Fprintf(&sb, "n%d %s ->", s.idx, s.kind)
		var subs []int
		for l := range s.subs.Iter() {
			if _, ok := mine[l]; ok {
				subs = append(subs, l.idx)
			}
		}
		sort.Ints(subs)
		for _, j := range subs {
			fmt.Fprintf(&sb, " n%d", j)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Fingerprint hashes the topology dump. Structurally identical
// compositions fingerprint equal.
func (a *Activation[T]) Fingerprint() uint64 {
	return xxhash.Sum64String(a.Dump())
}
