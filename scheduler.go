package cascade

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// propagate runs one full pass from a source's direct listeners.
//
// Three phases over the reachable subgraph:
//
//	reach   collect every transitively reachable node, reset its depth
//	mark    longest-path depths; a node is re-expanded only when its
//	        depth improves, so the walk stays polynomial on diamonds
//	poke    visit ascending by (depth, creation stamp); a node runs only
//	        if something upstream actually notified it this pass
//
// Ordering by longest path guarantees every input a node reads was
// already recomputed in the same pass, so each node runs at most once
// and never observes a stale half of a diamond.
func propagate(direct mapset.Set[*sig]) error {
	reached := mapset.NewThreadUnsafeSet[*sig]()
	var walk func(s *sig)
	walk = func(s *sig) {
		if !reached.Add(s) {
			return
		}
		s.depth = 0
		for l := range s.subs.Iter() {
			walk(l)
		}
	}
	for l := range direct.Iter() {
		walk(l)
	}

	var mark func(s *sig, depth int)
	mark = func(s *sig, depth int) {
		if s.depth >= depth {
			return
		}
		s.depth = depth
		for l := range s.subs.Iter() {
			mark(l, depth+1)
		}
	}
	for l := range direct.Iter() {
		mark(l, 1)
	}

	plan := reached.ToSlice()
	sort.Slice(plan, func(i, j int) bool {
		if plan[i].depth != plan[j].depth {
			return plan[i].depth < plan[j].depth
		}
		return plan[i].stamp < plan[j].stamp
	})

	for l := range direct.Iter() {
		l.fire = true
	}
	for _, s := range plan {
		if err := s.poke(); err != nil {
			// An aborted pass must not leave stale marks behind: a
			// node marked here but never poked would fire spuriously
			// on the next event that reaches it.
			for _, rest := range plan {
				rest.fire = false
			}
			return fmt.Errorf("propagation aborted: %w", err)
		}
	}
	return nil
}
