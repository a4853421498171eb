package cascade

// edge records one wired listener link so an activation can detach
// itself later.
type edge struct {
	dep, sub *sig
}

// program is the per-activation compile state: the arena of every node
// built for one Start call, plus the listener edges it registered.
type program struct {
	arena []*sig
	edges []edge
}

func intern[T any](p *program, kind string, act func() (T, error)) *node[T] {
	n := newNode(kind, act)
	n.core.idx = len(p.arena)
	p.arena = append(p.arena, n.core)
	return n
}

func (p *program) wire(dep, sub *sig) {
	if dep == sub {
		return
	}
	dep.listen(sub)
	p.edges = append(p.edges, edge{dep: dep, sub: sub})
}

// enliven subscribes a node to its notification frontier, the set of
// live nodes whose firing implies its output may have changed.
func (p *program) enliven(n *sig) {
	for _, dep := range n.up {
		p.wire(dep, n)
	}
}
