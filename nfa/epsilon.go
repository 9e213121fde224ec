package nfa

// EliminateEpsilon rewrites the graph in place into an equivalent automaton
// without epsilon transitions, preserving the accepted language, and returns
// the same graph.
//
// The rewrite runs two passes:
//
//  1. Closure: for every state u, every state epsilon-reachable from u
//     (over any number of hops) gains a direct epsilon edge from u, and u
//     becomes FINAL if its closure contains a FINAL state.
//  2. Flattening: every surviving epsilon edge u -> v now stands for v's
//     entire closure, so v's non-epsilon transitions are copied onto u.
//     All epsilon edges are then stripped and each adjacency list is
//     sorted by (destination, symbol) and deduplicated.
//
// Post-condition: no transition carries the Epsilon marker and no adjacency
// list contains a duplicate (destination, symbol) pair. The caller must not
// retain the pre-elimination view of the graph.
//
// Applying EliminateEpsilon to an already epsilon-free graph is a no-op.
func (g *Graph) EliminateEpsilon() *Graph {
	g.expandClosures()
	g.flattenAndStrip()
	return g
}

// expandClosures is pass 1: flatten multi-hop epsilon chains into single
// hops and propagate the FINAL flag backwards along them.
//
// The traversal is an explicit-stack DFS over epsilon edges only, made
// cycle-safe by a per-source visited marker that is reset between sources.
func (g *Graph) expandClosures() {
	var stack []StateID
	var reached []StateID

	for i := range g.states {
		u := StateID(i)
		stack = append(stack[:0], u)
		reached = reached[:0]
		g.states[u].flags |= flagVisited

		for len(stack) > 0 {
			s := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, tr := range g.states[s].transitions {
				if tr.Symbol != Epsilon {
					continue
				}
				if g.states[tr.Target].flags&flagVisited != 0 {
					continue
				}
				g.states[tr.Target].flags |= flagVisited
				reached = append(reached, tr.Target)
				stack = append(stack, tr.Target)
			}
		}

		// u itself is excluded from its own closure edges; a cycle back
		// to u is cut by the visited marker set above.
		for _, v := range reached {
			g.AddTransition(u, v, Epsilon)
			if g.states[v].flags&FlagFinal != 0 {
				g.states[u].flags |= FlagFinal
			}
		}

		g.states[u].flags &^= flagVisited
		for _, v := range reached {
			g.states[v].flags &^= flagVisited
		}
	}
}

// flattenAndStrip is pass 2: copy each epsilon target's non-epsilon
// transitions onto the source, drop every epsilon edge and normalize the
// adjacency lists.
func (g *Graph) flattenAndStrip() {
	var epsTargets []StateID

	for i := range g.states {
		u := StateID(i)
		epsTargets = epsTargets[:0]
		for _, tr := range g.states[u].transitions {
			if tr.Symbol == Epsilon {
				epsTargets = append(epsTargets, tr.Target)
			}
		}

		for _, v := range epsTargets {
			if v == u {
				continue
			}
			for _, tr := range g.states[v].transitions {
				if tr.Symbol != Epsilon {
					g.AddTransition(u, tr.Target, tr.Symbol)
				}
			}
		}

		kept := g.states[u].transitions[:0]
		for _, tr := range g.states[u].transitions {
			if tr.Symbol != Epsilon {
				kept = append(kept, tr)
			}
		}
		g.states[u].transitions = sortAndDedup(kept)
	}
}
