// Package render turns finished automata into human-readable output: a
// Graphviz DOT digraph and a textual component listing. It only ever reads
// the automata it is given.
package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/coregx/redfa/dfa"
	"github.com/coregx/redfa/nfa"
)

// errWriter accumulates the first write error so that the emitters can
// stay free of per-line error plumbing.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// WriteDOT writes a Graphviz digraph of the DFA to w.
//
// Every state becomes a node (doublecircle when final), every transition an
// edge labeled with its symbol, and the start state is pointed to by a
// synthetic point-shaped node. Output order is deterministic: states by ID,
// edges by symbol.
func WriteDOT(w io.Writer, d *dfa.DFA) error {
	ew := &errWriter{w: w}
	ew.printf("digraph DFA {\n")
	ew.printf("    rankdir=LR;\n")
	for id := 0; id < d.States(); id++ {
		s := d.State(dfa.StateID(id))
		shape := "circle"
		if s.IsFinal() {
			shape = "doublecircle"
		}
		ew.printf("    q%d [shape=%s];\n", id, shape)
		for _, sym := range sortedSymbols(s.Transitions()) {
			next, _ := s.Transition(sym)
			ew.printf("    q%d -> q%d [label=\"%c\"];\n", id, next, sym)
		}
	}
	if d.Start() != dfa.InvalidState {
		ew.printf("    _start [shape=point]; _start -> q%d;\n", d.Start())
	}
	ew.printf("}\n")
	return ew.err
}

// WriteNFADOT writes a Graphviz digraph of an NFA graph to w, with epsilon
// edges labeled "ε". Useful for inspecting the automaton before and after
// epsilon elimination.
func WriteNFADOT(w io.Writer, g *nfa.Graph) error {
	ew := &errWriter{w: w}
	ew.printf("digraph NFA {\n")
	ew.printf("    rankdir=LR;\n")
	for id := 0; id < g.Len(); id++ {
		sid := nfa.StateID(id)
		shape := "circle"
		if g.IsFinal(sid) {
			shape = "doublecircle"
		}
		ew.printf("    n%d [shape=%s];\n", id, shape)
		for _, tr := range g.Transitions(sid) {
			label := string(tr.Symbol)
			if tr.Symbol == nfa.Epsilon {
				label = "ε"
			}
			ew.printf("    n%d -> n%d [label=\"%s\"];\n", id, tr.Target, label)
		}
	}
	if g.Start() != nfa.InvalidState {
		ew.printf("    _start [shape=point]; _start -> n%d;\n", g.Start())
	}
	ew.printf("}\n")
	return ew.err
}

// sortedSymbols returns the keys of moves in ascending order.
func sortedSymbols(moves map[rune]dfa.StateID) []rune {
	syms := make([]rune, 0, len(moves))
	for sym := range moves {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}
