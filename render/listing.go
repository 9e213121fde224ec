package render

import (
	"io"
	"sort"
	"strconv"

	"github.com/coregx/redfa/dfa"
)

// WriteListing writes a textual component listing of the DFA to w: state
// count, the alphabet subset actually used on edges, the transition
// relation, the start state and the final states.
//
// The output is deterministic (states by ID, symbols in ascending order)
// so it can be compared across runs.
func WriteListing(w io.Writer, d *dfa.DFA) error {
	ew := &errWriter{w: w}

	ew.printf("states: %d\n", d.States())
	ew.printf("alphabet:%s\n", formatRunes(usedSymbols(d)))

	if d.Start() == dfa.InvalidState {
		ew.printf("start: none\n")
	} else {
		ew.printf("start: %d\n", d.Start())
	}
	ew.printf("final:%s\n", formatFinals(d))

	ew.printf("transitions:\n")
	for id := 0; id < d.States(); id++ {
		s := d.State(dfa.StateID(id))
		for _, sym := range sortedSymbols(s.Transitions()) {
			next, _ := s.Transition(sym)
			ew.printf("  %d --%c--> %d\n", id, sym, next)
		}
	}
	return ew.err
}

// usedSymbols collects the symbols appearing on at least one edge.
func usedSymbols(d *dfa.DFA) []rune {
	seen := make(map[rune]struct{})
	for id := 0; id < d.States(); id++ {
		for sym := range d.State(dfa.StateID(id)).Transitions() {
			seen[sym] = struct{}{}
		}
	}
	syms := make([]rune, 0, len(seen))
	for sym := range seen {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

func formatRunes(syms []rune) string {
	out := ""
	for _, sym := range syms {
		out += " " + string(sym)
	}
	return out
}

func formatFinals(d *dfa.DFA) string {
	out := ""
	for id := 0; id < d.States(); id++ {
		if d.IsFinal(dfa.StateID(id)) {
			out += " " + strconv.Itoa(id)
		}
	}
	return out
}
