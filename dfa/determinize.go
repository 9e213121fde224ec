package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/redfa/nfa"
	"github.com/coregx/redfa/syntax"
)

// Determinize converts an epsilon-free NFA into an equivalent DFA using
// worklist-driven subset construction.
//
// Each DFA state stands for a canonical (sorted, duplicate-free) subset of
// NFA states; set-equal subsets always map to the same DFA state, so the
// subset -> ID mapping is a bijection onto the states actually created.
// Symbols are scanned in the alphabet's canonical order, which fixes the
// order in which new IDs are assigned: the same NFA and alphabet always
// produce an identical DFA.
//
// Determinize cannot fail on a well-formed epsilon-free input; an empty NFA
// yields an empty DFA.
func Determinize(g *nfa.Graph, ab syntax.Alphabet) *DFA {
	d := &DFA{start: InvalidState}
	if g == nil || g.Len() == 0 {
		return d
	}

	symbols := ab.Symbols()
	ids := make(map[string]StateID)

	// addState registers a canonical subset as a fresh DFA state.
	addState := func(subset []nfa.StateID) StateID {
		id := StateID(len(d.states))
		final := false
		for _, n := range subset {
			if g.IsFinal(n) {
				final = true
				break
			}
		}
		d.states = append(d.states, &State{
			id:        id,
			isFinal:   final,
			moves:     make(map[rune]StateID),
			nfaStates: subset,
		})
		ids[subsetKey(subset)] = id
		return id
	}

	d.start = addState([]nfa.StateID{g.Start()})
	worklist := []StateID{d.start}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		subset := d.states[cur].nfaStates

		for _, sym := range symbols {
			dest := move(g, subset, sym)
			if len(dest) == 0 {
				continue
			}
			next, seen := ids[subsetKey(dest)]
			if !seen {
				next = addState(dest)
				worklist = append(worklist, next)
			}
			d.states[cur].moves[sym] = next
		}
	}
	return d
}

// move returns the canonical subset of states reachable from subset on sym.
func move(g *nfa.Graph, subset []nfa.StateID, sym rune) []nfa.StateID {
	seen := make(map[nfa.StateID]struct{})
	var dest []nfa.StateID
	for _, n := range subset {
		for _, tr := range g.Transitions(n) {
			if tr.Symbol != sym {
				continue
			}
			if _, dup := seen[tr.Target]; dup {
				continue
			}
			seen[tr.Target] = struct{}{}
			dest = append(dest, tr.Target)
		}
	}
	sort.Slice(dest, func(i, j int) bool { return dest[i] < dest[j] })
	return dest
}

// subsetKey encodes a canonical subset as an exact deduplication key.
//
// An exact key is used instead of a hash so that set-equal subsets, and
// only those, collapse onto the same DFA state.
func subsetKey(subset []nfa.StateID) string {
	var b strings.Builder
	for i, n := range subset {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(n), 10))
	}
	return b.String()
}
