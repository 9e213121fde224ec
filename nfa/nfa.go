// Package nfa builds and transforms nondeterministic finite automata.
//
// The package implements the middle of the regex-to-DFA pipeline: Thompson's
// construction from a postfix token sequence, and in-place elimination of
// epsilon transitions. States live in a dense arena owned by their Graph and
// are referenced purely by index; no state is ever a separately allocated
// object and no state is renumbered or removed once created.
package nfa

import (
	"fmt"
	"sort"
	"strings"
)

// StateID indexes a state inside its owning Graph's arena.
// This is a 32-bit unsigned integer for compact representation.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID
const InvalidState StateID = 0xFFFFFFFF

// Epsilon labels a transition taken without consuming input. NUL can never
// be an alphabet symbol (alphabets are validated alphanumeric), so the
// marker is unambiguous.
const Epsilon rune = 0

// Flag marks the structural roles of a state.
type Flag uint8

const (
	// FlagStart marks the unique start state of a graph
	FlagStart Flag = 1 << iota

	// FlagFinal marks an accepting state
	FlagFinal

	// flagVisited is transient, used by the closure traversal and always
	// cleared before a pass returns
	flagVisited
)

// Transition is a single outgoing edge: destination state and the symbol
// consumed to take it (possibly Epsilon). Adjacency lists are ordered by
// (Target, Symbol) once normalized.
type Transition struct {
	Target StateID
	Symbol rune
}

// State owns an adjacency list of outgoing transitions and a flag set.
type State struct {
	transitions []Transition
	flags       Flag
}

// Graph owns a dense sequence of states. It is mutable while a pipeline
// stage constructs or rewrites it and must be treated as read-only once
// handed to a consumer.
type Graph struct {
	states []State
	start  StateID
}

// NewGraph returns an empty graph with no start state.
func NewGraph() *Graph {
	return &Graph{start: InvalidState}
}

// AddState appends a fresh state to the arena and returns its ID.
func (g *Graph) AddState() StateID {
	id := StateID(len(g.states))
	g.states = append(g.states, State{})
	return id
}

// AddTransition appends an edge from -> to labeled symbol.
func (g *Graph) AddTransition(from, to StateID, symbol rune) {
	g.states[from].transitions = append(g.states[from].transitions, Transition{
		Target: to,
		Symbol: symbol,
	})
}

// Len returns the number of states in the graph.
func (g *Graph) Len() int {
	return len(g.states)
}

// Start returns the graph's start state, or InvalidState if none is set.
func (g *Graph) Start() StateID {
	return g.start
}

// IsStart reports whether id is the start state.
func (g *Graph) IsStart(id StateID) bool {
	return g.states[id].flags&FlagStart != 0
}

// IsFinal reports whether id is an accepting state.
func (g *Graph) IsFinal(id StateID) bool {
	return g.states[id].flags&FlagFinal != 0
}

// Transitions returns the adjacency list of id.
// The returned slice is owned by the graph and must not be modified.
func (g *Graph) Transitions(id StateID) []Transition {
	return g.states[id].transitions
}

// setStart marks id as the unique start state.
func (g *Graph) setStart(id StateID) {
	g.states[id].flags |= FlagStart
	g.start = id
}

// markFinal flags id as accepting.
func (g *Graph) markFinal(id StateID) {
	g.states[id].flags |= FlagFinal
}

// String returns a human-readable summary of the graph.
func (g *Graph) String() string {
	edges := 0
	for i := range g.states {
		edges += len(g.states[i].transitions)
	}
	return fmt.Sprintf("Graph{states: %d, transitions: %d, start: %d}",
		len(g.states), edges, g.start)
}

// Dump returns a full textual form of the graph, one state per line.
// Intended for tests and debug logging.
func (g *Graph) Dump() string {
	var b strings.Builder
	for i := range g.states {
		id := StateID(i)
		fmt.Fprintf(&b, "%d", id)
		if g.IsStart(id) {
			b.WriteString(" start")
		}
		if g.IsFinal(id) {
			b.WriteString(" final")
		}
		for _, tr := range g.states[i].transitions {
			if tr.Symbol == Epsilon {
				fmt.Fprintf(&b, " -ε->%d", tr.Target)
			} else {
				fmt.Fprintf(&b, " -%c->%d", tr.Symbol, tr.Target)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// sortAndDedup orders ts by (Target, Symbol) and drops duplicate edges.
// The slice is modified in place; the (possibly shorter) result is returned.
func sortAndDedup(ts []Transition) []Transition {
	if len(ts) < 2 {
		return ts
	}
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].Target != ts[j].Target {
			return ts[i].Target < ts[j].Target
		}
		return ts[i].Symbol < ts[j].Symbol
	})
	out := ts[:1]
	for _, tr := range ts[1:] {
		if tr != out[len(out)-1] {
			out = append(out, tr)
		}
	}
	return out
}
