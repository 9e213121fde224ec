// Package dfa derives deterministic finite automata from epsilon-free NFA
// graphs via on-the-fly subset construction.
//
// The resulting DFA may be partial: an absent transition means "no move",
// not an edge to an explicit reject state.
package dfa

import (
	"fmt"

	"github.com/coregx/redfa/nfa"
)

// StateID uniquely identifies a DFA state.
// This is a 32-bit unsigned integer for compact representation.
type StateID uint32

// Special state constants
const (
	// InvalidState represents an invalid/uninitialized state ID
	InvalidState StateID = 0xFFFFFFFF

	// StartState is the ID of the initial state of any non-empty DFA
	StartState StateID = 0
)

// State represents a single DFA state.
//
// A DFA state is deterministic: for each symbol there is at most one target
// state, held in a symbol-indexed map. Each state also records the subset
// of NFA states it stands for; the subset is non-empty for every state the
// constructor creates.
type State struct {
	id        StateID
	isFinal   bool
	moves     map[rune]StateID
	nfaStates []nfa.StateID // sorted, duplicate-free
}

// ID returns the state's unique identifier
func (s *State) ID() StateID {
	return s.id
}

// IsFinal returns true if this is an accepting state
func (s *State) IsFinal() bool {
	return s.isFinal
}

// Transition returns the target state for the given symbol.
// Returns (InvalidState, false) if no transition exists.
func (s *State) Transition(symbol rune) (StateID, bool) {
	next, ok := s.moves[symbol]
	if !ok {
		return InvalidState, false
	}
	return next, true
}

// Transitions returns the state's symbol -> target map.
// The map is owned by the DFA and must not be modified.
func (s *State) Transitions() map[rune]StateID {
	return s.moves
}

// TransitionCount returns the number of outgoing transitions
func (s *State) TransitionCount() int {
	return len(s.moves)
}

// NFAStates returns the sorted subset of NFA states this state represents.
// The slice is owned by the DFA and must not be modified.
func (s *State) NFAStates() []nfa.StateID {
	return s.nfaStates
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	return fmt.Sprintf("State(id=%d, final=%v, transitions=%d, subset=%v)",
		s.id, s.isFinal, len(s.moves), s.nfaStates)
}

// DFA is a deterministic finite automaton produced by Determinize.
// It is immutable once returned and safe for concurrent readers.
type DFA struct {
	states []*State
	start  StateID
}

// States returns the total number of states in the DFA
func (d *DFA) States() int {
	return len(d.states)
}

// State returns the state with the given ID, or nil if the ID is invalid.
func (d *DFA) State(id StateID) *State {
	if int(id) >= len(d.states) {
		return nil
	}
	return d.states[id]
}

// Start returns the DFA's start state ID.
// Returns InvalidState for an empty DFA.
func (d *DFA) Start() StateID {
	return d.start
}

// IsFinal returns true if the given state exists and is accepting
func (d *DFA) IsFinal(id StateID) bool {
	if s := d.State(id); s != nil {
		return s.IsFinal()
	}
	return false
}

// String returns a human-readable summary of the DFA
func (d *DFA) String() string {
	finals := 0
	for _, s := range d.states {
		if s.isFinal {
			finals++
		}
	}
	return fmt.Sprintf("DFA{states: %d, final: %d, start: %d}",
		len(d.states), finals, d.start)
}
