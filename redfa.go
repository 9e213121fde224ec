// Package redfa compiles regular expressions over a configurable
// alphanumeric alphabet into equivalent deterministic finite automata.
//
// The compilation pipeline chains four classic automata-theory algorithms,
// each exposed by its own package for staged use:
//
//  1. syntax: implicit-concatenation expansion and shunting-yard conversion
//     of the infix expression to postfix form;
//  2. nfa: Thompson's construction of an epsilon-NFA from the postfix form;
//  3. nfa: in-place elimination of epsilon transitions;
//  4. dfa: worklist subset construction of the final DFA.
//
// Supported syntax: concatenation (implicit), union '|', Kleene star '*',
// plus '+', optional '?' and grouping with parentheses. There is no
// matching engine: the result of a compilation is the DFA value itself,
// which collaborators may render (see the render package) or walk.
//
// Basic usage:
//
//	d, err := redfa.Compile("(a|b)*abb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(d.States())
//
// The working alphabet defaults to the lowercase English letters and can be
// overridden with any alphanumeric set:
//
//	ab, _ := syntax.NewAlphabet("01")
//	d, err := redfa.CompileWithAlphabet("(0|1)*1", ab)
package redfa

import (
	"fmt"

	"github.com/coregx/redfa/dfa"
	"github.com/coregx/redfa/nfa"
	"github.com/coregx/redfa/syntax"
)

// CompileError wraps a stage failure with the pattern being compiled.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	return fmt.Sprintf("compilation failed for pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying stage error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// Compile compiles pattern over the default alphabet (lowercase English
// letters) into a DFA.
//
// On failure it returns a *CompileError wrapping the stage error: a
// *syntax.ParseError (InvalidCharacter, UnmatchedParenthesis) or a
// *nfa.BuildError (OperandUnderflow, MalformedExpression). A failing
// pattern never reaches the automata stages and never yields a partial DFA.
func Compile(pattern string) (*dfa.DFA, error) {
	return CompileWithAlphabet(pattern, syntax.DefaultAlphabet())
}

// CompileWithAlphabet compiles pattern over the given alphabet into a DFA.
func CompileWithAlphabet(pattern string, ab syntax.Alphabet) (*dfa.DFA, error) {
	expanded := syntax.InsertConcat(pattern, ab)
	postfix, err := syntax.ToPostfix(expanded, ab)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	g, err := nfa.CompilePostfix(postfix, ab)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return dfa.Determinize(g.EliminateEpsilon(), ab), nil
}

// MustCompile is like Compile but panics if the pattern is invalid.
// Intended for patterns known to be valid at compile time.
func MustCompile(pattern string) *dfa.DFA {
	d, err := Compile(pattern)
	if err != nil {
		panic("redfa: Compile(`" + pattern + "`): " + err.Error())
	}
	return d
}
