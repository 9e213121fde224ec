package nfa

import (
	"github.com/coregx/redfa/syntax"
)

// fragment is a transient construction-time value: a partially built
// automaton identified by its entry and exit states. Exactly one dangling
// outgoing slot exists at the exit; whichever combinator consumes the
// fragment next is responsible for connecting it.
type fragment struct {
	entry StateID
	exit  StateID
}

// CompilePostfix builds an epsilon-NFA from a postfix token sequence using
// Thompson's construction.
//
// Tokens are consumed left to right, driving a stack of fragments: each
// symbol pushes a fresh two-state fragment, each operator pops its operands
// and pushes the combined fragment. After the last token exactly one
// fragment must remain; its entry becomes the unique START state and its
// exit the unique FINAL state.
//
// Returns a *BuildError (OperandUnderflow or MalformedExpression) on
// ill-formed input. A postfix string produced by syntax.ToPostfix over the
// same alphabet contains no invalid characters, but underflow and leftover
// fragments are still possible (e.g. "ab" with no operator).
func CompilePostfix(postfix string, ab syntax.Alphabet) (*Graph, error) {
	g := NewGraph()
	var frags []fragment

	pop := func() fragment {
		f := frags[len(frags)-1]
		frags = frags[:len(frags)-1]
		return f
	}

	for _, tok := range postfix {
		switch {
		case ab.Contains(tok):
			// symbol: q -tok-> f
			q := g.AddState()
			f := g.AddState()
			g.AddTransition(q, f, tok)
			frags = append(frags, fragment{entry: q, exit: f})

		case tok == syntax.OpConcat:
			if len(frags) < 2 {
				return nil, &BuildError{Kind: OperandUnderflow, Op: tok}
			}
			y := pop()
			x := pop()
			g.AddTransition(x.exit, y.entry, Epsilon)
			frags = append(frags, fragment{entry: x.entry, exit: y.exit})

		case tok == syntax.OpUnion:
			if len(frags) < 2 {
				return nil, &BuildError{Kind: OperandUnderflow, Op: tok}
			}
			y := pop()
			x := pop()
			q := g.AddState()
			f := g.AddState()
			g.AddTransition(q, x.entry, Epsilon)
			g.AddTransition(q, y.entry, Epsilon)
			g.AddTransition(x.exit, f, Epsilon)
			g.AddTransition(y.exit, f, Epsilon)
			frags = append(frags, fragment{entry: q, exit: f})

		case tok == syntax.OpStar:
			if len(frags) < 1 {
				return nil, &BuildError{Kind: OperandUnderflow, Op: tok}
			}
			x := pop()
			q := g.AddState()
			f := g.AddState()
			g.AddTransition(q, x.entry, Epsilon)
			g.AddTransition(q, f, Epsilon) // zero passes allowed
			g.AddTransition(x.exit, x.entry, Epsilon)
			g.AddTransition(x.exit, f, Epsilon)
			frags = append(frags, fragment{entry: q, exit: f})

		case tok == syntax.OpPlus:
			if len(frags) < 1 {
				return nil, &BuildError{Kind: OperandUnderflow, Op: tok}
			}
			x := pop()
			q := g.AddState()
			f := g.AddState()
			g.AddTransition(q, x.entry, Epsilon) // no skip edge: at least one pass
			g.AddTransition(x.exit, x.entry, Epsilon)
			g.AddTransition(x.exit, f, Epsilon)
			frags = append(frags, fragment{entry: q, exit: f})

		case tok == syntax.OpOptional:
			if len(frags) < 1 {
				return nil, &BuildError{Kind: OperandUnderflow, Op: tok}
			}
			x := pop()
			q := g.AddState()
			f := g.AddState()
			g.AddTransition(q, x.entry, Epsilon)
			g.AddTransition(q, f, Epsilon)
			g.AddTransition(x.exit, f, Epsilon) // no loop edge
			frags = append(frags, fragment{entry: q, exit: f})

		default:
			// Not a symbol of this alphabet and not an operator: the
			// caller bypassed the front end.
			return nil, &BuildError{Kind: MalformedExpression}
		}
	}

	if len(frags) != 1 {
		return nil, &BuildError{Kind: MalformedExpression}
	}
	g.setStart(frags[0].entry)
	g.markFinal(frags[0].exit)
	return g, nil
}
