package nfa

import "fmt"

// BuildErrorKind classifies Thompson construction failures
type BuildErrorKind uint8

const (
	// OperandUnderflow indicates a binary operator applied with fewer than
	// two pending fragments, or a unary postfix operator with none
	OperandUnderflow BuildErrorKind = iota

	// MalformedExpression indicates postfix processing ended with zero or
	// more than one fragment remaining
	MalformedExpression
)

// String returns a human-readable error kind name
func (k BuildErrorKind) String() string {
	switch k {
	case OperandUnderflow:
		return "OperandUnderflow"
	case MalformedExpression:
		return "MalformedExpression"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Sentinel instances for errors.Is checks. Matching compares kinds only.
var (
	// ErrOperandUnderflow matches any OperandUnderflow build error
	ErrOperandUnderflow = &BuildError{Kind: OperandUnderflow}

	// ErrMalformedExpression matches any MalformedExpression build error
	ErrMalformedExpression = &BuildError{Kind: MalformedExpression}
)

// BuildError describes why Thompson construction rejected a postfix
// expression.
type BuildError struct {
	Kind BuildErrorKind

	// Op is the operator being applied when an underflow was detected;
	// zero otherwise.
	Op rune
}

// Error implements the error interface
func (e *BuildError) Error() string {
	switch e.Kind {
	case OperandUnderflow:
		if e.Op != 0 {
			return fmt.Sprintf("operator %q has too few operands", e.Op)
		}
		return "operator has too few operands"
	case MalformedExpression:
		return "postfix expression does not reduce to a single automaton"
	default:
		return fmt.Sprintf("build error: %s", e.Kind)
	}
}

// Is implements error comparison for errors.Is; two BuildErrors match when
// their kinds match, regardless of the operator involved.
func (e *BuildError) Is(target error) bool {
	t, ok := target.(*BuildError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
