package syntax

import "fmt"

// ErrorKind classifies parse failures
type ErrorKind uint8

const (
	// InvalidCharacter indicates a character that is neither an alphabet
	// symbol nor a recognized operator or parenthesis
	InvalidCharacter ErrorKind = iota

	// UnmatchedParenthesis indicates a ')' with no open match, or a '('
	// still open at the end of input
	UnmatchedParenthesis
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case InvalidCharacter:
		return "InvalidCharacter"
	case UnmatchedParenthesis:
		return "UnmatchedParenthesis"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Sentinel instances for errors.Is checks. Matching compares kinds only.
var (
	// ErrInvalidCharacter matches any InvalidCharacter parse error
	ErrInvalidCharacter = &ParseError{Kind: InvalidCharacter, Pos: -1}

	// ErrUnmatchedParenthesis matches any UnmatchedParenthesis parse error
	ErrUnmatchedParenthesis = &ParseError{Kind: UnmatchedParenthesis, Pos: -1}
)

// ParseError describes why an expression was rejected by the front end.
type ParseError struct {
	Kind ErrorKind

	// Pos is the rune offset of the offending character in the expanded
	// expression, or -1 when the error is detected at end of input.
	Pos int

	// Char is the offending character for InvalidCharacter errors.
	Char rune
}

// Error implements the error interface
func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidCharacter:
		return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
	case UnmatchedParenthesis:
		if e.Pos >= 0 {
			return fmt.Sprintf("unmatched ')' at position %d", e.Pos)
		}
		return "unclosed '(' at end of expression"
	default:
		return fmt.Sprintf("parse error: %s", e.Kind)
	}
}

// Is implements error comparison for errors.Is; two ParseErrors match when
// their kinds match, regardless of position.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
