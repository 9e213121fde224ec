package syntax

import "fmt"

// Metacharacters recognized by the pipeline. None of them are alphanumeric,
// so they can never collide with alphabet symbols.
const (
	// OpUnion is the alternation operator
	OpUnion = '|'

	// OpConcat is the explicit concatenation operator inserted by
	// InsertConcat; it never appears in user input over a valid alphabet
	OpConcat = '.'

	// OpStar is the Kleene star (zero or more)
	OpStar = '*'

	// OpPlus matches one or more repetitions
	OpPlus = '+'

	// OpOptional matches zero or one occurrence
	OpOptional = '?'

	// LeftParen opens a group
	LeftParen = '('

	// RightParen closes a group
	RightParen = ')'
)

// TokenKind classifies a single character of a regex with respect to an
// alphabet.
type TokenKind uint8

const (
	// TokenSymbol is a character of the working alphabet
	TokenSymbol TokenKind = iota

	// TokenOperator is one of the regex operators (| . * + ?)
	TokenOperator

	// TokenLeftParen is an opening parenthesis
	TokenLeftParen

	// TokenRightParen is a closing parenthesis
	TokenRightParen

	// TokenInvalid is anything else; its presence rejects the whole regex
	TokenInvalid
)

// String returns a human-readable representation of the TokenKind
func (k TokenKind) String() string {
	switch k {
	case TokenSymbol:
		return "Symbol"
	case TokenOperator:
		return "Operator"
	case TokenLeftParen:
		return "LeftParen"
	case TokenRightParen:
		return "RightParen"
	case TokenInvalid:
		return "Invalid"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Classify returns the token kind of r with respect to ab.
//
// Alphabet membership is checked first, so a symbol can never be shadowed by
// an operator (the alphabet is alphanumeric-only, operators are not).
func Classify(r rune, ab Alphabet) TokenKind {
	switch {
	case ab.Contains(r):
		return TokenSymbol
	case Precedence(r) > 0:
		return TokenOperator
	case r == LeftParen:
		return TokenLeftParen
	case r == RightParen:
		return TokenRightParen
	default:
		return TokenInvalid
	}
}

// Precedence returns the binding strength of an operator, or 0 for
// non-operators. Higher binds tighter; operators of equal precedence
// associate left-to-right.
//
//	* + ?   3 (unary postfix)
//	.       2 (concatenation)
//	|       1 (union)
func Precedence(r rune) int {
	switch r {
	case OpStar, OpPlus, OpOptional:
		return 3
	case OpConcat:
		return 2
	case OpUnion:
		return 1
	default:
		return 0
	}
}

// IsPostfixOperator reports whether r is one of the unary postfix
// operators (* + ?).
func IsPostfixOperator(r rune) bool {
	return r == OpStar || r == OpPlus || r == OpOptional
}
