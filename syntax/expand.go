package syntax

import "strings"

// InsertConcat returns expr with the implicit concatenation operator made
// explicit.
//
// A concatenation marker is inserted between two adjacent characters when
// the left one can end a sub-expression (a symbol, a unary postfix operator
// or a closing parenthesis) and the right one can start one (a symbol or an
// opening parenthesis). Characters outside the alphabet pass through
// unchanged; ToPostfix rejects them later.
//
// The walk is a single linear pass with no side effects.
func InsertConcat(expr string, ab Alphabet) string {
	runes := []rune(expr)
	if len(runes) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(expr) * 2)
	b.WriteRune(runes[0])
	for i := 1; i < len(runes); i++ {
		if endsExpression(runes[i-1], ab) && startsExpression(runes[i], ab) {
			b.WriteRune(OpConcat)
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// endsExpression reports whether r can be the last character of a complete
// sub-expression.
func endsExpression(r rune, ab Alphabet) bool {
	switch Classify(r, ab) {
	case TokenSymbol, TokenRightParen:
		return true
	case TokenOperator:
		return IsPostfixOperator(r)
	default:
		return false
	}
}

// startsExpression reports whether r can be the first character of a
// complete sub-expression.
func startsExpression(r rune, ab Alphabet) bool {
	k := Classify(r, ab)
	return k == TokenSymbol || k == TokenLeftParen
}
