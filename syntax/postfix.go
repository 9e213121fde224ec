package syntax

import "strings"

// ToPostfix converts a concatenation-expanded infix expression to postfix
// form using Dijkstra's shunting-yard algorithm.
//
// The conversion is iterative over an explicit operator stack:
//
//   - a symbol is appended to the output;
//   - an operator pops (to the output) every stacked operator of equal or
//     higher precedence, stopping at a '(' or an empty stack, then pushes;
//   - '(' is pushed unconditionally;
//   - ')' pops to the output until the matching '(' is found and discarded.
//
// At end of input all remaining operators are drained to the output.
// Returns a *ParseError for invalid characters and unbalanced parentheses.
func ToPostfix(expr string, ab Alphabet) (string, error) {
	var out strings.Builder
	out.Grow(len(expr))

	var ops []rune // operator stack, top at the end
	for pos, tok := range []rune(expr) {
		switch Classify(tok, ab) {
		case TokenSymbol:
			out.WriteRune(tok)

		case TokenOperator:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top == LeftParen || Precedence(top) < Precedence(tok) {
					break
				}
				out.WriteRune(top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)

		case TokenLeftParen:
			ops = append(ops, tok)

		case TokenRightParen:
			matched := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top == LeftParen {
					matched = true
					break
				}
				out.WriteRune(top)
			}
			if !matched {
				return "", &ParseError{Kind: UnmatchedParenthesis, Pos: pos}
			}

		default:
			return "", &ParseError{Kind: InvalidCharacter, Pos: pos, Char: tok}
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top == LeftParen {
			return "", &ParseError{Kind: UnmatchedParenthesis, Pos: -1}
		}
		out.WriteRune(top)
	}
	return out.String(), nil
}
