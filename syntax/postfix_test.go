package syntax

import (
	"errors"
	"testing"
)

// TestInsertConcat tests implicit-concatenation expansion
func TestInsertConcat(t *testing.T) {
	ab := MustAlphabet("abc")

	tests := []struct {
		infix string
		want  string
	}{
		{"", ""},
		{"a", "a"},
		{"ab", "a.b"},
		{"abc", "a.b.c"},
		{"a|b", "a|b"},
		{"a(b)", "a.(b)"},
		{"(a)b", "(a).b"},
		{"(a)(b)", "(a).(b)"},
		{"a*b", "a*.b"},
		{"a+b", "a+.b"},
		{"a?b", "a?.b"},
		{"a*(b)", "a*.(b)"},
		{"(a|b)*abb", "(a|b)*.a.b.b"},
		{"a**", "a**"},
		{"a|b|c", "a|b|c"},
		{"((a))", "((a))"},
	}

	for _, tt := range tests {
		t.Run(tt.infix, func(t *testing.T) {
			if got := InsertConcat(tt.infix, ab); got != tt.want {
				t.Errorf("InsertConcat(%q) = %q, want %q", tt.infix, got, tt.want)
			}
		})
	}
}

// TestToPostfix tests shunting-yard conversion of expanded expressions
func TestToPostfix(t *testing.T) {
	ab := MustAlphabet("abcd")

	tests := []struct {
		expanded string
		want     string
	}{
		{"", ""},
		{"a", "a"},
		{"a.b", "ab."},
		{"a.b.c", "ab.c."},
		{"a|b", "ab|"},
		{"a.b|c.d", "ab.cd.|"},
		{"a*", "a*"},
		{"a*.b", "a*b."},
		{"a**", "a**"},
		{"a*?", "a*?"},
		{"(a|b)*.a.b.b", "ab|*a.b.b."},
		{"(a)", "a"},
		{"((a))", "a"},
		{"a.(b|c)", "abc|."},
		{"a+.b?", "a+b?."},
	}

	for _, tt := range tests {
		t.Run(tt.expanded, func(t *testing.T) {
			got, err := ToPostfix(tt.expanded, ab)
			if err != nil {
				t.Fatalf("ToPostfix(%q) returned error: %v", tt.expanded, err)
			}
			if got != tt.want {
				t.Errorf("ToPostfix(%q) = %q, want %q", tt.expanded, got, tt.want)
			}
		})
	}
}

// TestToPostfix_Expanded tests the full front end: expansion then conversion
func TestToPostfix_Expanded(t *testing.T) {
	ab := DefaultAlphabet()

	tests := []struct {
		infix string
		want  string
	}{
		{"ab", "ab."},
		{"abb", "ab.b."},
		{"(a|b)*abb", "ab|*a.b.b."},
		{"a(b|c)d", "abc|.d."},
	}

	for _, tt := range tests {
		t.Run(tt.infix, func(t *testing.T) {
			got, err := ToPostfix(InsertConcat(tt.infix, ab), ab)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("postfix of %q = %q, want %q", tt.infix, got, tt.want)
			}
		})
	}
}

// TestToPostfix_Errors tests rejection of malformed expressions
func TestToPostfix_Errors(t *testing.T) {
	ab := MustAlphabet("ab")

	tests := []struct {
		name     string
		expanded string
		want     *ParseError
	}{
		{"open paren only", "(", ErrUnmatchedParenthesis},
		{"unclosed group", "(a.b", ErrUnmatchedParenthesis},
		{"stray close", "a.b)", ErrUnmatchedParenthesis},
		{"close before open", ")a(", ErrUnmatchedParenthesis},
		{"invalid character", "a.$", ErrInvalidCharacter},
		{"symbol outside alphabet", "a.z", ErrInvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToPostfix(tt.expanded, ab)
			if err == nil {
				t.Fatalf("ToPostfix(%q) = %q, want error", tt.expanded, got)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want kind %v", err, tt.want.Kind)
			}
		})
	}
}

// TestParseError_Messages tests that errors carry a usable position
func TestParseError_Messages(t *testing.T) {
	ab := MustAlphabet("ab")

	_, err := ToPostfix("a.$", ab)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if pe.Kind != InvalidCharacter || pe.Pos != 2 || pe.Char != '$' {
		t.Errorf("got %+v, want InvalidCharacter at 2 for '$'", pe)
	}

	_, err = ToPostfix("a)", ab)
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if pe.Kind != UnmatchedParenthesis || pe.Pos != 1 {
		t.Errorf("got %+v, want UnmatchedParenthesis at 1", pe)
	}

	_, err = ToPostfix("(a", ab)
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if pe.Kind != UnmatchedParenthesis || pe.Pos != -1 {
		t.Errorf("got %+v, want UnmatchedParenthesis at end of input", pe)
	}
}
