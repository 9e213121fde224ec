package syntax

import (
	"errors"
	"testing"
)

// TestNewAlphabet_Valid tests construction from valid symbol strings
func TestNewAlphabet_Valid(t *testing.T) {
	tests := []struct {
		name    string
		symbols string
		want    string // canonical form
	}{
		{"single", "a", "a"},
		{"sorted", "abc", "abc"},
		{"unsorted", "cba", "abc"},
		{"duplicates", "aabba", "ab"},
		{"mixed case and digits", "z0A9", "09Az"},
		{"binary", "10", "01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab, err := NewAlphabet(tt.symbols)
			if err != nil {
				t.Fatalf("NewAlphabet(%q) returned error: %v", tt.symbols, err)
			}
			if got := ab.String(); got != tt.want {
				t.Errorf("canonical form = %q, want %q", got, tt.want)
			}
			if ab.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", ab.Len(), len(tt.want))
			}
			for _, r := range tt.want {
				if !ab.Contains(r) {
					t.Errorf("Contains(%q) = false, want true", r)
				}
			}
		})
	}
}

// TestNewAlphabet_Invalid tests rejection of empty and non-alphanumeric input
func TestNewAlphabet_Invalid(t *testing.T) {
	if _, err := NewAlphabet(""); !errors.Is(err, ErrEmptyAlphabet) {
		t.Errorf("empty alphabet: err = %v, want ErrEmptyAlphabet", err)
	}

	for _, symbols := range []string{"a*", "a b", "ab|", "é", "("} {
		t.Run(symbols, func(t *testing.T) {
			_, err := NewAlphabet(symbols)
			var ae *AlphabetError
			if !errors.As(err, &ae) {
				t.Fatalf("NewAlphabet(%q) err = %v, want *AlphabetError", symbols, err)
			}
		})
	}
}

// TestAlphabet_Contains tests membership against non-members
func TestAlphabet_Contains(t *testing.T) {
	ab := MustAlphabet("ab")
	for _, r := range []rune{'c', '*', '|', '(', ')', 0, 'A', rune(200)} {
		if ab.Contains(r) {
			t.Errorf("Contains(%q) = true, want false", r)
		}
	}
}

// TestAlphabet_Symbols tests that Symbols returns an independent copy in
// canonical order
func TestAlphabet_Symbols(t *testing.T) {
	ab := MustAlphabet("ba")
	syms := ab.Symbols()
	if string(syms) != "ab" {
		t.Fatalf("Symbols() = %q, want %q", string(syms), "ab")
	}
	syms[0] = 'z'
	if ab.String() != "ab" {
		t.Error("modifying the returned slice changed the alphabet")
	}
}

// TestDefaultAlphabet tests the default and full alphanumeric constructors
func TestDefaultAlphabet(t *testing.T) {
	def := DefaultAlphabet()
	if def.Len() != 26 || !def.Contains('a') || !def.Contains('z') || def.Contains('A') {
		t.Errorf("DefaultAlphabet() = %q", def.String())
	}

	full := Alphanumeric()
	if full.Len() != 62 {
		t.Errorf("Alphanumeric().Len() = %d, want 62", full.Len())
	}
	for _, r := range []rune{'0', '9', 'A', 'Z', 'a', 'z'} {
		if !full.Contains(r) {
			t.Errorf("Alphanumeric().Contains(%q) = false", r)
		}
	}
}

// TestMustAlphabet_Panics tests that MustAlphabet panics on invalid input
func TestMustAlphabet_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustAlphabet(\"*\") did not panic")
		}
	}()
	MustAlphabet("*")
}
