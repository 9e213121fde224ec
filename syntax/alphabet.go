// Package syntax implements the front end of the regex-to-DFA pipeline:
// alphabet handling, token classification, implicit-concatenation expansion
// and shunting-yard conversion of infix expressions to postfix form.
//
// The package is purely functional: no stage keeps state between calls, and
// the alphabet is an explicit value threaded through every operation rather
// than an ambient table.
package syntax

import (
	"errors"
	"fmt"
	"sort"
)

// maxSymbol bounds the membership table. Alphabets are restricted to ASCII
// alphanumerics, so 128 entries always suffice.
const maxSymbol = 128

// Common alphabet errors
var (
	// ErrEmptyAlphabet indicates an alphabet with no symbols
	ErrEmptyAlphabet = errors.New("alphabet must contain at least one symbol")
)

// AlphabetError reports a symbol that is not allowed in an alphabet.
// Only ASCII alphanumerics ('0'-'9', 'A'-'Z', 'a'-'z') are accepted.
type AlphabetError struct {
	Symbol rune
}

// Error implements the error interface
func (e *AlphabetError) Error() string {
	return fmt.Sprintf("alphabet symbol %q is not alphanumeric", e.Symbol)
}

// Alphabet is the set of characters accepted as regex symbols for one run.
//
// An Alphabet is immutable once constructed. Its symbols are kept in a fixed
// canonical order (ascending code point); this order determines the order in
// which the subset constructor assigns DFA state IDs, so it must be stable
// for reproducible output.
type Alphabet struct {
	symbols []rune
	member  [maxSymbol]bool
}

// NewAlphabet builds an Alphabet from the characters of symbols.
//
// Duplicates are removed and the result is sorted into canonical order.
// Returns ErrEmptyAlphabet for an empty input and an *AlphabetError for any
// character outside ASCII alphanumerics.
func NewAlphabet(symbols string) (Alphabet, error) {
	var ab Alphabet
	for _, r := range symbols {
		if !isAlphanumeric(r) {
			return Alphabet{}, &AlphabetError{Symbol: r}
		}
		if !ab.member[r] {
			ab.member[r] = true
			ab.symbols = append(ab.symbols, r)
		}
	}
	if len(ab.symbols) == 0 {
		return Alphabet{}, ErrEmptyAlphabet
	}
	sort.Slice(ab.symbols, func(i, j int) bool { return ab.symbols[i] < ab.symbols[j] })
	return ab, nil
}

// MustAlphabet is like NewAlphabet but panics on invalid input.
// Intended for alphabets known to be valid at compile time.
func MustAlphabet(symbols string) Alphabet {
	ab, err := NewAlphabet(symbols)
	if err != nil {
		panic("syntax: NewAlphabet(" + fmt.Sprintf("%q", symbols) + "): " + err.Error())
	}
	return ab
}

// DefaultAlphabet returns the default working alphabet: the lowercase
// English letters 'a' through 'z'.
func DefaultAlphabet() Alphabet {
	return MustAlphabet("abcdefghijklmnopqrstuvwxyz")
}

// Alphanumeric returns the full alphanumeric alphabet:
// digits, uppercase and lowercase English letters.
func Alphanumeric() Alphabet {
	return MustAlphabet("0123456789" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz")
}

// Contains reports whether r is a symbol of the alphabet.
func (ab Alphabet) Contains(r rune) bool {
	return r >= 0 && r < maxSymbol && ab.member[r]
}

// Symbols returns the alphabet's symbols in canonical order.
// The returned slice is a copy and may be modified by the caller.
func (ab Alphabet) Symbols() []rune {
	out := make([]rune, len(ab.symbols))
	copy(out, ab.symbols)
	return out
}

// Len returns the number of symbols in the alphabet.
func (ab Alphabet) Len() int {
	return len(ab.symbols)
}

// String returns the alphabet's symbols as a string in canonical order.
func (ab Alphabet) String() string {
	return string(ab.symbols)
}

func isAlphanumeric(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
