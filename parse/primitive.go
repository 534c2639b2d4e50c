package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type literal string

// Literal matches expected exactly at the start of the input. The output is the
// matched span.
func Literal(expected string) Parser[string] {
	return literal(expected)
}

func (l literal) Parse(input string) (string, string, error) {
	rest, ok := strings.CutPrefix(input, string(l))
	if !ok {
		return "", "", &Error{Kind: LiteralMismatch, Expected: string(l), Input: input}
	}
	return input[:len(l)], rest, nil
}

type runeWhere func(rune) bool

// MatchRune matches a single rune for which pred returns true. The output is
// the rune's span.
func MatchRune(pred func(rune) bool) Parser[string] {
	return runeWhere(pred)
}

func (pred runeWhere) Parse(input string) (string, string, error) {
	if input == "" {
		return "", "", &Error{Kind: UnexpectedEndOfInput, Input: input}
	}
	r, size := utf8.DecodeRuneInString(input)
	if !pred(r) {
		return "", "", &Error{Kind: PredicateMismatch, Found: r, Input: input}
	}
	return input[:size], input[size:], nil
}

// Numeric matches one rune in Unicode category N.
func Numeric() Parser[string] {
	return MatchRune(unicode.IsNumber)
}

type eof struct{}

// EOF succeeds only on empty input.
func EOF() Parser[struct{}] {
	return eof{}
}

func (eof) Parse(input string) (struct{}, string, error) {
	if input != "" {
		return struct{}{}, "", &Error{Kind: TrailingInput, Input: input}
	}
	return struct{}{}, input, nil
}

// runesWhere matches the longest run of runes satisfying pred and outputs
// its span. Fewer than min runes fail with EmptyRepetition. Only failures
// allocate.
type runesWhere struct {
	pred func(rune) bool
	min  int
}

func (r runesWhere) Parse(input string) (string, string, error) {
	n, end := 0, 0
	for end < len(input) {
		c, size := utf8.DecodeRuneInString(input[end:])
		if !r.pred(c) {
			break
		}
		end += size
		n++
	}
	if n < r.min {
		return "", "", &Error{Kind: EmptyRepetition, Input: input}
	}
	return input[:end], input[end:], nil
}
