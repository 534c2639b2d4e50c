package parse

import (
	"fmt"
	"strconv"
)

// Kind classifies a parse failure.
type Kind uint8

const (
	LiteralMismatch Kind = iota + 1
	PredicateMismatch
	UnexpectedEndOfInput
	NoAlternativeMatched
	EmptyRepetition
	TrailingInput
	IntegerRange
)

var kindNames = map[Kind]string{
	LiteralMismatch:      "literal mismatch",
	PredicateMismatch:    "predicate mismatch",
	UnexpectedEndOfInput: "unexpected end of input",
	NoAlternativeMatched: "no alternative matched",
	EmptyRepetition:      "empty repetition",
	TrailingInput:        "trailing input",
	IntegerRange:         "integer out of range",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Sentinels for use with errors.Is. Only the Kind is compared.
var (
	ErrLiteralMismatch      = &Error{Kind: LiteralMismatch}
	ErrPredicateMismatch    = &Error{Kind: PredicateMismatch}
	ErrUnexpectedEndOfInput = &Error{Kind: UnexpectedEndOfInput}
	ErrNoAlternativeMatched = &Error{Kind: NoAlternativeMatched}
	ErrEmptyRepetition      = &Error{Kind: EmptyRepetition}
	ErrTrailingInput        = &Error{Kind: TrailingInput}
	ErrIntegerRange         = &Error{Kind: IntegerRange}
)

// Error describes why a parser failed.
type Error struct {
	Kind Kind

	// Expected holds the literal for LiteralMismatch and the rejected span
	// for IntegerRange.
	Expected string

	// Found holds the offending rune for PredicateMismatch.
	Found rune

	// Input is the input the failing parser was given.
	Input string

	// Err is an underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case LiteralMismatch:
		return fmt.Sprintf("expected literal %q not found in input", e.Expected)
	case PredicateMismatch:
		return fmt.Sprintf("%q does not satisfy predicate", e.Found)
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	case NoAlternativeMatched:
		return "none of provided options matched"
	case EmptyRepetition:
		return "parser did not find any values it could consume"
	case TrailingInput:
		return "not end of input"
	case IntegerRange:
		return fmt.Sprintf("%q is not a valid unsigned integer", e.Expected)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// StageError wraps the failure of one parser inside a sequence.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

const (
	stageFirst  = "first parser unsuccessful"
	stageSecond = "second parser unsuccessful"
)
