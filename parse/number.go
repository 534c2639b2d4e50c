package parse

import (
	"errors"
	"strconv"
	"unicode"
)

type uintParser struct {
	digits Parser[string]
}

// Uint parses one or more numeric runes as an unsigned 64-bit integer.
//
// Digits are classified like Numeric, by Unicode category N, so a span can be
// numeric without being an ASCII decimal literal. Such spans, and values that do not
// fit in 64 bits, fail with IntegerRange. A successful parse does not
// allocate.
func Uint() Parser[uint64] {
	return uintParser{digits: runesWhere{pred: unicode.IsNumber, min: 1}}
}

func (u uintParser) Parse(input string) (uint64, string, error) {
	span, rest, err := u.digits.Parse(input)
	if err != nil {
		return 0, "", err
	}
	n, err := strconv.ParseUint(span, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, "", &Error{Kind: IntegerRange, Expected: span, Input: input, Err: err}
	}
	return n, rest, nil
}
