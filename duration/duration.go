// Package duration parses interval strings such as "500ms" or "2s" with the
// combinators from package parse.
package duration

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/dhamidi/barrage/parse"
)

var defaultUnits = []parse.Case[time.Duration]{
	{Literal: "s", Value: time.Second},
	{Literal: "ms", Value: time.Millisecond},
	{Literal: "ns", Value: time.Nanosecond},
	{Literal: "us", Value: time.Microsecond},
}

// Units returns the recognised suffixes in the order they are tried. The
// slice is a copy.
func Units() []parse.Case[time.Duration] {
	return slices.Clone(defaultUnits)
}

// Value is a magnitude together with the unit it was written in.
type Value struct {
	Magnitude uint64
	Unit      time.Duration
}

// Duration scales v to a time.Duration. It fails when the result does not
// fit in an int64 count of nanoseconds.
func (v Value) Duration() (time.Duration, error) {
	if v.Unit <= 0 {
		return 0, fmt.Errorf("invalid unit %d", int64(v.Unit))
	}
	limit := uint64(math.MaxInt64) / uint64(v.Unit)
	if v.Magnitude > limit {
		return 0, fmt.Errorf("%d×%s exceeds the maximum duration %s", v.Magnitude, v.Unit, time.Duration(math.MaxInt64))
	}
	return time.Duration(v.Magnitude) * v.Unit, nil
}

// Parser returns a parser for <digits><unit> using the given units, or the
// default Units when none are given. It does not require the input to end
// after the unit.
func Parser(units ...parse.Case[time.Duration]) parse.Parser[Value] {
	if len(units) == 0 {
		units = defaultUnits
	}
	return parse.Map(
		parse.Then(parse.Uint(), parse.MapOneOf(units...)),
		func(p parse.Pair[uint64, time.Duration]) Value {
			return Value{Magnitude: p.First, Unit: p.Second}
		},
	)
}

var wholeInput = parse.End(Parser())

// Parse parses text, which must consist of exactly one duration with no
// surrounding characters.
func Parse(text string) (time.Duration, error) {
	v, _, err := wholeInput.Parse(text)
	if err != nil {
		return 0, fmt.Errorf("cannot parse to duration value: %w", err)
	}
	d, err := v.Duration()
	if err != nil {
		return 0, fmt.Errorf("cannot parse to duration value: %w", err)
	}
	return d, nil
}
