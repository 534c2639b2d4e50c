package parse

// repeat applies p up to max times (unbounded when max is 0) and requires at
// least min successes. Repetition stops at the first failure or at the first
// success that consumes nothing.
type repeat[O any] struct {
	p   Parser[O]
	min int
	max int
}

// ZeroOrMore applies p until it fails and collects the outputs. It always
// succeeds, possibly with an empty result.
func ZeroOrMore[O any](p Parser[O]) Parser[[]O] {
	return repeat[O]{p: p}
}

// OneOrMore is ZeroOrMore that fails with EmptyRepetition when p never matched.
func OneOrMore[O any](p Parser[O]) Parser[[]O] {
	return repeat[O]{p: p, min: 1}
}

// NOrMore applies p up to the given number of times, stopping early on the
// first failure. It fails only when p never matched; it does not require that
// many matches.
func NOrMore[O any](times int, p Parser[O]) Parser[[]O] {
	if times < 1 {
		times = 1
	}
	return repeat[O]{p: p, min: 1, max: times}
}

func (r repeat[O]) Parse(input string) ([]O, string, error) {
	var outs []O
	remaining := input
	for r.max == 0 || len(outs) < r.max {
		out, rest, err := r.p.Parse(remaining)
		if err != nil || len(rest) == len(remaining) {
			break
		}
		outs = append(outs, out)
		remaining = rest
	}
	if len(outs) < r.min {
		return nil, "", &Error{Kind: EmptyRepetition, Input: input}
	}
	if outs == nil {
		outs = []O{}
	}
	return outs, remaining, nil
}
