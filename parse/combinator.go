package parse

type then[A, B any] struct {
	first  Parser[A]
	second Parser[B]
}

// Then runs first and then runs second on what first left over. Both must
// succeed. Input consumed by first is never given back.
func Then[A, B any](first Parser[A], second Parser[B]) Parser[Pair[A, B]] {
	return then[A, B]{first: first, second: second}
}

func (p then[A, B]) Parse(input string) (Pair[A, B], string, error) {
	a, rest, err := p.first.Parse(input)
	if err != nil {
		return Pair[A, B]{}, "", &StageError{Stage: stageFirst, Err: err}
	}
	b, rest, err := p.second.Parse(rest)
	if err != nil {
		return Pair[A, B]{}, "", &StageError{Stage: stageSecond, Err: err}
	}
	return Pair[A, B]{First: a, Second: b}, rest, nil
}

type mapped[A, B any] struct {
	p Parser[A]
	f func(A) B
}

// Map applies f to the output of p. f must not fail.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return mapped[A, B]{p: p, f: f}
}

func (m mapped[A, B]) Parse(input string) (B, string, error) {
	a, rest, err := m.p.Parse(input)
	if err != nil {
		var zero B
		return zero, "", err
	}
	return m.f(a), rest, nil
}

type end[O any] struct {
	p Parser[O]
}

// End succeeds only if p succeeds and leaves no input behind.
func End[O any](p Parser[O]) Parser[O] {
	return end[O]{p: p}
}

func (e end[O]) Parse(input string) (O, string, error) {
	out, rest, err := e.p.Parse(input)
	if err != nil {
		var zero O
		return zero, "", err
	}
	if rest != "" {
		var zero O
		return zero, "", &Error{Kind: TrailingInput, Input: rest}
	}
	return out, rest, nil
}

type recognize[O any] struct {
	p Parser[O]
}

// Recognize runs p and outputs the span of input it consumed instead of its
// output.
func Recognize[O any](p Parser[O]) Parser[string] {
	return recognize[O]{p: p}
}

func (r recognize[O]) Parse(input string) (string, string, error) {
	_, rest, err := r.p.Parse(input)
	if err != nil {
		return "", "", err
	}
	return Consumed(input, rest), rest, nil
}
