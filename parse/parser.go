package parse

// Parser consumes a prefix of input and returns its output together with the
// remaining input. On failure the output and remainder are zero values.
type Parser[O any] interface {
	Parse(input string) (out O, rest string, err error)
}

// Func adapts a plain function to the Parser interface.
type Func[O any] func(input string) (O, string, error)

// Parse calls f(input).
func (f Func[O]) Parse(input string) (O, string, error) {
	return f(input)
}

// Pair is the output of Then.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Consumed returns the part of input that a parser consumed when it left rest.
// rest must be a suffix of input.
func Consumed(input, rest string) string {
	return input[:len(input)-len(rest)]
}
