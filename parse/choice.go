package parse

// Case pairs a literal with the value MapOneOf produces when it matches.
type Case[O any] struct {
	Literal string
	Value   O
}

type choice[O any] []Parser[O]

func (c choice[O]) Parse(input string) (O, string, error) {
	for _, p := range c {
		if out, rest, err := p.Parse(input); err == nil {
			return out, rest, nil
		}
	}
	var zero O
	return zero, "", &Error{Kind: NoAlternativeMatched, Input: input}
}

// OneOf tries each literal in order at the same position and outputs the
// first one that matches. When one candidate is a prefix of another, the
// longer one must come first to be reachable.
func OneOf(literals ...string) Parser[string] {
	c := make(choice[string], len(literals))
	for i, lit := range literals {
		c[i] = Literal(lit)
	}
	return c
}

// MapOneOf is OneOf that outputs the Value of the first matching Case.
func MapOneOf[O any](cases ...Case[O]) Parser[O] {
	c := make(choice[O], len(cases))
	for i, cs := range cases {
		value := cs.Value
		c[i] = Map(Literal(cs.Literal), func(string) O { return value })
	}
	return c
}
