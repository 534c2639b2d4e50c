// Package parse provides small, composable parser combinators over string input.
//
// # Overview
//
// A parser consumes a prefix of its input and produces either a typed value
// together with the unconsumed remainder, or an error describing why it could
// not match:
//
//	type Parser[O any] interface {
//	    Parse(input string) (out O, rest string, err error)
//	}
//
// Parsers hold no cursor. Position is tracked by narrowing the input string, so
// the remainder returned on success is always a suffix of the input. Parsers are
// immutable once built and may be shared between goroutines.
//
// # Building parsers
//
// Primitive parsers match literals, single numeric runes and the end of input:
//
//	Literal("ms")   // exact prefix
//	Numeric()       // one rune for which unicode.IsNumber holds
//	EOF()           // empty input only
//
// Combinators build larger parsers out of smaller ones:
//
//	Then(p, q)       // p followed by q, output Pair[A, B]
//	Map(p, f)        // transform output with a total function
//	End(p)           // p must consume the whole input
//	ZeroOrMore(p)    // repeat, collect outputs
//	OneOrMore(p)     // repeat, at least one
//	NOrMore(n, p)    // up to n repetitions, at least one
//	Recognize(p)     // output the span p consumed
//	OneOf(lits...)   // first matching literal wins
//	MapOneOf(cases...)
//
// Sequencing never backtracks: once Then has consumed input with its first
// parser, a failure in the second parser fails the whole sequence.
//
// # Errors
//
// Every failure produced by this package is a [*Error] whose [Kind] can be
// tested with errors.Is against the Err* sentinels. Then adds one layer of
// context per stage, so the cause chain survives composition:
//
//	second parser unsuccessful: none of provided options matched
package parse
