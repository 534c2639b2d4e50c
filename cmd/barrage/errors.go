package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var errorLabel = color.New(color.FgRed, color.Bold)

// printError writes err and each of its causes on a separate line.
func printError(w io.Writer, err error) {
	chain := errorChain(err)
	if len(chain) == 0 {
		return
	}
	errorLabel.Fprint(w, "error: ")
	fmt.Fprintln(w, chain[0])
	for _, cause := range chain[1:] {
		fmt.Fprintf(w, "  caused by: %s\n", cause)
	}
}

// errorChain splits a wrapped error into one message per layer, trimming the
// text each layer repeats from its cause.
func errorChain(err error) []string {
	var chain []string
	for err != nil {
		next := errors.Unwrap(err)
		msg := err.Error()
		if next != nil {
			msg = strings.TrimSuffix(msg, ": "+next.Error())
		}
		chain = append(chain, msg)
		err = next
	}
	return chain
}
