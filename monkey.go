package monkey

import (
	"strings"
)

// Parses the input Monkey source, returning the `Program` and an error.
//
// The program is never nil. Parsing is best-effort, so it holds every
// statement that could be parsed even when the error is non-nil.
// The error, if any, is a `*ParseError` carrying all diagnostics
// in the order they were found.
func Parse(input string) (*Program, error) {
	var parser = NewParser(NewTokenizer(input))
	var program = parser.ParseProgram()

	if errs := parser.Errors(); len(errs) > 0 {
		return program, &ParseError{Messages: errs}
	}

	return program, nil
}

// ParseError collects the diagnostics of one parse.
type ParseError struct {
	Messages []string
}

func (e *ParseError) Error() string {
	return strings.Join(e.Messages, "; ")
}
