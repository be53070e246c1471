package main

import (
	"errors"
	"fmt"
)

// The two expected ways for a day to fail. A broken invariant inside an
// engine is not one of them; that panics.
var (
	// errMalformedInput means the input text does not have the day's format.
	errMalformedInput = errors.New("malformed input")
	// errNoSolution means the input was well-formed but the search found
	// nothing satisfying the puzzle.
	errNoSolution = errors.New("no solution")
)

// A parseError locates the piece of input that could not be parsed.
// It matches errMalformedInput under errors.Is.
type parseError struct {
	line int // 1-based; 0 if the input is not line-oriented
	text string
	err  error
}

func (e *parseError) Error() string {
	switch {
	case e.line > 0:
		return fmt.Sprintf("%s at line %d (%q): %s", errMalformedInput, e.line, e.text, e.err)
	case e.text != "":
		return fmt.Sprintf("%s (%q): %s", errMalformedInput, e.text, e.err)
	}
	return fmt.Sprintf("%s: %s", errMalformedInput, e.err)
}

func (e *parseError) Unwrap() error { return e.err }

func (e *parseError) Is(target error) bool { return target == errMalformedInput }

func malformed(line int, text, format string, args ...any) error {
	return &parseError{line: line, text: text, err: fmt.Errorf(format, args...)}
}

func noSolution(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errNoSolution)
}
