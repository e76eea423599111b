// Package errors holds the Janggi engine's sentinel errors and the error
// types that carry a rejected move or a malformed input back to the caller.
// Callers inspect them with errors.Is and errors.As.
package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrParseFailure indicates a malformed coordinate or notation string.
	ErrParseFailure = errors.New("parse failure")

	// ErrIllegalMove indicates a well-formed move that is not in the legal move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move submitted after the game has ended.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidPosition indicates a malformed or impossible position string.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvariant indicates the engine's own bookkeeping is broken.
	// It is raised by panics, never returned for user input.
	ErrInvariant = errors.New("engine invariant violated")
)

// MoveError wraps a rejected move with its context: the ply it was
// submitted at and the coordinates as the caller wrote them. It supports
// unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err         error  // The underlying error
	Ply         int    // Number of plies already played (0 at game start)
	Source      string // Source coordinate as submitted
	Destination string // Destination coordinate as submitted
}

// Error renders the rejection as "ply N, move "src" -> "dst": reason".
func (e *MoveError) Error() string {
	msg := fmt.Sprintf("ply %d", e.Ply)
	if e.Source != "" || e.Destination != "" {
		msg += fmt.Sprintf(", move %q -> %q", e.Source, e.Destination)
	}
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error for coordinates and position notation.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Expected string // What was expected
	Got      string // What was found instead
}

// Error joins the quoted input, the expectation and the underlying error.
func (e *ParseError) Error() string {
	var parts []string
	if e.Input != "" {
		parts = append(parts, strconv.Quote(e.Input))
	}
	switch {
	case e.Expected != "" && e.Got != "":
		parts = append(parts, "expected "+e.Expected+", got "+e.Got)
	case e.Expected != "":
		parts = append(parts, "expected "+e.Expected)
	case e.Got != "":
		parts = append(parts, "unexpected "+e.Got)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if len(parts) == 0 {
		return "parse error"
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
