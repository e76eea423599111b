package testutil

import (
	"testing"

	"github.com/ryanjbharat/janggi-go/internal/janggi"
)

// ParseTestPosition parses a position string, returning nil if it is
// malformed. Use this for tests where a parse failure is an acceptable outcome.
func ParseTestPosition(text string) *janggi.Position {
	pos, err := janggi.ParsePosition(text)
	if err != nil {
		return nil
	}
	return pos
}

// MustParsePosition parses a position string.
// It calls t.Fatal if parsing fails.
func MustParsePosition(t *testing.T, text string) *janggi.Position {
	t.Helper()
	pos, err := janggi.ParsePosition(text)
	if err != nil {
		t.Fatalf("failed to parse test position %q: %v", text, err)
	}
	return pos
}

// MustParseSquares converts coordinate strings into squares.
// It calls t.Fatal on the first malformed coordinate.
func MustParseSquares(t *testing.T, coords ...string) []janggi.Square {
	t.Helper()
	squares := make([]janggi.Square, 0, len(coords))
	for _, c := range coords {
		sq, err := janggi.ParseSquare(c)
		if err != nil {
			t.Fatalf("failed to parse test square %q: %v", c, err)
		}
		squares = append(squares, sq)
	}
	return squares
}

// Destinations returns the destination of every move leaving from, in
// coordinate notation. Pass moves are included as from itself.
func Destinations(moves []janggi.Move, from janggi.Square) []string {
	var dests []string
	for _, m := range moves {
		if m.From == from {
			dests = append(dests, m.To.String())
		}
	}
	return dests
}
