package janggi

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ryanjbharat/janggi-go/internal/errors"
)

// InitialPosition is the position string for the standard opening.
const InitialPosition = "reha1aehr/4k4/1c5c1/s1s1s1s1s/9/9/S1S1S1S1S/1C5C1/4K4/REHA1AEHR b -"

// Position bundles a board with the side to move and the check flags,
// everything needed to resume a game.
type Position struct {
	Board  *Board
	ToMove Side
	Checks CheckFlags
}

// ConvertLetterToKind converts a position letter to a piece kind.
func ConvertLetterToKind(c byte) Kind {
	switch c {
	case 'K', 'k':
		return General
	case 'A', 'a':
		return Guard
	case 'E', 'e':
		return Elephant
	case 'H', 'h':
		return Horse
	case 'R', 'r':
		return Chariot
	case 'C', 'c':
		return Cannon
	case 'S', 's':
		return Soldier
	default:
		return NoKind
	}
}

// PieceLetter returns the position letter of a piece: uppercase for
// Blue, lowercase for Red.
func PieceLetter(p Piece) byte {
	letter := p.Kind().Letter()
	if p.Side() == Red {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// ParsePosition parses a position string of the form
// "<rows> [<side> [<checks>]]". Rows run from row 1 (Red's back rank)
// to row 10, separated by '/'. Digits count empty cells. Side is 'b' or
// 'r' (default 'b'). Checks is '-' or a combination of 'b' and 'r'.
func ParsePosition(text string) (*Position, error) {
	parts := strings.Fields(text)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty position string: %w", errors.ErrInvalidPosition)
	}
	if len(parts) > 3 {
		return nil, fmt.Errorf("too many fields (%d): %w", len(parts), errors.ErrInvalidPosition)
	}

	pos := &Position{Board: NewBoard(), ToMove: Blue}

	if err := parsePlacement(pos.Board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, parts); err != nil {
		return nil, err
	}
	if err := parseChecks(pos, parts); err != nil {
		return nil, err
	}
	if err := validateGenerals(pos.Board); err != nil {
		return nil, err
	}

	return pos, nil
}

// MustParsePosition is like ParsePosition but panics on error.
func MustParsePosition(text string) *Position {
	pos, err := ParsePosition(text)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePlacement parses the piece placement field.
func parsePlacement(board *Board, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != Rows {
		return fmt.Errorf("expected %d rows, got %d: %w", Rows, len(rows), errors.ErrInvalidPosition)
	}

	for row, text := range rows {
		col := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c >= '1' && c <= '9' {
				col += int(c - '0')
				continue
			}
			kind := ConvertLetterToKind(c)
			if kind == NoKind {
				return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidPosition)
			}
			if col >= Cols {
				return fmt.Errorf("row %d overflows %d columns: %w", row+RowBase, Cols, errors.ErrInvalidPosition)
			}
			side := Blue
			if unicode.IsLower(rune(c)) {
				side = Red
			}
			board.Set(Square{Row: row, Col: col}, MakePiece(side, kind))
			col++
		}
		if col != Cols {
			return fmt.Errorf("row %d has %d columns, want %d: %w", row+RowBase, col, Cols, errors.ErrInvalidPosition)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "b":
		pos.ToMove = Blue
	case "r":
		pos.ToMove = Red
	default:
		return fmt.Errorf("invalid side to move %q: %w", parts[1], errors.ErrInvalidPosition)
	}
	return nil
}

// parseChecks parses the check flags field.
func parseChecks(pos *Position, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}
	for _, c := range parts[2] {
		switch c {
		case 'b':
			pos.Checks.Blue = true
		case 'r':
			pos.Checks.Red = true
		default:
			return fmt.Errorf("invalid check flag %q: %w", c, errors.ErrInvalidPosition)
		}
	}
	return nil
}

// validateGenerals rejects positions with more than one General per side
// or a General outside its own palace.
func validateGenerals(board *Board) error {
	for _, side := range []Side{Blue, Red} {
		if n := board.Count(side, General); n > 1 {
			return fmt.Errorf("%s has %d generals: %w", side, n, errors.ErrInvalidPosition)
		}
	}
	for _, side := range []Side{Blue, Red} {
		for _, sq := range board.Pieces(side) {
			if board.Get(sq).Kind() == General && !InOwnPalace(side, sq) {
				return fmt.Errorf("%s general outside its palace at %s: %w", side, sq, errors.ErrInvalidPosition)
			}
		}
	}
	return nil
}

// String converts a position to its position string.
func (p *Position) String() string {
	var sb strings.Builder

	writePlacement(&sb, p.Board)
	sb.WriteByte(' ')
	sb.WriteByte(p.ToMove.Letter())
	sb.WriteByte(' ')
	writeChecks(&sb, p.Checks)

	return sb.String()
}

// writePlacement writes the piece placement to the builder.
func writePlacement(sb *strings.Builder, board *Board) {
	for row := 0; row < Rows; row++ {
		emptyCount := 0
		for col := 0; col < Cols; col++ {
			piece := board.Squares[row][col]
			if piece == Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < Rows-1 {
			sb.WriteByte('/')
		}
	}
}

// writeChecks writes the check flags to the builder.
func writeChecks(sb *strings.Builder, checks CheckFlags) {
	if !checks.Blue && !checks.Red {
		sb.WriteByte('-')
		return
	}
	if checks.Blue {
		sb.WriteByte('b')
	}
	if checks.Red {
		sb.WriteByte('r')
	}
}
