package janggi

import (
	"fmt"
	"strconv"

	"github.com/ryanjbharat/janggi-go/internal/errors"
)

// Square is a zero-based (row, col) board coordinate.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{row, col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the 10x9 board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < Rows && s.Col >= 0 && s.Col < Cols
}

// Offset returns the square dr rows and dc columns away. The result may be off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String returns the square in coordinate notation, e.g. "e9".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return fmt.Sprintf("%c%d", ColBase+s.Col, s.Row+RowBase)
}

// ParseSquare converts coordinate notation (a column letter a-i followed
// by a row number 1-10) into a Square. "e9" is row 8, column 4.
func ParseSquare(text string) (Square, error) {
	if len(text) < 2 || len(text) > 3 {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Input:    text,
			Expected: "column a-i and row 1-10",
			Got:      fmt.Sprintf("%d characters", len(text)),
		}
	}

	col := int(text[0]) - ColBase
	if col < 0 || col >= Cols {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Input:    text,
			Expected: "column a-i",
			Got:      strconv.Quote(text[:1]),
		}
	}

	digits := text[1:]
	row, err := strconv.Atoi(digits)
	if err != nil || digits[0] == '0' || digits[0] == '+' || row < RowBase || row >= Rows+RowBase {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Input:    text,
			Expected: "row 1-10",
			Got:      strconv.Quote(digits),
		}
	}

	return Square{Row: row - RowBase, Col: col}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// Intended for fixed coordinates in tables and tests.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// Palace geometry. Red's palace spans rows 0-2, Blue's rows 7-9, both
// on columns 3-5.
const (
	PalaceMinCol = 3
	PalaceMaxCol = 5

	redPalaceMinRow  = 0
	redPalaceMaxRow  = 2
	bluePalaceMinRow = 7
	bluePalaceMaxRow = 9
)

// PalaceCentre returns the centre of a side's palace, where its two
// diagonals cross.
func PalaceCentre(side Side) Square {
	if side == Red {
		return Square{Row: 1, Col: 4}
	}
	return Square{Row: 8, Col: 4}
}

// PalaceOwner returns the side whose palace contains sq.
func PalaceOwner(sq Square) (Side, bool) {
	if sq.Col < PalaceMinCol || sq.Col > PalaceMaxCol {
		return Blue, false
	}
	switch {
	case sq.Row >= redPalaceMinRow && sq.Row <= redPalaceMaxRow:
		return Red, true
	case sq.Row >= bluePalaceMinRow && sq.Row <= bluePalaceMaxRow:
		return Blue, true
	}
	return Blue, false
}

// InPalace reports whether sq is one of the 18 palace cells.
func InPalace(sq Square) bool {
	_, ok := PalaceOwner(sq)
	return ok
}

// InOwnPalace reports whether sq lies in side's own palace.
func InOwnPalace(side Side, sq Square) bool {
	owner, ok := PalaceOwner(sq)
	return ok && owner == side
}

// PalaceSquares returns the nine cells of a side's palace in row-major order.
func PalaceSquares(side Side) []Square {
	centre := PalaceCentre(side)
	squares := make([]Square, 0, 9)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			squares = append(squares, centre.Offset(dr, dc))
		}
	}
	return squares
}

// PalaceStep returns the square one diagonal step from sq in direction
// (dr, dc) when that step follows a palace diagonal. A diagonal step always
// joins a corner and the centre of the same palace.
func PalaceStep(sq Square, dr, dc int) (Square, bool) {
	if (dr != 1 && dr != -1) || (dc != 1 && dc != -1) {
		return Square{}, false
	}
	owner, ok := PalaceOwner(sq)
	if !ok {
		return Square{}, false
	}
	to := sq.Offset(dr, dc)
	toOwner, ok := PalaceOwner(to)
	if !ok || toOwner != owner {
		return Square{}, false
	}
	centre := PalaceCentre(owner)
	if sq != centre && to != centre {
		return Square{}, false
	}
	return to, true
}
