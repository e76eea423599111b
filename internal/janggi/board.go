package janggi

import (
	"fmt"
	"strings"

	"github.com/ryanjbharat/janggi-go/internal/errors"
)

// Board is the 10x9 Janggi grid. Squares[row][col] holds Empty or a piece.
// Row 0 is Red's back rank and row 9 is Blue's.
//
// Accessors do not bounds-check beyond what the array does: an
// off-board Square is a programming error and panics.
type Board struct {
	Squares [Rows][Cols]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard opening setup.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// backRank lists the back rank pieces from column a to i. Column e is
// empty: the General starts one row in front, on its palace centre.
var backRank = [Cols]Kind{Chariot, Elephant, Horse, Guard, NoKind, Guard, Elephant, Horse, Chariot}

// SetupInitialPosition clears the board and places the 32 pieces of the
// standard opening.
func (b *Board) SetupInitialPosition() {
	b.Squares = [Rows][Cols]Piece{}

	for col, kind := range backRank {
		if kind == NoKind {
			continue
		}
		b.Squares[0][col] = R(kind)
		b.Squares[9][col] = B(kind)
	}

	b.Squares[1][4] = R(General)
	b.Squares[8][4] = B(General)

	b.Squares[2][1] = R(Cannon)
	b.Squares[2][7] = R(Cannon)
	b.Squares[7][1] = B(Cannon)
	b.Squares[7][7] = B(Cannon)

	for col := 0; col < Cols; col += 2 {
		b.Squares[3][col] = R(Soldier)
		b.Squares[6][col] = B(Soldier)
	}
}

// Get returns the piece at sq.
func (b *Board) Get(sq Square) Piece {
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece (or Empty) at sq.
func (b *Board) Set(sq Square, piece Piece) {
	b.Squares[sq.Row][sq.Col] = piece
}

// Pieces returns the squares occupied by side in row-major order.
func (b *Board) Pieces(side Side) []Square {
	var squares []Square
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if b.Squares[row][col].BelongsTo(side) {
				squares = append(squares, Square{Row: row, Col: col})
			}
		}
	}
	return squares
}

// General returns the location of side's General. Generals never leave
// their palace, so only those nine cells are searched.
func (b *Board) General(side Side) (Square, bool) {
	general := MakePiece(side, General)
	for _, sq := range PalaceSquares(side) {
		if b.Get(sq) == general {
			return sq, true
		}
	}
	return Square{}, false
}

// Count returns the number of pieces of the given side and kind.
func (b *Board) Count(side Side, kind Kind) int {
	target := MakePiece(side, kind)
	n := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if b.Squares[row][col] == target {
				n++
			}
		}
	}
	return n
}

// Apply executes m. The pass move changes nothing. It panics if the board
// does not hold m's snapshot, which means m was built against another position.
func (b *Board) Apply(m Move) {
	if m.IsPass() {
		return
	}
	if b.Get(m.From) != m.Moved || b.Get(m.To) != m.Captured {
		panic(errors.Wrapf(errors.ErrInvariant, "apply %s: board does not match move snapshot", m))
	}
	b.Set(m.To, m.Moved)
	b.Set(m.From, Empty)
}

// Undo reverts a move previously executed with Apply.
func (b *Board) Undo(m Move) {
	if m.IsPass() {
		return
	}
	if b.Get(m.To) != m.Moved || b.Get(m.From) != Empty {
		panic(errors.Wrapf(errors.ErrInvariant, "undo %s: board does not match applied move", m))
	}
	b.Set(m.From, m.Moved)
	b.Set(m.To, m.Captured)
}

// Simulate applies m and returns the function that reverts it. Callers
// defer the returned function so the board is restored on every exit path:
//
//	restore := board.Simulate(m)
//	defer restore()
func (b *Board) Simulate(m Move) (restore func()) {
	b.Apply(m)
	return func() { b.Undo(m) }
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// BoardState captures every cell for save/restore operations.
type BoardState struct {
	Squares [Rows][Cols]Piece
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{Squares: b.Squares}
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	b.Squares = s.Squares
}

// String renders the board as text: a column header and one line per row,
// Red's back rank first. Empty cells show as " . ".
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("    ")
	for col := 0; col < Cols; col++ {
		fmt.Fprintf(&sb, " %c  ", ColBase+col)
	}
	sb.WriteByte('\n')
	for row := 0; row < Rows; row++ {
		fmt.Fprintf(&sb, "%2d  ", row+RowBase)
		for col := 0; col < Cols; col++ {
			sb.WriteString(b.Squares[row][col].String())
			if col < Cols-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
