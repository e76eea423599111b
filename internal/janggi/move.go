package janggi

import "fmt"

// Move is a source and destination square plus the pieces that occupied
// them before the move. The snapshots are what Undo needs to revert it;
// they are not part of a move's identity (see Equal).
type Move struct {
	From Square
	To   Square

	// The piece standing on From before the move.
	Moved Piece

	// The piece standing on To before the move (Empty if none).
	Captured Piece
}

// NewMove creates a move from the current contents of board.
func NewMove(board *Board, from, to Square) Move {
	return Move{
		From:     from,
		To:       to,
		Moved:    board.Get(from),
		Captured: board.Get(to),
	}
}

// Equal reports whether two moves have the same source and destination.
func (m Move) Equal(other Move) bool {
	return m.From == other.From && m.To == other.To
}

// IsPass returns true if the move leaves its piece where it stands.
func (m Move) IsPass() bool {
	return m.From == m.To
}

// IsCapture returns true if the move takes an enemy piece.
func (m Move) IsCapture() bool {
	return !m.IsPass() && m.Captured != Empty
}

// String returns the move in coordinate notation, e.g. "c10-d8" or "e9-e9" for a pass.
func (m Move) String() string {
	return fmt.Sprintf("%s-%s", m.From, m.To)
}

// ContainsMove reports whether moves holds a move equal to m.
func ContainsMove(moves []Move, m Move) bool {
	_, ok := FindMove(moves, m.From, m.To)
	return ok
}

// FindMove returns the move in moves going from one square to another.
func FindMove(moves []Move, from, to Square) (Move, bool) {
	for _, m := range moves {
		if m.From == from && m.To == to {
			return m, true
		}
	}
	return Move{}, false
}
