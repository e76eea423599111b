package engine

import "github.com/ryanjbharat/janggi-go/internal/janggi"

// IsInCheck returns true if side's General is attacked by the opponent.
// A side without a General on the board is never in check.
func IsInCheck(board *janggi.Board, side janggi.Side) bool {
	general, ok := board.General(side)
	if !ok {
		return false
	}
	return IsAttacked(board, general, side.Opposite())
}

// IsAttacked returns true if any unfiltered move of bySide lands on sq.
func IsAttacked(board *janggi.Board, sq janggi.Square, bySide janggi.Side) bool {
	return attacks(generate(board, bySide, false), sq)
}

// attacks reports whether any move in moves lands on sq. Pass moves are
// never attacks: they land on a square the mover already holds.
func attacks(moves []janggi.Move, sq janggi.Square) bool {
	for _, m := range moves {
		if !m.IsPass() && m.To == sq {
			return true
		}
	}
	return false
}
