package engine

import "github.com/ryanjbharat/janggi-go/internal/janggi"

// LegalMoves returns side's moves that do not leave its own General
// attacked. The board is unchanged on return.
func LegalMoves(board *janggi.Board, side janggi.Side, flags janggi.CheckFlags) []janggi.Move {
	candidates := GenerateMoves(board, side, flags)
	legal := make([]janggi.Move, 0, len(candidates))
	for _, m := range candidates {
		if !exposesGeneral(board, side, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if side has at least one legal move.
func HasLegalMoves(board *janggi.Board, side janggi.Side, flags janggi.CheckFlags) bool {
	for _, m := range GenerateMoves(board, side, flags) {
		if !exposesGeneral(board, side, m) {
			return true
		}
	}
	return false
}

// IsLegal reports whether the move from one square to another is legal for
// side, returning the move with its snapshots when it is.
func IsLegal(board *janggi.Board, side janggi.Side, flags janggi.CheckFlags, from, to janggi.Square) (janggi.Move, bool) {
	if !from.Valid() || !board.Get(from).BelongsTo(side) {
		return janggi.Move{}, false
	}
	m, ok := janggi.FindMove(PieceMoves(board, from, flags), from, to)
	if !ok || exposesGeneral(board, side, m) {
		return janggi.Move{}, false
	}
	return m, true
}

// exposesGeneral simulates m and reports whether side's General is then
// attacked by any of the opponent's unfiltered moves.
func exposesGeneral(board *janggi.Board, side janggi.Side, m janggi.Move) bool {
	restore := board.Simulate(m)
	defer restore()
	return IsInCheck(board, side)
}
