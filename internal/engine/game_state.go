package engine

import "github.com/ryanjbharat/janggi-go/internal/janggi"

// Outcome is the result of arbitrating a committed move.
type Outcome struct {
	// Flags are the check flags after the move.
	Flags janggi.CheckFlags

	// State is Unfinished, or the mover's win if the opponent is mated.
	State janggi.GameState

	// Check is true if the move attacks the opponent's General.
	Check bool
}

// Arbitrate evaluates the board after mover has committed a move. flags
// are the check flags from before the move. The mover's own flag is
// cleared (the legality filter guarantees the move resolved any check);
// the opponent is flagged if one of the mover's unfiltered moves lands on
// its General; and a flagged opponent with no legal reply is checkmated.
// The board is unchanged on return and the turn is not flipped.
func Arbitrate(board *janggi.Board, mover janggi.Side, flags janggi.CheckFlags) Outcome {
	opponent := mover.Opposite()
	out := Outcome{
		Flags: flags.With(mover, false),
		State: janggi.Unfinished,
	}

	general, ok := board.General(opponent)
	if ok {
		out.Check = attacks(GenerateMoves(board, mover, out.Flags), general)
	}
	out.Flags = out.Flags.With(opponent, out.Check)

	if out.Check && !HasLegalMoves(board, opponent, out.Flags) {
		out.State = janggi.WonBy(mover)
	}
	return out
}

// IsCheckmate returns true if side is in check and has no legal move.
func IsCheckmate(board *janggi.Board, side janggi.Side) bool {
	if !IsInCheck(board, side) {
		return false
	}
	flags := janggi.CheckFlags{}.With(side, true)
	return !HasLegalMoves(board, side, flags)
}
