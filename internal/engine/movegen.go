// Package engine provides Janggi move generation, legality checking and
// check/checkmate arbitration.
package engine

import "github.com/ryanjbharat/janggi-go/internal/janggi"

// Step directions as (row, col) deltas.
var (
	orthogonalDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	kingDirs       = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// GenerateMoves returns every geometrically possible move of side's pieces,
// not yet filtered for leaving side's General attacked. Each piece also
// offers the pass move unless side is flagged in check.
func GenerateMoves(board *janggi.Board, side janggi.Side, flags janggi.CheckFlags) []janggi.Move {
	return generate(board, side, !flags.InCheck(side))
}

// PieceMoves returns the unfiltered moves of the piece standing on from.
// An empty square yields no moves.
func PieceMoves(board *janggi.Board, from janggi.Square, flags janggi.CheckFlags) []janggi.Move {
	piece := board.Get(from)
	if piece == janggi.Empty {
		return nil
	}
	gen := &moveList{board: board, from: from, side: piece.Side()}
	gen.pieceMoves(piece.Kind(), !flags.InCheck(piece.Side()))
	return gen.moves
}

// generate collects the moves of all of side's pieces.
func generate(board *janggi.Board, side janggi.Side, withPass bool) []janggi.Move {
	var moves []janggi.Move
	for _, from := range board.Pieces(side) {
		gen := &moveList{board: board, from: from, side: side, moves: moves}
		gen.pieceMoves(board.Get(from).Kind(), withPass)
		moves = gen.moves
	}
	return moves
}

// moveList accumulates the moves of the piece on from.
type moveList struct {
	board *janggi.Board
	from  janggi.Square
	side  janggi.Side
	moves []janggi.Move
}

// pieceMoves dispatches on the piece kind.
func (g *moveList) pieceMoves(kind janggi.Kind, withPass bool) {
	if withPass {
		g.add(g.from)
	}

	switch kind {
	case janggi.Soldier:
		g.soldierMoves()
	case janggi.Chariot:
		g.chariotMoves()
	case janggi.Horse:
		g.horseMoves()
	case janggi.Elephant:
		g.elephantMoves()
	case janggi.Cannon:
		g.cannonMoves()
	case janggi.Guard, janggi.General:
		g.palaceMoves()
	}
}

// add records a move from g.from to to.
func (g *moveList) add(to janggi.Square) {
	g.moves = append(g.moves, janggi.NewMove(g.board, g.from, to))
}

// canLand reports whether to is on the board and empty or enemy-occupied.
func (g *moveList) canLand(to janggi.Square) bool {
	if !to.Valid() {
		return false
	}
	return !g.board.Get(to).BelongsTo(g.side)
}

// isEmpty reports whether sq is on the board and unoccupied.
func (g *moveList) isEmpty(sq janggi.Square) bool {
	return sq.Valid() && g.board.Get(sq) == janggi.Empty
}

// soldierMoves: one step forward or sideways, plus a forward diagonal
// step along a palace diagonal. Never backward.
func (g *moveList) soldierMoves() {
	fwd := g.side.Forward()
	for _, d := range [][2]int{{fwd, 0}, {0, -1}, {0, 1}} {
		if to := g.from.Offset(d[0], d[1]); g.canLand(to) {
			g.add(to)
		}
	}
	for _, dc := range []int{-1, 1} {
		if to, ok := janggi.PalaceStep(g.from, fwd, dc); ok && g.canLand(to) {
			g.add(to)
		}
	}
}

// chariotMoves: orthogonal slides, plus slides along palace diagonals.
func (g *moveList) chariotMoves() {
	for _, d := range orthogonalDirs {
		g.slide(orthogonalStep(d))
	}
	if janggi.InPalace(g.from) {
		for _, d := range diagonalDirs {
			g.slide(palaceStep(d))
		}
	}
}

// slide walks from g.from with next until blocked. Empty cells are
// destinations; the first occupied cell ends the walk and is a
// destination only if it holds an enemy piece.
func (g *moveList) slide(next func(janggi.Square) (janggi.Square, bool)) {
	sq := g.from
	for {
		var ok bool
		sq, ok = next(sq)
		if !ok {
			return
		}
		target := g.board.Get(sq)
		if target == janggi.Empty {
			g.add(sq)
			continue
		}
		if !target.BelongsTo(g.side) {
			g.add(sq)
		}
		return
	}
}

// horseMoves: one orthogonal step onto an empty cell, then one diagonal
// step away from the origin.
func (g *moveList) horseMoves() {
	for _, d := range orthogonalDirs {
		if !g.isEmpty(g.from.Offset(d[0], d[1])) {
			continue
		}
		for _, p := range perpendicular(d) {
			to := g.from.Offset(2*d[0]+p[0], 2*d[1]+p[1])
			if g.canLand(to) {
				g.add(to)
			}
		}
	}
}

// elephantMoves: one orthogonal step then two diagonal steps away from
// the origin. Both intermediate cells must be empty.
func (g *moveList) elephantMoves() {
	for _, d := range orthogonalDirs {
		if !g.isEmpty(g.from.Offset(d[0], d[1])) {
			continue
		}
		for _, p := range perpendicular(d) {
			if !g.isEmpty(g.from.Offset(2*d[0]+p[0], 2*d[1]+p[1])) {
				continue
			}
			to := g.from.Offset(3*d[0]+2*p[0], 3*d[1]+2*p[1])
			if g.canLand(to) {
				g.add(to)
			}
		}
	}
}

// cannonMoves: orthogonal and palace-diagonal lines that jump exactly one
// screen.
func (g *moveList) cannonMoves() {
	for _, d := range orthogonalDirs {
		g.jump(orthogonalStep(d))
	}
	if janggi.InPalace(g.from) {
		for _, d := range diagonalDirs {
			g.jump(palaceStep(d))
		}
	}
}

// jump walks from g.from with next looking for a screen. The screen may
// belong to either side but must not be a Cannon. Past the screen, empty
// cells are destinations and the first occupied cell ends the walk; it is
// captured only if it is an enemy piece other than a Cannon.
func (g *moveList) jump(next func(janggi.Square) (janggi.Square, bool)) {
	sq := g.from
	screened := false
	for {
		var ok bool
		sq, ok = next(sq)
		if !ok {
			return
		}
		target := g.board.Get(sq)
		if !screened {
			if target == janggi.Empty {
				continue
			}
			if target.Kind() == janggi.Cannon {
				return
			}
			screened = true
			continue
		}
		if target == janggi.Empty {
			g.add(sq)
			continue
		}
		if !target.BelongsTo(g.side) && target.Kind() != janggi.Cannon {
			g.add(sq)
		}
		return
	}
}

// palaceMoves: Guards and the General step once in any of the eight
// directions without leaving their own palace.
func (g *moveList) palaceMoves() {
	for _, d := range kingDirs {
		to := g.from.Offset(d[0], d[1])
		if janggi.InOwnPalace(g.side, to) && g.canLand(to) {
			g.add(to)
		}
	}
}

// orthogonalStep returns a stepper along d that stops at the board edge.
func orthogonalStep(d [2]int) func(janggi.Square) (janggi.Square, bool) {
	return func(sq janggi.Square) (janggi.Square, bool) {
		next := sq.Offset(d[0], d[1])
		return next, next.Valid()
	}
}

// palaceStep returns a stepper along d that follows the palace diagonals.
func palaceStep(d [2]int) func(janggi.Square) (janggi.Square, bool) {
	return func(sq janggi.Square) (janggi.Square, bool) {
		return janggi.PalaceStep(sq, d[0], d[1])
	}
}

// perpendicular returns the two unit vectors at right angles to d.
func perpendicular(d [2]int) [2][2]int {
	return [2][2]int{{d[1], d[0]}, {-d[1], -d[0]}}
}
