// Package game provides the Janggi game controller. It owns the board,
// parses coordinates, keeps turn order and answers the read-only queries
// used by front ends.
package game

import (
	"github.com/google/uuid"

	"github.com/ryanjbharat/janggi-go/internal/config"
	"github.com/ryanjbharat/janggi-go/internal/engine"
	"github.com/ryanjbharat/janggi-go/internal/errors"
	"github.com/ryanjbharat/janggi-go/internal/janggi"
)

// Game is a single Janggi game. It is not safe for concurrent use; wrap it
// in a SyncGame when several goroutines share one game.
type Game struct {
	cfg    *config.Config
	id     uuid.UUID
	board  *janggi.Board
	turn   janggi.Side
	checks janggi.CheckFlags
	state  janggi.GameState
	ply    int
}

// NewGame starts a game from cfg.Game's start position, or from the
// standard opening with Blue to move. A nil cfg uses the defaults.
func NewGame(cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pos, err := cfg.Game.Position()
	if err != nil {
		return nil, errors.Wrap(err, "start position")
	}

	g := &Game{
		cfg:    cfg,
		id:     uuid.New(),
		board:  pos.Board,
		turn:   pos.ToMove,
		checks: pos.Checks,
		state:  janggi.Unfinished,
	}
	g.cfg.Logf(config.Events, "game %s: new game, %s to move", g.id, g.turn)
	return g, nil
}

// ID returns the game's unique identifier.
func (g *Game) ID() string {
	return g.id.String()
}

// SubmitMove plays the move from src to dst for the side to move. It
// returns false, leaving the game unchanged, if the game is over, either
// coordinate is malformed, or the move is not legal.
func (g *Game) SubmitMove(src, dst string) bool {
	return g.Move(src, dst) == nil
}

// Move is SubmitMove with the reason for a rejection. The error is a
// *errors.MoveError wrapping ErrGameOver, ErrParseFailure or ErrIllegalMove.
func (g *Game) Move(src, dst string) error {
	if g.state != janggi.Unfinished {
		return g.reject(src, dst, errors.ErrGameOver)
	}

	from, err := janggi.ParseSquare(src)
	if err != nil {
		return g.reject(src, dst, err)
	}
	to, err := janggi.ParseSquare(dst)
	if err != nil {
		return g.reject(src, dst, err)
	}

	m, ok := engine.IsLegal(g.board, g.turn, g.checks, from, to)
	if !ok {
		return g.reject(src, dst, errors.ErrIllegalMove)
	}

	g.commit(m)
	return nil
}

// commit applies a legal move, arbitrates check and checkmate, and passes
// the turn.
func (g *Game) commit(m janggi.Move) {
	mover := g.turn
	g.board.Apply(m)
	g.ply++

	out := engine.Arbitrate(g.board, mover, g.checks)
	g.checks = out.Flags
	g.state = out.State
	g.turn = mover.Opposite()

	g.cfg.Logf(config.Verbose, "game %s: ply %d: %s plays %s", g.id, g.ply, mover, describe(m))
	if out.Check {
		g.cfg.Logf(config.Events, "game %s: ply %d: %s is in check", g.id, g.ply, mover.Opposite())
	}
	if out.State != janggi.Unfinished {
		g.cfg.Logf(config.Events, "game %s: ply %d: checkmate, %s", g.id, g.ply, out.State)
	}
}

// reject logs and returns a rejected move.
func (g *Game) reject(src, dst string, err error) error {
	merr := &errors.MoveError{
		Err:         err,
		Ply:         g.ply,
		Source:      src,
		Destination: dst,
	}
	g.cfg.Logf(config.Verbose, "game %s: rejected: %v", g.id, merr)
	return merr
}

// describe renders a move for the log.
func describe(m janggi.Move) string {
	switch {
	case m.IsPass():
		return m.Moved.String() + " pass at " + m.From.String()
	case m.IsCapture():
		return m.Moved.String() + " " + m.String() + " takes " + m.Captured.String()
	default:
		return m.Moved.String() + " " + m.String()
	}
}

// State returns the game state.
func (g *Game) State() janggi.GameState {
	return g.state
}

// Turn returns the side to move.
func (g *Game) Turn() janggi.Side {
	return g.turn
}

// IsInCheck reports whether side was left in check by the last move.
func (g *Game) IsInCheck(side janggi.Side) bool {
	return g.checks.InCheck(side)
}

// Ply returns the number of moves played.
func (g *Game) Ply() int {
	return g.ply
}

// LegalMoves returns the legal moves of the side to move, including pass
// moves. It returns nil once the game is over.
func (g *Game) LegalMoves() []janggi.Move {
	if g.state != janggi.Unfinished {
		return nil
	}
	return engine.LegalMoves(g.board, g.turn, g.checks)
}

// LegalMovesFrom returns the legal moves of the piece on src. A square that
// does not hold a piece of the side to move has none.
func (g *Game) LegalMovesFrom(src string) ([]janggi.Move, error) {
	from, err := janggi.ParseSquare(src)
	if err != nil {
		return nil, err
	}
	if g.state != janggi.Unfinished || !g.board.Get(from).BelongsTo(g.turn) {
		return nil, nil
	}

	var moves []janggi.Move
	for _, m := range engine.PieceMoves(g.board, from, g.checks) {
		if _, ok := engine.IsLegal(g.board, g.turn, g.checks, m.From, m.To); ok {
			moves = append(moves, m)
		}
	}
	return moves, nil
}

// OccupantAt returns the piece at a zero-based row and column, or Empty.
// Coordinates off the board are empty.
func (g *Game) OccupantAt(row, col int) janggi.Piece {
	sq := janggi.Sq(row, col)
	if !sq.Valid() {
		return janggi.Empty
	}
	return g.board.Get(sq)
}

// Position returns the game in position notation.
func (g *Game) Position() string {
	pos := janggi.Position{Board: g.board, ToMove: g.turn, Checks: g.checks}
	return pos.String()
}

// String returns the text dump of the board.
func (g *Game) String() string {
	return g.board.String()
}
