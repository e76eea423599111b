package game

import (
	"sync"

	"github.com/ryanjbharat/janggi-go/internal/config"
	"github.com/ryanjbharat/janggi-go/internal/janggi"
)

// SyncGame wraps Game with mutex protection for concurrent access.
// Legal move queries simulate moves on the board, so they take the write lock.
type SyncGame struct {
	game *Game
	mu   sync.RWMutex
}

// NewSyncGame creates a new thread-safe game.
func NewSyncGame(cfg *config.Config) (*SyncGame, error) {
	g, err := NewGame(cfg)
	if err != nil {
		return nil, err
	}
	return &SyncGame{game: g}, nil
}

// ID returns the game's unique identifier.
func (s *SyncGame) ID() string {
	return s.game.ID()
}

// SubmitMove atomically validates and plays a move.
func (s *SyncGame) SubmitMove(src, dst string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.SubmitMove(src, dst)
}

// Move atomically validates and plays a move, returning the rejection reason.
func (s *SyncGame) Move(src, dst string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Move(src, dst)
}

// LegalMoves returns the legal moves of the side to move.
func (s *SyncGame) LegalMoves() []janggi.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.LegalMoves()
}

// LegalMovesFrom returns the legal moves of the piece on src.
func (s *SyncGame) LegalMovesFrom(src string) ([]janggi.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.LegalMovesFrom(src)
}

// State returns the game state.
func (s *SyncGame) State() janggi.GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.State()
}

// Turn returns the side to move.
func (s *SyncGame) Turn() janggi.Side {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Turn()
}

// IsInCheck reports whether side is in check.
func (s *SyncGame) IsInCheck(side janggi.Side) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.IsInCheck(side)
}

// Ply returns the number of moves played.
func (s *SyncGame) Ply() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Ply()
}

// OccupantAt returns the piece at a zero-based row and column.
func (s *SyncGame) OccupantAt(row, col int) janggi.Piece {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.OccupantAt(row, col)
}

// Position returns the game in position notation.
func (s *SyncGame) Position() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Position()
}

// String returns the text dump of the board.
func (s *SyncGame) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.String()
}
