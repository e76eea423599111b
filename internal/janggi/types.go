// Package janggi provides the core Janggi types: sides, pieces, squares,
// moves and the board.
package janggi

// Side identifies a player.
type Side int

const (
	Blue Side = iota
	Red
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == Red {
		return "RED"
	}
	return "BLUE"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Red {
		return Blue
	}
	return Red
}

// Forward returns the row delta of a step towards the enemy home:
// +1 for Red, -1 for Blue.
func (s Side) Forward() int {
	if s == Red {
		return 1
	}
	return -1
}

// Letter returns the single letter used for the side in notation.
func (s Side) Letter() byte {
	if s == Red {
		return 'r'
	}
	return 'b'
}

// Kind represents a Janggi piece type.
type Kind int

const (
	NoKind Kind = iota // Empty cell
	Soldier
	Chariot
	Horse
	Elephant
	Cannon
	Guard
	General
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Soldier", "Chariot", "Horse", "Elephant", "Cannon", "Guard", "General"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Code returns the two letter code of a kind as used in board dumps.
func (k Kind) Code() string {
	codes := []string{"  ", "SO", "CH", "HO", "EL", "CA", "GU", "GE"}
	if int(k) < len(codes) {
		return codes[k]
	}
	return "??"
}

// Letter returns the single letter of a kind in position notation (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'S', 'R', 'H', 'E', 'C', 'A', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Kinds lists every piece kind in declaration order.
var Kinds = []Kind{Soldier, Chariot, Horse, Elephant, Cannon, Guard, General}

// Piece is a kind and an owning side packed into one byte.
// The zero value is Empty.
type Piece uint8

// Empty marks an unoccupied cell.
const Empty Piece = 0

// PieceShift is used for encoding the side into a piece.
const PieceShift = 1

// MakePiece creates a piece of the given side and kind.
func MakePiece(side Side, kind Kind) Piece {
	return Piece(int(kind)<<PieceShift | int(side))
}

// B creates a blue piece.
func B(kind Kind) Piece {
	return MakePiece(Blue, kind)
}

// R creates a red piece.
func R(kind Kind) Piece {
	return MakePiece(Red, kind)
}

// Kind extracts the piece kind. Empty has NoKind.
func (p Piece) Kind() Kind {
	return Kind(p >> PieceShift)
}

// Side extracts the owning side. Only meaningful for non-empty pieces.
func (p Piece) Side() Side {
	return Side(p & 0x01)
}

// IsEmpty reports whether p is the empty cell.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// BelongsTo reports whether p is a piece owned by side.
func (p Piece) BelongsTo(side Side) bool {
	return p != Empty && p.Side() == side
}

// String returns the dump form of a piece, e.g. "bGE" or "rSO".
func (p Piece) String() string {
	if p == Empty {
		return " . "
	}
	return string(p.Side().Letter()) + p.Kind().Code()
}

// GameState is the result state of a game.
type GameState int

const (
	Unfinished GameState = iota
	RedWon
	BlueWon
)

// String returns the string representation of a game state.
func (g GameState) String() string {
	switch g {
	case RedWon:
		return "RED_WON"
	case BlueWon:
		return "BLUE_WON"
	default:
		return "UNFINISHED"
	}
}

// WonBy returns the state recording a win for side.
func WonBy(side Side) GameState {
	if side == Red {
		return RedWon
	}
	return BlueWon
}

// CheckFlags records, per side, whether that side's General is attacked.
// It is a value type: updates return a new value.
type CheckFlags struct {
	Blue bool
	Red  bool
}

// InCheck returns the flag for side.
func (f CheckFlags) InCheck(side Side) bool {
	if side == Red {
		return f.Red
	}
	return f.Blue
}

// With returns a copy of f with the flag for side set to value.
func (f CheckFlags) With(side Side, value bool) CheckFlags {
	if side == Red {
		f.Red = value
	} else {
		f.Blue = value
	}
	return f
}

// Board dimensions.
const (
	Rows = 10
	Cols = 9

	RowBase = 1
	ColBase = 'a'
)
