package engine

import (
	"sort"
	"testing"

	"github.com/ryanjbharat/janggi-go/internal/janggi"
	"github.com/ryanjbharat/janggi-go/internal/testutil"
)

// sortedDestinations returns the sorted destinations of the piece on from.
func sortedDestinations(board *janggi.Board, from janggi.Square, flags janggi.CheckFlags) []string {
	dests := testutil.Destinations(PieceMoves(board, from, flags), from)
	sort.Strings(dests)
	return dests
}

func sorted(coords ...string) []string {
	out := append([]string(nil), coords...)
	sort.Strings(out)
	return out
}

func TestPieceMoves_InitialPosition(t *testing.T) {
	board := janggi.NewInitialBoard()

	tests := []struct {
		name string
		from string
		want []string
	}{
		{"blue horse c10", "c10", sorted("c10", "d8")},
		{"blue elephant b10", "b10", sorted("b10", "d7")},
		{"blue cannon b8", "b8", sorted("b8")},
		{"blue guard d10", "d10", sorted("d10", "d9", "e10")},
		{"blue general e9", "e9", sorted("e9", "d8", "e8", "f8", "d9", "f9", "e10")},
		{"blue chariot a10", "a10", sorted("a10", "a9", "a8")},
		{"blue soldier a7", "a7", sorted("a7", "a6", "b7")},
		{"blue soldier e7", "e7", sorted("e7", "e6", "d7", "f7")},
		{"red soldier e4", "e4", sorted("e4", "e5", "d4", "f4")},
		{"red cannon h3", "h3", sorted("h3")},
		{"red horse h1", "h1", sorted("h1", "g3", "i3")},
		{"empty cell", "e5", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sortedDestinations(board, janggi.MustParseSquare(tt.from), janggi.CheckFlags{})
			testutil.AssertEqual(t, got, tt.want, "PieceMoves(%s)", tt.from)
		})
	}
}

func TestPieceMoves_Soldier(t *testing.T) {
	tests := []struct {
		name  string
		setup map[string]janggi.Piece
		from  string
		want  []string
	}{
		{
			name:  "red soldier on blue palace corner takes the diagonal to the centre",
			setup: map[string]janggi.Piece{"d8": janggi.R(janggi.Soldier)},
			from:  "d8",
			want:  sorted("d8", "d9", "c8", "e8", "e9"),
		},
		{
			name:  "red soldier on palace edge has no diagonal",
			setup: map[string]janggi.Piece{"e8": janggi.R(janggi.Soldier)},
			from:  "e8",
			want:  sorted("e8", "e9", "d8", "f8"),
		},
		{
			name: "red soldier on palace centre steps to both far corners",
			setup: map[string]janggi.Piece{
				"e9":  janggi.R(janggi.Soldier),
				"e10": janggi.B(janggi.General),
			},
			from: "e9",
			want: sorted("e9", "e10", "d9", "f9", "d10", "f10"),
		},
		{
			name: "blue soldier in red palace",
			setup: map[string]janggi.Piece{
				"f3": janggi.B(janggi.Soldier),
				"d1": janggi.R(janggi.General),
			},
			from: "f3",
			want: sorted("f3", "f2", "e3", "g3", "e2"),
		},
		{
			name: "blocked by friends, captures enemies",
			setup: map[string]janggi.Piece{
				"c5": janggi.B(janggi.Soldier),
				"c4": janggi.B(janggi.Chariot),
				"b5": janggi.R(janggi.Horse),
				"d5": janggi.B(janggi.Horse),
			},
			from: "c5",
			want: sorted("c5", "b5"),
		},
		{
			name:  "soldier on the far rank only moves sideways",
			setup: map[string]janggi.Piece{"a1": janggi.B(janggi.Soldier)},
			from:  "a1",
			want:  sorted("a1", "b1"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardWith(t, tt.setup)
			got := sortedDestinations(board, janggi.MustParseSquare(tt.from), janggi.CheckFlags{})
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestPieceMoves_SoldierNeverMovesBackward(t *testing.T) {
	for _, side := range []janggi.Side{janggi.Blue, janggi.Red} {
		for row := 0; row < janggi.Rows; row++ {
			for col := 0; col < janggi.Cols; col++ {
				board := janggi.NewBoard()
				from := janggi.Sq(row, col)
				board.Set(from, janggi.MakePiece(side, janggi.Soldier))

				for _, m := range PieceMoves(board, from, janggi.CheckFlags{}) {
					delta := (m.To.Row - m.From.Row) * side.Forward()
					if delta < 0 {
						t.Errorf("%v soldier on %v moves backward to %v", side, from, m.To)
					}
				}
			}
		}
	}
}

func TestPieceMoves_Chariot(t *testing.T) {
	tests := []struct {
		name  string
		setup map[string]janggi.Piece
		from  string
		want  []string
	}{
		{
			name:  "palace corner slides two steps along the diagonal",
			setup: map[string]janggi.Piece{"d8": janggi.B(janggi.Chariot)},
			from:  "d8",
			want: sorted("d8",
				"d7", "d6", "d5", "d4", "d3", "d2", "d1",
				"d9", "d10",
				"c8", "b8", "a8",
				"e8", "f8", "g8", "h8", "i8",
				"e9", "f10"),
		},
		{
			name:  "palace centre reaches all four corners",
			setup: map[string]janggi.Piece{"e2": janggi.R(janggi.Chariot)},
			from:  "e2",
			want: sorted("e2",
				"e1", "e3", "e4", "e5", "e6", "e7", "e8", "e9", "e10",
				"a2", "b2", "c2", "d2", "f2", "g2", "h2", "i2",
				"d1", "f1", "d3", "f3"),
		},
		{
			name: "diagonal stops on enemy and before friend",
			setup: map[string]janggi.Piece{
				"d8": janggi.B(janggi.Chariot),
				"e9": janggi.R(janggi.Horse),
				"d9": janggi.B(janggi.Guard),
				"c8": janggi.B(janggi.Soldier),
				"e8": janggi.R(janggi.Soldier),
				"d7": janggi.B(janggi.Soldier),
			},
			from: "d8",
			want: sorted("d8", "e9", "e8"),
		},
		{
			name:  "outside the palace there are no diagonals",
			setup: map[string]janggi.Piece{"c9": janggi.B(janggi.Chariot)},
			from:  "c9",
			want: sorted("c9",
				"c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8", "c10",
				"a9", "b9", "d9", "e9", "f9", "g9", "h9", "i9"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardWith(t, tt.setup)
			got := sortedDestinations(board, janggi.MustParseSquare(tt.from), janggi.CheckFlags{})
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestPieceMoves_HorseAndElephant(t *testing.T) {
	tests := []struct {
		name  string
		setup map[string]janggi.Piece
		from  string
		want  []string
	}{
		{
			name:  "horse in the open",
			setup: map[string]janggi.Piece{"e5": janggi.B(janggi.Horse)},
			from:  "e5",
			want:  sorted("e5", "d3", "f3", "d7", "f7", "c4", "c6", "g4", "g6"),
		},
		{
			name: "horse leg blocked",
			setup: map[string]janggi.Piece{
				"e5": janggi.B(janggi.Horse),
				"e4": janggi.R(janggi.Soldier),
				"d7": janggi.B(janggi.Soldier),
				"f7": janggi.R(janggi.Soldier),
			},
			from: "e5",
			want: sorted("e5", "f7", "c4", "c6", "g4", "g6"),
		},
		{
			name:  "elephant in the open",
			setup: map[string]janggi.Piece{"e5": janggi.R(janggi.Elephant)},
			from:  "e5",
			want:  sorted("e5", "c2", "g2", "c8", "g8", "b3", "b7", "h3", "h7"),
		},
		{
			name: "elephant blocked on either segment, captures like any piece",
			setup: map[string]janggi.Piece{
				"e5": janggi.R(janggi.Elephant),
				"d3": janggi.B(janggi.Soldier), // second segment towards c2
				"e6": janggi.R(janggi.Soldier), // first segment towards c8 and g8
				"g2": janggi.B(janggi.Chariot), // enemy on destination
				"b3": janggi.R(janggi.Guard),   // friend on destination
			},
			from: "e5",
			want: sorted("e5", "g2", "b7", "h3", "h7"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardWith(t, tt.setup)
			got := sortedDestinations(board, janggi.MustParseSquare(tt.from), janggi.CheckFlags{})
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestPieceMoves_Cannon(t *testing.T) {
	tests := []struct {
		name  string
		setup map[string]janggi.Piece
		from  string
		want  []string
	}{
		{
			name: "jumps a screen and captures the first piece beyond",
			setup: map[string]janggi.Piece{
				"e5": janggi.B(janggi.Cannon),
				"e3": janggi.R(janggi.Soldier),
				"e1": janggi.R(janggi.Chariot),
			},
			from: "e5",
			want: sorted("e5", "e2", "e1"),
		},
		{
			name: "friendly screen works too",
			setup: map[string]janggi.Piece{
				"a5": janggi.B(janggi.Cannon),
				"c5": janggi.B(janggi.Soldier),
			},
			from: "a5",
			want: sorted("a5", "d5", "e5", "f5", "g5", "h5", "i5"),
		},
		{
			name: "cannot capture a cannon",
			setup: map[string]janggi.Piece{
				"e5": janggi.B(janggi.Cannon),
				"e3": janggi.R(janggi.Soldier),
				"e2": janggi.R(janggi.Cannon),
			},
			from: "e5",
			want: sorted("e5"),
		},
		{
			name: "cannot use a cannon as a screen",
			setup: map[string]janggi.Piece{
				"e5": janggi.B(janggi.Cannon),
				"e3": janggi.R(janggi.Cannon),
				"e1": janggi.R(janggi.Chariot),
			},
			from: "e5",
			want: sorted("e5"),
		},
		{
			name: "palace diagonal over the centre",
			setup: map[string]janggi.Piece{
				"d10": janggi.B(janggi.Cannon),
				"e9":  janggi.B(janggi.Guard),
				"f10": janggi.B(janggi.General),
			},
			from: "d10",
			want: sorted("d10", "f8", "g10", "h10", "i10"),
		},
		{
			name: "palace diagonal capture",
			setup: map[string]janggi.Piece{
				"d10": janggi.B(janggi.Cannon),
				"e9":  janggi.R(janggi.Horse),
				"f8":  janggi.R(janggi.Chariot),
			},
			from: "d10",
			want: sorted("d10", "f8"),
		},
		{
			name: "palace diagonal never lands on a cannon",
			setup: map[string]janggi.Piece{
				"d10": janggi.B(janggi.Cannon),
				"e9":  janggi.R(janggi.Horse),
				"f8":  janggi.R(janggi.Cannon),
			},
			from: "d10",
			want: sorted("d10"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardWith(t, tt.setup)
			got := sortedDestinations(board, janggi.MustParseSquare(tt.from), janggi.CheckFlags{})
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestPieceMoves_CannonNeverScreensOrCapturesCannon(t *testing.T) {
	positions := []string{
		janggi.InitialPosition,
		"3ak4/4c4/9/4C4/4c4/4C4/9/1C5C1/4K4/9 b",
		"4k4/9/9/9/9/9/9/3c5/4C4/3CK4 b",
		"c1C1c1C1c/4k4/9/9/9/9/9/9/4K4/C1c1C1c1C r",
	}

	for _, text := range positions {
		pos := testutil.MustParsePosition(t, text)
		for _, side := range []janggi.Side{janggi.Blue, janggi.Red} {
			for _, m := range GenerateMoves(pos.Board, side, janggi.CheckFlags{}) {
				if m.Moved.Kind() != janggi.Cannon || m.IsPass() {
					continue
				}
				if m.Captured.Kind() == janggi.Cannon {
					t.Errorf("%s: cannon move %v captures a cannon", text, m)
				}
				screens := piecesBetween(pos.Board, m.From, m.To)
				if len(screens) != 1 {
					t.Errorf("%s: cannon move %v jumps %d pieces; want 1", text, m, len(screens))
					continue
				}
				if screens[0].Kind() == janggi.Cannon {
					t.Errorf("%s: cannon move %v uses a cannon as screen", text, m)
				}
			}
		}
	}
}

func TestPieceMoves_GuardAndGeneralStayInPalace(t *testing.T) {
	tests := []struct {
		name  string
		setup map[string]janggi.Piece
		from  string
		want  []string
	}{
		{
			name:  "general in centre",
			setup: map[string]janggi.Piece{"e9": janggi.B(janggi.General)},
			from:  "e9",
			want:  sorted("e9", "d8", "e8", "f8", "d9", "f9", "d10", "e10", "f10"),
		},
		{
			name:  "guard in corner",
			setup: map[string]janggi.Piece{"f1": janggi.R(janggi.Guard)},
			from:  "f1",
			want:  sorted("f1", "e1", "e2", "f2"),
		},
		{
			name: "guard on palace edge captures and respects friends",
			setup: map[string]janggi.Piece{
				"d2": janggi.R(janggi.Guard),
				"e2": janggi.R(janggi.General),
				"d3": janggi.B(janggi.Soldier),
			},
			from: "d2",
			want: sorted("d2", "d1", "e1", "d3", "e3"),
		},
		{
			name:  "general never enters the enemy palace",
			setup: map[string]janggi.Piece{"e3": janggi.R(janggi.General)},
			from:  "e3",
			want:  sorted("e3", "d2", "e2", "f2", "d3", "f3"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardWith(t, tt.setup)
			got := sortedDestinations(board, janggi.MustParseSquare(tt.from), janggi.CheckFlags{})
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestGenerateMoves_PassOnlyWhenNotInCheck(t *testing.T) {
	board := janggi.NewInitialBoard()

	for _, side := range []janggi.Side{janggi.Blue, janggi.Red} {
		pieces := board.Pieces(side)

		free := GenerateMoves(board, side, janggi.CheckFlags{})
		checked := GenerateMoves(board, side, janggi.CheckFlags{}.With(side, true))
		otherChecked := GenerateMoves(board, side, janggi.CheckFlags{}.With(side.Opposite(), true))

		if got := countPasses(free); got != len(pieces) {
			t.Errorf("%v not in check: %d pass moves; want %d", side, got, len(pieces))
		}
		if got := countPasses(otherChecked); got != len(pieces) {
			t.Errorf("%v with opponent in check: %d pass moves; want %d", side, got, len(pieces))
		}
		if got := countPasses(checked); got != 0 {
			t.Errorf("%v in check: %d pass moves; want 0", side, got)
		}
		if len(free)-len(checked) != len(pieces) {
			t.Errorf("%v: check flag removed %d moves; want only the %d passes", side, len(free)-len(checked), len(pieces))
		}
	}
}

func TestGenerateMoves_OnlyOwnPieces(t *testing.T) {
	board := janggi.NewInitialBoard()
	for _, m := range GenerateMoves(board, janggi.Red, janggi.CheckFlags{}) {
		if !m.Moved.BelongsTo(janggi.Red) {
			t.Errorf("red move list contains %v moving %v", m, m.Moved)
		}
		if !m.To.Valid() {
			t.Errorf("move %v leaves the board", m)
		}
		if !m.IsPass() && m.Captured.BelongsTo(janggi.Red) {
			t.Errorf("move %v lands on a friendly piece", m)
		}
	}
}

// boardWith builds a board from coordinate -> piece assignments.
func boardWith(t *testing.T, setup map[string]janggi.Piece) *janggi.Board {
	t.Helper()
	board := janggi.NewBoard()
	for coord, piece := range setup {
		sq := testutil.MustParseSquares(t, coord)[0]
		board.Set(sq, piece)
	}
	return board
}

func countPasses(moves []janggi.Move) int {
	n := 0
	for _, m := range moves {
		if m.IsPass() {
			n++
		}
	}
	return n
}

// piecesBetween returns the pieces strictly between two squares on a
// straight or diagonal line.
func piecesBetween(board *janggi.Board, from, to janggi.Square) []janggi.Piece {
	dr := sign(to.Row - from.Row)
	dc := sign(to.Col - from.Col)
	var pieces []janggi.Piece
	for sq := from.Offset(dr, dc); sq != to; sq = sq.Offset(dr, dc) {
		if p := board.Get(sq); p != janggi.Empty {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
