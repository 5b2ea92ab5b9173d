package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// openFile has a white rook in the a1 corner and the a-file empty.
var openFile = []string{
	"-- -- -- -- bK -- -- --",
	"-- -- -- -- -- -- -- --",
	"-- -- -- -- -- -- -- --",
	"-- -- -- -- -- -- -- --",
	"-- -- -- -- -- -- -- --",
	"-- -- -- -- -- -- -- --",
	"-- -- -- -- -- -- -- --",
	"wR -- -- -- wK -- -- --",
}

// blockedFile is openFile with a black knight on a5 and a white pawn on a2.
var blockedFile = []string{
	"-- -- -- -- bK -- -- --",
	"-- -- -- -- -- -- -- --",
	"-- -- -- -- -- -- -- --",
	"bN -- -- -- -- -- -- --",
	"-- -- -- -- -- -- -- --",
	"-- -- -- -- -- -- -- --",
	"wP -- -- -- -- -- -- --",
	"wR -- -- -- wK -- -- --",
}

// centre has a white queen, bishop and knight in the middle of the board.
var centre = []string{
	"-- -- -- -- bK -- -- --",
	"-- -- -- -- -- -- -- --",
	"-- -- -- -- -- -- -- --",
	"-- -- -- wQ -- bP -- --",
	"-- -- -- -- wB -- -- --",
	"-- -- wN -- -- -- -- --",
	"-- -- -- -- -- -- -- --",
	"-- -- -- -- wK -- -- --",
}

// pawns has pawns of both colours set up for advances and captures.
var pawns = []string{
	"-- -- -- -- bK -- -- --",
	"-- -- -- bP -- -- -- --",
	"-- -- -- -- -- -- -- --",
	"-- -- -- -- -- -- -- --",
	"-- -- -- -- -- -- -- --",
	"-- -- -- bN -- -- -- --",
	"-- -- wP -- wP -- -- --",
	"-- -- -- -- wK -- wN --",
}

func TestCanReach(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		from, to chess.Square
		want     bool
	}{
		// Rook on (0,7) reaches (0,0) iff (0,1)..(0,6) are empty.
		{"rook open file", openFile, chess.Sq(0, 7), chess.Sq(0, 0), true},
		{"rook along rank", openFile, chess.Sq(0, 7), chess.Sq(3, 7), true},
		{"rook rank blocked by own king", openFile, chess.Sq(0, 7), chess.Sq(5, 7), false},
		{"rook onto own king", openFile, chess.Sq(0, 7), chess.Sq(4, 7), false},
		{"rook diagonal", openFile, chess.Sq(0, 7), chess.Sq(1, 6), false},
		{"rook blocked by own pawn", blockedFile, chess.Sq(0, 7), chess.Sq(0, 0), false},
		{"rook onto own pawn", blockedFile, chess.Sq(0, 7), chess.Sq(0, 6), false},
		{"rook to same square", openFile, chess.Sq(0, 7), chess.Sq(0, 7), false},
		{"rook off board", openFile, chess.Sq(0, 7), chess.Sq(0, chess.OffBoard), false},

		{"queen diagonal", centre, chess.Sq(3, 3), chess.Sq(0, 0), true},
		{"queen straight", centre, chess.Sq(3, 3), chess.Sq(3, 6), true},
		{"queen captures pawn", centre, chess.Sq(3, 3), chess.Sq(5, 3), true},
		{"queen blocked by own bishop", centre, chess.Sq(3, 3), chess.Sq(5, 5), false},
		{"queen knight jump", centre, chess.Sq(3, 3), chess.Sq(4, 5), false},

		{"bishop captures pawn", centre, chess.Sq(4, 4), chess.Sq(5, 3), true},
		{"bishop long diagonal", centre, chess.Sq(4, 4), chess.Sq(7, 7), true},
		{"bishop beyond pawn", centre, chess.Sq(4, 4), chess.Sq(6, 2), false},
		{"bishop straight", centre, chess.Sq(4, 4), chess.Sq(4, 6), false},

		{"knight jumps", centre, chess.Sq(2, 5), chess.Sq(3, 7), true},
		{"knight long L", centre, chess.Sq(2, 5), chess.Sq(0, 4), true},
		{"knight onto own queen", centre, chess.Sq(2, 5), chess.Sq(3, 3), false},
		{"knight straight", centre, chess.Sq(2, 5), chess.Sq(2, 3), false},

		{"king adjacent", centre, chess.Sq(4, 7), chess.Sq(5, 6), true},
		{"king two squares no rook", centre, chess.Sq(4, 7), chess.Sq(6, 7), false},
		{"king far", centre, chess.Sq(4, 7), chess.Sq(4, 5), false},

		{"white pawn single", pawns, chess.Sq(4, 6), chess.Sq(4, 5), true},
		{"white pawn double", pawns, chess.Sq(4, 6), chess.Sq(4, 4), true},
		{"white pawn triple", pawns, chess.Sq(4, 6), chess.Sq(4, 3), false},
		{"white pawn captures diagonally", pawns, chess.Sq(4, 6), chess.Sq(3, 5), true},
		{"white pawn diagonal onto empty", pawns, chess.Sq(4, 6), chess.Sq(5, 5), false},
		{"white pawn backwards", pawns, chess.Sq(4, 6), chess.Sq(4, 7), false},
		{"white pawn c-file single", pawns, chess.Sq(2, 6), chess.Sq(2, 5), true},
		{"black pawn single", pawns, chess.Sq(3, 1), chess.Sq(3, 2), true},
		{"black pawn double", pawns, chess.Sq(3, 1), chess.Sq(3, 3), true},
		{"black pawn wrong way", pawns, chess.Sq(3, 1), chess.Sq(3, 0), false},
		{"black knight attacks king square", pawns, chess.Sq(3, 5), chess.Sq(4, 7), true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := testutil.MustPosition(t, tt.rows...)
			pc := testutil.MustPieceAt(t, pos, tt.from.Col, tt.from.Row)
			if got := CanReach(pos, pc, tt.to); got != tt.want {
				t.Errorf("CanReach(%v, %v) = %v, want %v", pc, tt.to, got, tt.want)
			}
		})
	}
}

func TestCanReach_PawnDoubleBlocked(t *testing.T) {
	pos := testutil.MustPosition(t,
		"-- -- -- -- bK -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- bP -- -- --",
		"-- -- -- bB -- -- -- --",
		"-- -- -- wP wP -- -- --",
		"-- -- -- -- wK -- -- --",
	)
	tests := []struct {
		name     string
		from, to chess.Square
		want     bool
	}{
		{"first square occupied", chess.Sq(3, 6), chess.Sq(3, 4), false},
		{"first square occupied single", chess.Sq(3, 6), chess.Sq(3, 5), false},
		{"second square occupied", chess.Sq(4, 6), chess.Sq(4, 4), false},
		{"single still fine", chess.Sq(4, 6), chess.Sq(4, 5), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := testutil.MustPieceAt(t, pos, tt.from.Col, tt.from.Row)
			if got := CanReach(pos, pc, tt.to); got != tt.want {
				t.Errorf("CanReach(%v, %v) = %v, want %v", pc, tt.to, got, tt.want)
			}
		})
	}
}

func TestCanReach_PawnDoubleOnlyFromStartRow(t *testing.T) {
	pos := testutil.MustPosition(t,
		"-- -- -- -- bK -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- wP -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- wK -- -- --",
	)
	pawn := testutil.MustPieceAt(t, pos, 4, 5)
	if CanReach(pos, pawn, chess.Sq(4, 3)) {
		t.Error("CanReach() two squares from (4,5) = true, want false")
	}
}

func TestCanReach_EnPassant(t *testing.T) {
	rows := []string{
		"-- -- -- -- bK -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- bP wP bP -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- -- -- -- --",
		"-- -- -- -- wK -- -- --",
	}

	tests := []struct {
		name       string
		twoStepped bool
		want       bool
	}{
		{"flag set", true, true},
		{"flag clear", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustPosition(t, rows...)
			victim := testutil.MustPieceAt(t, pos, 3, 3)
			victim.TwoStepped = tt.twoStepped
			pos.Update(victim)

			pawn := testutil.MustPieceAt(t, pos, 4, 3)
			if got := CanReach(pos, pawn, chess.Sq(3, 2)); got != tt.want {
				t.Errorf("CanReach(en passant) = %v, want %v", got, tt.want)
			}
			// The other neighbour never advanced two squares.
			if CanReach(pos, pawn, chess.Sq(5, 2)) {
				t.Error("CanReach(5,2) = true, want false")
			}

			captured, ok := WouldCapture(pos, pawn, chess.Sq(3, 2))
			if ok != tt.want {
				t.Fatalf("WouldCapture() ok = %v, want %v", ok, tt.want)
			}
			if ok && captured.ID != victim.ID {
				t.Errorf("WouldCapture() = %v, want %v", captured, victim)
			}
		})
	}
}

func TestWouldCapture(t *testing.T) {
	pos := testutil.MustPosition(t, centre...)
	queen := testutil.MustPieceAt(t, pos, 3, 3)

	if _, ok := WouldCapture(pos, queen, chess.Sq(3, 4)); ok {
		t.Error("WouldCapture(empty square) = ok, want none")
	}
	if _, ok := WouldCapture(pos, queen, chess.Sq(4, 4)); ok {
		t.Error("WouldCapture(own bishop) = ok, want none")
	}
	bishop := testutil.MustPieceAt(t, pos, 4, 4)
	captured, ok := WouldCapture(pos, bishop, chess.Sq(5, 3))
	if !ok || captured.Kind != chess.Pawn || captured.Colour != chess.Black {
		t.Errorf("WouldCapture(5,3) = %v, %v, want Black Pawn", captured, ok)
	}
}

func TestSquaresBetween(t *testing.T) {
	tests := []struct {
		name     string
		from, to chess.Square
		want     []chess.Square
	}{
		{"file", chess.Sq(0, 7), chess.Sq(0, 4), []chess.Square{chess.Sq(0, 6), chess.Sq(0, 5)}},
		{"rank leftward", chess.Sq(5, 2), chess.Sq(2, 2), []chess.Square{chess.Sq(4, 2), chess.Sq(3, 2)}},
		{"diagonal", chess.Sq(1, 1), chess.Sq(4, 4), []chess.Square{chess.Sq(2, 2), chess.Sq(3, 3)}},
		{"adjacent", chess.Sq(3, 3), chess.Sq(4, 4), nil},
		{"knight offset", chess.Sq(3, 3), chess.Sq(4, 5), nil},
		{"same square", chess.Sq(3, 3), chess.Sq(3, 3), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, squaresBetween(tt.from, tt.to), tt.want)
		})
	}
}
