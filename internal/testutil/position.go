package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MustLayout parses eight rows of layout text (see chess.Layout.String),
// row 0 first. It calls t.Fatal if the rows do not parse.
func MustLayout(t *testing.T, rows ...string) chess.Layout {
	t.Helper()
	l, err := chess.ParseLayout(strings.Join(rows, "\n"))
	if err != nil {
		t.Fatalf("failed to parse layout: %v\n%s", err, strings.Join(rows, "\n"))
	}
	return l
}

// MustPosition builds a position from eight rows of layout text.
// It calls t.Fatal if the rows do not describe a valid position.
func MustPosition(t *testing.T, rows ...string) *chess.Position {
	t.Helper()
	pos, err := chess.NewPositionFromLayout(MustLayout(t, rows...))
	if err != nil {
		t.Fatalf("failed to build position: %v", err)
	}
	return pos
}

// MustPieceAt returns the piece on the square or calls t.Fatal.
func MustPieceAt(t *testing.T, pos *chess.Position, col, row int) chess.Piece {
	t.Helper()
	pc, ok := pos.At(chess.Sq(col, row))
	if !ok {
		t.Fatalf("no piece at %v", chess.Sq(col, row))
	}
	return pc
}

// AssertLayout compares two layouts and reports the difference in the
// readable text form.
func AssertLayout(t *testing.T, got, want chess.Layout) {
	t.Helper()
	if got != want {
		t.Errorf("layout mismatch\ngot:\n%swant:\n%s", got, want)
	}
}
