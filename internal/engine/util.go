package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// kingOffsets are the eight squares adjacent to a king.
var kingOffsets = [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}

// squaresBetween returns the squares strictly between from and to when they
// share a rank, file or diagonal, nearest to from first. It returns nil for
// adjacent squares and for squares not on a common line.
func squaresBetween(from, to chess.Square) []chess.Square {
	dc := to.Col - from.Col
	dr := to.Row - from.Row
	if dc != 0 && dr != 0 && abs(dc) != abs(dr) {
		return nil
	}
	colDir := sign(dc)
	rowDir := sign(dr)

	var between []chess.Square
	sq := from.Offset(colDir, rowDir)
	for sq != to {
		between = append(between, sq)
		sq = sq.Offset(colDir, rowDir)
	}
	return between
}
