// Package engine provides chess movement rules, move simulation and
// check, checkmate and stalemate detection.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// CanReach reports whether the piece, from its current square, can move to
// the target square given the occupancy of pos. It checks the movement
// pattern only; whether the move exposes the mover's own king is decided by
// the simulator.
func CanReach(pos *chess.Position, pc chess.Piece, to chess.Square) bool {
	from := pc.Square
	if !to.OnBoard() || !from.OnBoard() || to == from {
		return false
	}
	if occupant, ok := pos.At(to); ok && occupant.Colour == pc.Colour {
		return false
	}

	colDiff := abs(to.Col - from.Col)
	rowDiff := abs(to.Row - from.Row)

	switch pc.Kind {
	case chess.Knight:
		return (colDiff == 1 && rowDiff == 2) || (colDiff == 2 && rowDiff == 1)

	case chess.Bishop:
		if colDiff != rowDiff {
			return false
		}
		return isPathClear(pos, from, to)

	case chess.Rook:
		if colDiff != 0 && rowDiff != 0 {
			return false
		}
		return isPathClear(pos, from, to)

	case chess.Queen:
		if colDiff == rowDiff || colDiff == 0 || rowDiff == 0 {
			return isPathClear(pos, from, to)
		}
		return false

	case chess.King:
		if colDiff <= 1 && rowDiff <= 1 {
			return true
		}
		_, ok := castlingRook(pos, pc, to)
		return ok

	case chess.Pawn:
		return canPawnReach(pos, pc, to)
	}

	return false
}

// isPathClear checks that no piece stands strictly between from and to.
func isPathClear(pos *chess.Position, from, to chess.Square) bool {
	for _, sq := range squaresBetween(from, to) {
		if pos.Occupied(sq) {
			return false
		}
	}
	return true
}
