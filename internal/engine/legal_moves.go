package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalDestinations returns every square the piece can be moved to without
// leaving its own king attacked, in row-major order.
func LegalDestinations(pos *chess.Position, pieceID int) []chess.Square {
	var squares []chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			to := chess.Sq(col, row)
			if Simulate(pos, pieceID, to).ValidSquare {
				squares = append(squares, to)
			}
		}
	}
	return squares
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(pos *chess.Position, colour chess.Colour) bool {
	for _, pc := range pos.Pieces() {
		if pc.Colour != colour {
			continue
		}
		if len(LegalDestinations(pos, pc.ID)) > 0 {
			return true
		}
	}
	return false
}
