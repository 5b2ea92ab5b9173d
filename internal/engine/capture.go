package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// WouldCapture returns the piece removed if pc moves to the target square:
// the enemy piece standing there or, for a pawn, the pawn taken en passant.
// It assumes CanReach(pos, pc, to) holds.
func WouldCapture(pos *chess.Position, pc chess.Piece, to chess.Square) (chess.Piece, bool) {
	if target, ok := pos.At(to); ok {
		if target.Colour == pc.Colour {
			return chess.Piece{}, false
		}
		return target, true
	}
	if pc.Kind == chess.Pawn {
		return enPassantVictim(pos, pc, to)
	}
	return chess.Piece{}, false
}
