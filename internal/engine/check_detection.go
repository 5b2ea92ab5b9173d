package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// IsKingInCheck returns true if the given colour's king can be reached by
// any opposing piece.
func IsKingInCheck(pos *chess.Position, colour chess.Colour) bool {
	king := findKing(pos, colour)
	return IsSquareAttacked(pos, king.Square, colour.Opposite())
}

// IsIllegalSelfExposure reports whether a king that has just been moved
// (in pos) stands on a square an opposing piece can reach. It is false for
// every other kind of piece.
func IsIllegalSelfExposure(pos *chess.Position, moved chess.Piece) bool {
	if moved.Kind != chess.King {
		return false
	}
	return IsSquareAttacked(pos, moved.Square, moved.Colour.Opposite())
}

// IsSquareAttacked returns true if any piece of the byColour side can reach
// the square. The square is expected to hold the piece under attack, since
// pawns only reach an occupied square diagonally.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, byColour chess.Colour) bool {
	_, ok := firstAttacker(pos, sq, byColour)
	return ok
}

// findKing returns the king of the given colour. A position without one is
// corrupted beyond recovery, so it panics.
func findKing(pos *chess.Position, colour chess.Colour) chess.Piece {
	king, ok := pos.King(colour)
	if !ok {
		panic(errors.Wrapf(errors.ErrKingNotFound, "%s king", colour))
	}
	return king
}

// firstAttacker returns the first byColour piece, in position order, that
// can reach the square.
func firstAttacker(pos *chess.Position, sq chess.Square, byColour chess.Colour) (chess.Piece, bool) {
	for _, pc := range pos.Pieces() {
		if pc.Colour != byColour {
			continue
		}
		if CanReach(pos, pc, sq) {
			return pc, true
		}
	}
	return chess.Piece{}, false
}
