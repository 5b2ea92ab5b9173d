package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// canPawnReach checks the pawn movement pattern: one square forward onto an
// empty square, two from the start row over two empty squares, or one
// square diagonally forward onto an enemy piece or an en passant target.
func canPawnReach(pos *chess.Position, pawn chess.Piece, to chess.Square) bool {
	from := pawn.Square
	dir := chess.Forward(pawn.Colour)
	dc := to.Col - from.Col
	dr := to.Row - from.Row

	switch {
	case dc == 0 && dr == dir:
		return !pos.Occupied(to)

	case dc == 0 && dr == 2*dir:
		if from.Row != chess.PawnStartRow(pawn.Colour) {
			return false
		}
		return !pos.Occupied(from.Offset(0, dir)) && !pos.Occupied(to)

	case abs(dc) == 1 && dr == dir:
		if target, ok := pos.At(to); ok {
			return target.Colour != pawn.Colour
		}
		_, ok := enPassantVictim(pos, pawn, to)
		return ok
	}

	return false
}

// enPassantVictim returns the enemy pawn that a diagonal pawn move onto the
// empty square to would capture en passant: the pawn beside the mover, on
// the destination column, that has just advanced two squares.
func enPassantVictim(pos *chess.Position, pawn chess.Piece, to chess.Square) (chess.Piece, bool) {
	if pawn.Kind != chess.Pawn || pos.Occupied(to) {
		return chess.Piece{}, false
	}
	if abs(to.Col-pawn.Square.Col) != 1 || to.Row-pawn.Square.Row != chess.Forward(pawn.Colour) {
		return chess.Piece{}, false
	}
	victim, ok := pos.At(chess.Sq(to.Col, pawn.Square.Row))
	if !ok || victim.Kind != chess.Pawn || victim.Colour == pawn.Colour || !victim.TwoStepped {
		return chess.Piece{}, false
	}
	return victim, true
}

// isTwoSquareAdvance reports whether moving the pawn to the square is the
// two-square advance from its start row.
func isTwoSquareAdvance(pawn chess.Piece, to chess.Square) bool {
	return pawn.Kind == chess.Pawn &&
		to.Col == pawn.Square.Col &&
		to.Row-pawn.Square.Row == 2*chess.Forward(pawn.Colour)
}

// IsPromotionSquare reports whether a pawn of the colour standing on sq
// must promote.
func IsPromotionSquare(colour chess.Colour, sq chess.Square) bool {
	return sq.Row == chess.PromotionRow(colour)
}
