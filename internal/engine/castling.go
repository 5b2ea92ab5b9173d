package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// kingHomeCol is the column both kings start on.
const kingHomeCol = 4

// PendingCastle describes the rook half of a castling move.
type PendingCastle struct {
	RookID int
	From   chess.Square
	To     chess.Square
}

// castlingRook returns the rook the king would castle with when moving to
// the target square. The king must be unmoved on its home square and move
// two squares along its back row toward an unmoved rook of its colour in
// the corner, with every square between king and rook empty.
//
// Only the destination is later tested for attack; the square the king
// passes over and the king's current square are not.
func castlingRook(pos *chess.Position, king chess.Piece, to chess.Square) (chess.Piece, bool) {
	if king.Kind != chess.King || king.Moved {
		return chess.Piece{}, false
	}
	from := king.Square
	backRow := chess.BackRow(king.Colour)
	if from != chess.Sq(kingHomeCol, backRow) {
		return chess.Piece{}, false
	}
	dc := to.Col - from.Col
	if to.Row != backRow || abs(dc) != 2 {
		return chess.Piece{}, false
	}

	rookCol := 0
	if dc > 0 {
		rookCol = chess.BoardSize - 1
	}
	rook, ok := pos.At(chess.Sq(rookCol, backRow))
	if !ok || rook.Kind != chess.Rook || rook.Colour != king.Colour || rook.Moved {
		return chess.Piece{}, false
	}
	if !isPathClear(pos, from, rook.Square) {
		return chess.Piece{}, false
	}
	return rook, true
}

// castledRookSquare returns where the rook lands: the square the king
// crosses on its way to the target.
func castledRookSquare(kingFrom, kingTo chess.Square) chess.Square {
	return kingFrom.Offset(sign(kingTo.Col-kingFrom.Col), 0)
}

// applyCastle repositions the castling rook in pos and describes the move.
func applyCastle(pos *chess.Position, king chess.Piece, to chess.Square) (*PendingCastle, bool) {
	rook, ok := castlingRook(pos, king, to)
	if !ok {
		return nil, false
	}
	castle := &PendingCastle{
		RookID: rook.ID,
		From:   rook.Square,
		To:     castledRookSquare(king.Square, to),
	}
	rook.Square = castle.To
	pos.Update(rook)
	return castle, true
}

// FinalizeCastle marks the castled rook as moved in the committed position.
func FinalizeCastle(pos *chess.Position, castle *PendingCastle) {
	if castle == nil {
		return
	}
	rook, ok := pos.Get(castle.RookID)
	if !ok {
		return
	}
	rook.Prev = castle.From
	rook.Square = castle.To
	rook.Moved = true
	pos.Update(rook)
}
