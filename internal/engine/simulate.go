package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// SimulationResult is the outcome of trying a piece on a target square.
type SimulationResult struct {
	// CanMove is set when the piece's movement pattern reaches the target.
	CanMove bool

	// ValidSquare is set when the move is reachable and does not leave the
	// mover's king attacked.
	ValidSquare bool

	// Captured is the piece removed from the scratch position, if any.
	Captured *chess.Piece

	// Castle describes the rook move when the king castles.
	Castle *PendingCastle

	// Position is the scratch position after the move. When CanMove is
	// false it is an unmodified copy of the authoritative position.
	Position *chess.Position
}

// Simulate plays the piece with the given ID to the target square on a
// fresh copy of pos and checks the result for self-check. pos is never
// modified, so calling Simulate repeatedly with the same arguments yields
// the same result.
func Simulate(pos *chess.Position, pieceID int, to chess.Square) SimulationResult {
	scratch := pos.Copy()
	result := SimulationResult{Position: scratch}

	pc, ok := scratch.Get(pieceID)
	if !ok || !CanReach(scratch, pc, to) {
		return result
	}
	result.CanMove = true

	var moved chess.Piece
	result.Captured, result.Castle, moved = applyMove(scratch, pc, to)

	result.ValidSquare = !IsIllegalSelfExposure(scratch, moved) && !IsKingInCheck(scratch, pc.Colour)
	return result
}

// applyMove moves pc to the square in pos, removing any captured piece and
// repositioning the rook when castling. It returns the captured piece, the
// castle description and the moved piece.
func applyMove(pos *chess.Position, pc chess.Piece, to chess.Square) (*chess.Piece, *PendingCastle, chess.Piece) {
	var captured *chess.Piece
	if victim, ok := WouldCapture(pos, pc, to); ok {
		pos.Remove(victim.ID)
		captured = &victim
	}

	var castle *PendingCastle
	if pc.Kind == chess.King && abs(to.Col-pc.Square.Col) == 2 {
		castle, _ = applyCastle(pos, pc, to)
	}

	moved := pc
	moved.Square = to
	if isTwoSquareAdvance(pc, to) {
		moved.TwoStepped = true
	}
	pos.Update(moved)

	return captured, castle, moved
}
