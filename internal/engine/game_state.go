package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsCheckmate returns true if the colour's king is in check, has no safe
// adjacent square, and no other piece of the colour can capture the
// checking piece or, for a line attacker, block the line.
//
// Only the first checking piece found is answered, and a blocking or
// capturing move is not re-tested for exposing its own king.
func IsCheckmate(pos *chess.Position, colour chess.Colour) bool {
	king := findKing(pos, colour)
	checker, ok := firstAttacker(pos, king.Square, colour.Opposite())
	if !ok {
		return false
	}
	if kingCanMove(pos, king) {
		return false
	}

	targets := []chess.Square{checker.Square}
	if isSlider(checker.Kind) {
		targets = append(targets, squaresBetween(checker.Square, king.Square)...)
	}
	for _, sq := range targets {
		if canDefenderReach(pos, colour, sq) {
			return false
		}
	}
	return true
}

// IsStalemate returns true if the colour has nothing left but its king and
// that king has no safe adjacent square. Other positions without a legal
// move are not detected.
func IsStalemate(pos *chess.Position, colour chess.Colour) bool {
	if pos.Count(colour) != 1 {
		return false
	}
	return !kingCanMove(pos, findKing(pos, colour))
}

// kingCanMove checks each adjacent square for a move that does not leave
// the king attacked.
func kingCanMove(pos *chess.Position, king chess.Piece) bool {
	for _, offset := range kingOffsets {
		to := king.Square.Offset(offset[0], offset[1])
		if !CanReach(pos, king, to) {
			continue
		}
		scratch := pos.Copy()
		_, _, moved := applyMove(scratch, king, to)
		if !IsIllegalSelfExposure(scratch, moved) {
			return true
		}
	}
	return false
}

// canDefenderReach reports whether a piece of the colour other than its
// king can reach the square.
func canDefenderReach(pos *chess.Position, colour chess.Colour, sq chess.Square) bool {
	for _, pc := range pos.Pieces() {
		if pc.Colour != colour || pc.Kind == chess.King {
			continue
		}
		if CanReach(pos, pc, sq) {
			return true
		}
	}
	return false
}

func isSlider(kind chess.Kind) bool {
	return kind == chess.Rook || kind == chess.Bishop || kind == chess.Queen
}
