package game

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// promotionKinds is the fixed order of promotion choices.
var promotionKinds = [...]chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// PromotionChoices returns the pieces the waiting pawn may become, in
// choice order. The candidates stand off the board. It returns nil when no
// promotion is pending.
func (c *Controller) PromotionChoices() []chess.Piece {
	if c.state.Phase != PromotionPending {
		return nil
	}
	pawn, ok := c.pos.Get(c.promotionID)
	if !ok {
		return nil
	}
	choices := make([]chess.Piece, len(promotionKinds))
	for i, kind := range promotionKinds {
		sq := chess.Sq(chess.OffBoard, i)
		choices[i] = chess.Piece{
			ID:     NoPiece,
			Kind:   kind,
			Colour: pawn.Colour,
			Square: sq,
			Prev:   sq,
		}
	}
	return choices
}

// PromoteTo replaces the waiting pawn with the piece at the choice index
// and completes the move. It does nothing when no promotion is pending or
// the index is out of range.
func (c *Controller) PromoteTo(choice int) {
	if c.state.Phase != PromotionPending || choice < 0 || choice >= len(promotionKinds) {
		return
	}
	pawn, ok := c.pos.Get(c.promotionID)
	if !ok {
		return
	}
	kind := promotionKinds[choice]

	c.pos.Remove(pawn.ID)
	promoted := c.pos.Add(kind, pawn.Colour, pawn.Square)
	promoted.Prev = pawn.Prev
	promoted.Moved = true
	c.pos.Update(promoted)

	if n := len(c.history); n > 0 {
		c.history[n-1].Promotion = kind
	}
	c.promotionID = NoPiece
	c.state.Phase = Idle
	c.state.PromotionPending = false
	c.logf(config.Commentary, "%s pawn on %s promoted to %s", pawn.Colour, pawn.Square, kind)

	if c.settle(pawn.Colour.Opposite()) {
		return
	}
	c.flipTurn()
}
