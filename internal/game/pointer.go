package game

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// PointerDown handles a press at the pixel coordinates. While idle it picks
// up a piece of the side to move from the square under the pointer; while a
// piece is held it re-simulates the held piece on that square.
func (c *Controller) PointerDown(px, py int) {
	if !c.acceptsPointer() {
		return
	}
	sq := c.squareAt(px, py)
	c.state.Pointer = sq

	if c.state.Phase == Holding {
		c.simulate(sq)
		return
	}
	pc, ok := c.pos.At(sq)
	if !ok || pc.Colour != c.state.CurrentColour {
		return
	}
	c.state.Phase = Holding
	c.state.ActiveID = pc.ID
	c.simulate(sq)
}

// PointerMove re-simulates the held piece on the square under the pointer.
func (c *Controller) PointerMove(px, py int) {
	if c.state.Phase != Holding {
		return
	}
	sq := c.squareAt(px, py)
	c.state.Pointer = sq
	c.simulate(sq)
}

// PointerUp drops the held piece on the square under the pointer, committing
// the move if it is valid and reverting it otherwise. Without a held piece
// it does nothing.
func (c *Controller) PointerUp(px, py int) {
	if c.state.Phase != Holding {
		return
	}
	sq := c.squareAt(px, py)
	c.state.Pointer = sq
	c.simulate(sq)

	if c.state.ValidSquare {
		c.commit()
	} else {
		c.revert()
	}
}

// SelectSquare presses on the centre of the square.
func (c *Controller) SelectSquare(col, row int) {
	px, py := c.squareCentre(col, row)
	c.PointerDown(px, py)
}

// MoveSelectedTo drags the held piece to the centre of the square and
// releases it there.
func (c *Controller) MoveSelectedTo(col, row int) {
	px, py := c.squareCentre(col, row)
	c.PointerMove(px, py)
	c.PointerUp(px, py)
}

func (c *Controller) acceptsPointer() bool {
	return c.state.Phase == Idle || c.state.Phase == Holding
}

// simulate tries the held piece on the square and publishes the outcome.
func (c *Controller) simulate(sq chess.Square) {
	c.sim = engine.Simulate(c.pos, c.state.ActiveID, sq)
	c.state.CanMove = c.sim.CanMove
	c.state.ValidSquare = c.sim.ValidSquare
	c.state.PendingCastle = nil
	if c.sim.Castle != nil {
		castle := *c.sim.Castle
		c.state.PendingCastle = &castle
	}
}

// squareAt maps pixel coordinates to a square. Negative coordinates map
// off the board.
func (c *Controller) squareAt(px, py int) chess.Square {
	return chess.Sq(c.pixelToIndex(px), c.pixelToIndex(py))
}

func (c *Controller) pixelToIndex(p int) int {
	if p < 0 {
		return chess.OffBoard
	}
	return p / c.cfg.Board.SquarePixelSize
}

func (c *Controller) squareCentre(col, row int) (int, int) {
	size := c.cfg.Board.SquarePixelSize
	half := c.cfg.Board.HalfSquare()
	return col*size + half, row*size + half
}
