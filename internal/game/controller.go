// Package game implements the interactive game controller: it owns the
// authoritative position, turns pointer gestures into simulated moves, and
// commits or reverts them.
package game

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Controller sequences pick, drag and drop gestures into committed moves
// for a single game. It is not safe for concurrent use.
type Controller struct {
	cfg *config.Config
	id  string

	pos   *chess.Position
	state State

	// sim is the last simulation of the held piece.
	sim engine.SimulationResult

	// promotionID is the pawn waiting for a promotion choice.
	promotionID int

	history     []chess.Move
	repetitions *hashing.RepetitionTable
}

// New creates a controller with the standard opening position. A nil
// config uses the defaults. An invalid config is replaced by the defaults
// too, keeping its log file, and the replacement is logged.
func New(cfg *config.Config) *Controller {
	var invalid error
	if cfg != nil {
		invalid = cfg.Validate()
	}
	switch {
	case cfg == nil:
		cfg = config.NewConfig()
	case invalid != nil:
		fallback := config.NewConfig()
		if cfg.LogFile != nil {
			fallback.LogFile = cfg.LogFile
		}
		cfg = fallback
	}
	c := &Controller{
		cfg:         cfg,
		id:          uuid.NewString(),
		repetitions: hashing.NewRepetitionTable(),
	}
	c.Initialize()
	if invalid != nil {
		c.logf(config.Results, "using default config: %v", invalid)
	}
	return c
}

// Initialize sets up the standard opening position with White to move and
// clears all transient state.
func (c *Controller) Initialize() {
	c.start(chess.NewInitialPosition(), chess.White)
}

// Reset starts a new game from the opening position.
func (c *Controller) Reset() {
	c.Initialize()
	c.logf(config.Results, "game reset")
}

// Load starts a game from an arbitrary position with the given side to
// move. Each side must have exactly one king. A side to move that is
// already checkmated or stalemated leaves the game in the matching
// terminal phase.
func (c *Controller) Load(pos *chess.Position, toMove chess.Colour) error {
	kings := make(map[chess.Colour]int)
	for _, pc := range pos.Pieces() {
		if pc.Kind == chess.King {
			kings[pc.Colour]++
		}
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		switch kings[colour] {
		case 0:
			return errors.Wrapf(errors.ErrKingNotFound, "%s king", colour)
		case 1:
		default:
			return errors.Wrapf(errors.ErrInvalidLayout, "%d %s kings", kings[colour], colour)
		}
	}
	c.start(pos.Copy(), toMove)
	c.logf(config.Commentary, "position loaded, %s to move", toMove)
	c.settle(toMove)
	return nil
}

func (c *Controller) start(pos *chess.Position, toMove chess.Colour) {
	c.pos = pos
	c.state = newState(toMove)
	c.sim = engine.SimulationResult{}
	c.promotionID = NoPiece
	c.history = nil
	c.repetitions.Reset()
	c.recordPosition()
}

// commit adopts the simulated position as authoritative and moves the game
// on to its next phase.
func (c *Controller) commit() {
	before, _ := c.pos.Get(c.state.ActiveID)
	next := c.sim.Position

	moved, _ := next.Get(before.ID)
	moved.Prev = before.Square
	moved.Moved = true
	next.Update(moved)
	engine.FinalizeCastle(next, c.sim.Castle)

	record := chess.Move{
		Piece:    before,
		From:     before.Square,
		To:       moved.Square,
		Captured: c.sim.Captured,
	}
	if castle := c.sim.Castle; castle != nil {
		record.Castled = true
		record.CastleRookFrom = castle.From
		record.CastleRookTo = castle.To
	}

	c.pos = next
	c.history = append(c.history, record)
	c.release()
	c.logf(config.Commentary, "%s %s -> %s", before.Colour, before.Kind, moved.Square)

	if c.settle(before.Colour.Opposite()) {
		return
	}
	if moved.Kind == chess.Pawn && engine.IsPromotionSquare(moved.Colour, moved.Square) {
		c.state.Phase = PromotionPending
		c.state.PromotionPending = true
		c.promotionID = moved.ID
		c.logf(config.Commentary, "%s pawn on %s awaits promotion", moved.Colour, moved.Square)
		return
	}
	c.flipTurn()
}

// revert drops the simulation; the held piece never left its square in
// the authoritative position.
func (c *Controller) revert() {
	if pc, ok := c.pos.Get(c.state.ActiveID); ok {
		c.logf(config.Commentary, "%s %s -> %s rejected", pc.Colour, pc.Kind, c.state.Pointer)
	}
	c.release()
}

// release lets go of the held piece.
func (c *Controller) release() {
	c.sim = engine.SimulationResult{}
	c.state.Phase = Idle
	c.state.ActiveID = NoPiece
	c.state.PendingCastle = nil
	c.state.CanMove = false
	c.state.ValidSquare = false
}

// settle ends the game if the colour is checkmated or stalemated.
func (c *Controller) settle(colour chess.Colour) bool {
	switch {
	case engine.IsCheckmate(c.pos, colour):
		c.state.Phase = CheckmateEnd
		c.state.GameOver = true
		c.logf(config.Results, "checkmate, %s wins", colour.Opposite())
		return true
	case engine.IsStalemate(c.pos, colour):
		c.state.Phase = StalemateEnd
		c.state.Stalemate = true
		c.logf(config.Results, "stalemate, %s cannot move", colour)
		return true
	}
	return false
}

// flipTurn hands the move to the other side. That side's pawns can no
// longer be taken en passant.
func (c *Controller) flipTurn() {
	c.state.CurrentColour = c.state.CurrentColour.Opposite()
	c.pos.ClearTwoStepped(c.state.CurrentColour)
	c.recordPosition()
}

func (c *Controller) recordPosition() {
	c.repetitions.Record(hashing.GenerateZobristHash(c.pos, c.state.CurrentColour))
}

func (c *Controller) logf(level int, format string, args ...interface{}) {
	c.cfg.Logf(level, "[%s] "+format, append([]interface{}{c.id}, args...)...)
}

// ID returns the identifier of the controller, used to tell games apart
// in logs.
func (c *Controller) ID() string {
	return c.id
}

// Config returns the controller's configuration.
func (c *Controller) Config() *config.Config {
	return c.cfg
}

// FindPieceAt returns the piece on the square of the authoritative position.
func (c *Controller) FindPieceAt(col, row int) (chess.Piece, bool) {
	return c.pos.At(chess.Sq(col, row))
}

// CurrentLayout returns the square codes of the authoritative position.
func (c *Controller) CurrentLayout() chess.Layout {
	return c.pos.Layout()
}

// Position returns a copy of the authoritative position.
func (c *Controller) Position() *chess.Position {
	return c.pos.Copy()
}

// History returns the committed moves, oldest first.
func (c *Controller) History() []chess.Move {
	history := make([]chess.Move, len(c.history))
	for i, m := range c.history {
		if m.Captured != nil {
			captured := *m.Captured
			m.Captured = &captured
		}
		history[i] = m
	}
	return history
}

// State returns a copy of the controller state.
func (c *Controller) State() State {
	return c.state.clone()
}

// Phase returns the interaction phase.
func (c *Controller) Phase() Phase { return c.state.Phase }

// CanMove reports whether the held piece's pattern reaches the pointer square.
func (c *Controller) CanMove() bool { return c.state.CanMove }

// ValidSquare reports whether releasing the held piece now would commit.
func (c *Controller) ValidSquare() bool { return c.state.ValidSquare }

// PromotionPending reports whether a promotion choice is awaited.
func (c *Controller) PromotionPending() bool { return c.state.PromotionPending }

// GameOver reports whether the game ended in checkmate.
func (c *Controller) GameOver() bool { return c.state.GameOver }

// Stalemate reports whether the game ended in stalemate.
func (c *Controller) Stalemate() bool { return c.state.Stalemate }

// CurrentColour returns the side to move.
func (c *Controller) CurrentColour() chess.Colour { return c.state.CurrentColour }

// InCheck reports whether the side to move is in check.
func (c *Controller) InCheck() bool {
	return engine.IsKingInCheck(c.pos, c.state.CurrentColour)
}

// LegalDestinations returns the squares the piece on (col,row) may move to.
// It is empty for an empty square.
func (c *Controller) LegalDestinations(col, row int) []chess.Square {
	pc, ok := c.pos.At(chess.Sq(col, row))
	if !ok {
		return nil
	}
	return engine.LegalDestinations(c.pos, pc.ID)
}

// RepetitionCount returns how often the current position, with the same
// side to move, has occurred in this game.
func (c *Controller) RepetitionCount() int {
	return c.repetitions.Count(hashing.GenerateZobristHash(c.pos, c.state.CurrentColour))
}

// RepetitionPeak returns the highest number of times any position has
// occurred in this game.
func (c *Controller) RepetitionPeak() int {
	return c.repetitions.Peak()
}
