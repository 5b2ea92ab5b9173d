package game

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Phase is the interaction state of a Controller.
type Phase int

// Interaction phases. Committing and reverting happen inside a single
// release and are never observed.
const (
	Idle Phase = iota
	Holding
	PromotionPending
	CheckmateEnd
	StalemateEnd
)

var phaseNames = [...]string{
	Idle:             "Idle",
	Holding:          "Holding",
	PromotionPending: "PromotionPending",
	CheckmateEnd:     "CheckmateEnd",
	StalemateEnd:     "StalemateEnd",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "Unknown"
	}
	return phaseNames[p]
}

// Terminal reports whether the game has ended.
func (p Phase) Terminal() bool {
	return p == CheckmateEnd || p == StalemateEnd
}

// NoPiece is the ActiveID of a controller holding nothing.
const NoPiece = -1

// State is the complete turn and interaction state of a controller.
type State struct {
	Phase Phase

	// CurrentColour is the side to move.
	CurrentColour chess.Colour

	// ActiveID is the ID of the held piece, or NoPiece.
	ActiveID int

	// Pointer is the square under the pointer at the last pointer event.
	Pointer chess.Square

	// PendingCastle is the rook half of the simulated move when the held
	// king is over a castling square.
	PendingCastle *engine.PendingCastle

	// Outcome of the last simulation of the held piece.
	CanMove     bool
	ValidSquare bool

	PromotionPending bool
	GameOver         bool
	Stalemate        bool
}

// newState returns the state at the start of a game with the colour to move.
func newState(toMove chess.Colour) State {
	return State{
		Phase:         Idle,
		CurrentColour: toMove,
		ActiveID:      NoPiece,
		Pointer:       chess.Sq(chess.OffBoard, chess.OffBoard),
	}
}

// clone returns a copy of s that shares no pointers with it.
func (s State) clone() State {
	if s.PendingCastle != nil {
		castle := *s.PendingCastle
		s.PendingCastle = &castle
	}
	return s
}
