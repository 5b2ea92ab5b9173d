// Package processing drives a game controller from text commands and
// analyzes the games it plays.
package processing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// Result strings for finished and unfinished games.
const (
	ResultWhiteWins  = "1-0"
	ResultBlackWins  = "0-1"
	ResultDraw       = "1/2-1/2"
	ResultInProgress = "*"
)

// GameAnalysis holds the features of a game's committed moves.
type GameAnalysis struct {
	Plies           int    `json:"plies"`
	Captures        int    `json:"captures"`
	EnPassant       int    `json:"enPassant"`
	Castles         int    `json:"castles"`
	Promotions      int    `json:"promotions"`
	Underpromotions int    `json:"underpromotions"`
	HasRepetition   bool   `json:"repetition"`
	Checkmate       bool   `json:"checkmate"`
	Stalemate       bool   `json:"stalemate"`
	Result          string `json:"result"`
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.Underpromotions > 0
}

// AnalyzeHistory counts the features of a list of committed moves.
func AnalyzeHistory(history []chess.Move) *GameAnalysis {
	analysis := &GameAnalysis{Plies: len(history), Result: ResultInProgress}
	for _, m := range history {
		if m.Captured != nil {
			analysis.Captures++
			if m.Captured.Square != m.To {
				analysis.EnPassant++
			}
		}
		if m.Castled {
			analysis.Castles++
		}
		if m.Promotion != chess.Empty {
			analysis.Promotions++
			if m.Promotion != chess.Queen {
				analysis.Underpromotions++
			}
		}
	}
	return analysis
}

// AnalyzeGame analyzes the controller's history and current outcome.
func AnalyzeGame(c *game.Controller) *GameAnalysis {
	history := c.History()
	analysis := AnalyzeHistory(history)
	analysis.HasRepetition = c.RepetitionPeak() >= 3
	analysis.Checkmate = c.GameOver()
	analysis.Stalemate = c.Stalemate()
	analysis.Result = Result(c)
	return analysis
}

// Result returns the result string of the controller's game.
func Result(c *game.Controller) string {
	switch {
	case c.Stalemate():
		return ResultDraw
	case c.GameOver():
		if Winner(c) == chess.White {
			return ResultWhiteWins
		}
		return ResultBlackWins
	}
	return ResultInProgress
}

// Winner returns the side that delivered checkmate. The result is only
// meaningful once the game is over.
func Winner(c *game.Controller) chess.Colour {
	// A mating move leaves the turn with the mover. A position loaded
	// already mated has no moves and the side to move is the loser.
	history := c.History()
	if n := len(history); n > 0 {
		return history[n-1].Piece.Colour
	}
	return c.CurrentColour().Opposite()
}
