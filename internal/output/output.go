// Package output renders finished games as text or JSON.
package output

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/processing"
)

// Snapshot is the outward view of a game at one moment.
type Snapshot struct {
	Name      string                   `json:"name,omitempty"`
	ID        string                   `json:"id"`
	Phase     string                   `json:"phase"`
	ToMove    string                   `json:"toMove"`
	InCheck   bool                     `json:"inCheck"`
	Layout    []string                 `json:"layout"`
	Moves     []SnapshotMove           `json:"moves,omitempty"`
	Analysis  *processing.GameAnalysis `json:"analysis"`
	Duplicate bool                     `json:"duplicate,omitempty"`
	Error     string                   `json:"error,omitempty"`

	// Transcript holds the lines printed by the game's commands.
	Transcript []string `json:"transcript,omitempty"`
}

// SnapshotMove is one committed move in a snapshot.
type SnapshotMove struct {
	Ply       int    `json:"ply"`
	Colour    string `json:"colour"`
	Piece     string `json:"piece"`
	From      string `json:"from"`
	To        string `json:"to"`
	Captured  string `json:"captured,omitempty"`
	Castled   bool   `json:"castled,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Text      string `json:"text"`
}

// NewSnapshot captures the controller's game under the given name.
func NewSnapshot(name string, c *game.Controller) *Snapshot {
	s := &Snapshot{
		Name:     name,
		ID:       c.ID(),
		Phase:    c.Phase().String(),
		ToMove:   c.CurrentColour().String(),
		InCheck:  c.InCheck(),
		Layout:   layoutRows(c.CurrentLayout()),
		Analysis: processing.AnalyzeGame(c),
	}
	for i, m := range c.History() {
		s.Moves = append(s.Moves, snapshotMove(i+1, m))
	}
	return s
}

// Result returns the result string of the snapshot's game.
func (s *Snapshot) Result() string {
	if s.Analysis == nil {
		return processing.ResultInProgress
	}
	return s.Analysis.Result
}

func snapshotMove(ply int, m chess.Move) SnapshotMove {
	sm := SnapshotMove{
		Ply:     ply,
		Colour:  m.Piece.Colour.String(),
		Piece:   m.Piece.Kind.String(),
		From:    m.From.String(),
		To:      m.To.String(),
		Castled: m.Castled,
		Text:    m.String(),
	}
	if m.Captured != nil {
		sm.Captured = m.Captured.Kind.String()
	}
	if m.Promotion != chess.Empty {
		sm.Promotion = m.Promotion.String()
	}
	return sm
}

// layoutRows splits the layout's text form into its rows.
func layoutRows(l chess.Layout) []string {
	return strings.Split(strings.TrimSuffix(l.String(), "\n"), "\n")
}
