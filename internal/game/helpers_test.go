package game

import (
	"bytes"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// move is a square-granular move: from (col,row) to (col,row).
type move [4]int

// newTestController returns a controller logging at full verbosity into
// the returned buffer. With layout rows it starts from that position.
func newTestController(t *testing.T, toMove chess.Colour, rows ...string) (*Controller, *bytes.Buffer) {
	t.Helper()
	var log bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithVerbosity(config.Commentary).
		WithLogFile(&log).
		Build()
	c := New(cfg)
	if len(rows) > 0 {
		if err := c.Load(testutil.MustPosition(t, rows...), toMove); err != nil {
			t.Fatalf("Load() error = %v", err)
		}
	}
	return c, &log
}

// play commits each move, failing the test if one is rejected.
func play(t *testing.T, c *Controller, moves ...move) {
	t.Helper()
	for _, m := range moves {
		before := len(c.History())
		c.SelectSquare(m[0], m[1])
		c.MoveSelectedTo(m[2], m[3])
		if len(c.History()) != before+1 {
			t.Fatalf("move (%d,%d)->(%d,%d) was not committed\n%s",
				m[0], m[1], m[2], m[3], c.CurrentLayout())
		}
	}
}

// attempt tries a move and reports whether it was committed.
func attempt(c *Controller, m move) bool {
	before := len(c.History())
	c.SelectSquare(m[0], m[1])
	c.MoveSelectedTo(m[2], m[3])
	return len(c.History()) == before+1
}
