package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Layout is the 8x8 grid of square codes indexed [row][col]. A cell is
// either empty or a two-character code: colour ('w' or 'b') followed by a
// piece letter (P, R, N, B, Q, K).
type Layout [BoardSize][BoardSize]string

// EmptyCode is how an empty square is written in Layout.String.
const EmptyCode = "--"

// String renders the layout one row per line, row 0 first, with EmptyCode
// for empty squares.
func (l Layout) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if l[row][col] == "" {
				sb.WriteString(EmptyCode)
			} else {
				sb.WriteString(l[row][col])
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseLayout parses the text form produced by Layout.String. Blank lines
// are ignored.
func ParseLayout(text string) (Layout, error) {
	var l Layout
	row := 0
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if row >= BoardSize {
			return l, &errors.LayoutError{Err: errors.ErrInvalidLayout, Row: row, Got: "extra row"}
		}
		if len(fields) != BoardSize {
			return l, &errors.LayoutError{
				Err: errors.ErrInvalidLayout,
				Row: row,
				Got: fmt.Sprintf("%d squares", len(fields)),
			}
		}
		for col, code := range fields {
			if code != EmptyCode {
				l[row][col] = code
			}
		}
		row++
	}
	if row != BoardSize {
		return l, &errors.LayoutError{Err: errors.ErrInvalidLayout, Row: row, Got: fmt.Sprintf("%d rows", row)}
	}
	return l, nil
}

// NewPositionFromLayout builds a position from a layout grid. Pieces are
// created unmoved, so kings and rooks on their home squares may castle.
func NewPositionFromLayout(l Layout) (*Position, error) {
	p := NewPosition()
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			code := l[row][col]
			if code == "" {
				continue
			}
			colour, kind, err := parseCode(code)
			if err != nil {
				return nil, &errors.LayoutError{Err: err, Row: row, Col: col, Got: code}
			}
			p.Add(kind, colour, Sq(col, row))
		}
	}
	return p, nil
}

// parseCode splits a square code such as "bQ" into colour and kind.
func parseCode(code string) (Colour, Kind, error) {
	if len(code) != 2 {
		return White, Empty, errors.ErrInvalidLayout
	}
	var colour Colour
	switch code[0] {
	case 'w':
		colour = White
	case 'b':
		colour = Black
	default:
		return White, Empty, errors.ErrInvalidLayout
	}
	kind, ok := KindFromLetter(code[1])
	if !ok {
		return White, Empty, errors.ErrInvalidLayout
	}
	return colour, kind, nil
}
