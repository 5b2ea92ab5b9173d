// Package chess provides the core chess types: colours, piece kinds, squares,
// pieces and the position that holds them.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Code returns the single letter used for the colour in layout codes.
func (c Colour) Code() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Kind represents a chess piece type.
type Kind int

const (
	Empty Kind = iota // No piece
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'R', 'N', 'B', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts an uppercase piece letter back to a kind.
func KindFromLetter(letter byte) (Kind, bool) {
	for k := Pawn; k < NumKinds; k++ {
		if k.Letter() == letter {
			return k, true
		}
	}
	return Empty, false
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	// OffBoard is the column or row used for pieces that are not on the
	// board, such as promotion candidates waiting to be chosen.
	OffBoard = 9
)

// Square addresses a board cell. Row 0 is Black's back rank and row 7 is
// White's.
type Square struct {
	Col int
	Row int
}

// Sq is shorthand for Square{Col: col, Row: row}.
func Sq(col, row int) Square {
	return Square{Col: col, Row: row}
}

// OnBoard reports whether the square lies within the 8x8 board.
func (s Square) OnBoard() bool {
	return s.Col >= 0 && s.Col < BoardSize && s.Row >= 0 && s.Row < BoardSize
}

// Offset returns the square dc columns and dr rows away.
func (s Square) Offset(dc, dr int) Square {
	return Square{Col: s.Col + dc, Row: s.Row + dr}
}

// String returns the square as "(col,row)".
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Col, s.Row)
}

// Forward returns the row direction in which pawns of the colour advance:
// -1 for White (toward row 0), +1 for Black.
func Forward(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// BackRow returns the row on which the colour's pieces start.
func BackRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PawnStartRow returns the row on which the colour's pawns start.
func PawnStartRow(colour Colour) int {
	return BackRow(colour) + Forward(colour)
}

// PromotionRow returns the row on which the colour's pawns promote.
func PromotionRow(colour Colour) int {
	return BackRow(colour.Opposite())
}
