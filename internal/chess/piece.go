package chess

// Piece is a single chess piece together with its movement history.
// Pieces are plain values; a copy never shares state with the original.
type Piece struct {
	// ID identifies the piece for as long as it stays in a position.
	ID int

	Kind   Kind
	Colour Colour

	// Square is where the piece currently stands.
	Square Square

	// Prev is the square the piece stood on before its last committed move.
	Prev Square

	// Moved is set once the piece has committed a move.
	Moved bool

	// TwoStepped marks a pawn that has just advanced two squares and may be
	// captured en passant on the following opposing move.
	TwoStepped bool
}

// Code returns the two-character layout code of the piece, e.g. "wK".
func (p Piece) Code() string {
	return string([]byte{p.Colour.Code(), p.Kind.Letter()})
}

// String returns a readable description such as "White Knight (1,7)".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String() + " " + p.Square.String()
}
