package chess

// Move records a committed move in the game history.
type Move struct {
	// The piece as it stood before moving.
	Piece Piece

	// Source and destination squares.
	From Square
	To   Square

	// The piece captured, if any. For en passant this is the passed pawn,
	// which does not stand on To.
	Captured *Piece

	// Castled is set when the king castled; the rook went from
	// CastleRookFrom to CastleRookTo.
	Castled        bool
	CastleRookFrom Square
	CastleRookTo   Square

	// The kind the pawn promoted to (Empty if not a promotion). Filled in
	// once the promotion choice is made.
	Promotion Kind
}

// String renders the move as "<code> <from>-<to>", with an "x" for a
// capture and the promotion letter appended, e.g. "wP (4,1)-(4,0)=Q".
func (m Move) String() string {
	sep := "-"
	if m.Captured != nil {
		sep = "x"
	}
	s := m.Piece.Code() + " " + m.From.String() + sep + m.To.String()
	if m.Castled {
		s += " castle"
	}
	if m.Promotion != Empty {
		s += "=" + string(m.Promotion.Letter())
	}
	return s
}
