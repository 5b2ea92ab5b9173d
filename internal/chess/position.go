package chess

// Position is the set of pieces on the board. At most one piece occupies a
// square. The zero value is an empty position.
type Position struct {
	pieces []Piece
	nextID int
}

// NewPosition creates a new empty position.
func NewPosition() *Position {
	return &Position{}
}

// NewInitialPosition creates a position holding the standard opening layout.
func NewInitialPosition() *Position {
	p := NewPosition()
	p.SetupInitialPosition()
	return p
}

// SetupInitialPosition clears the position and places the standard chess
// starting pieces.
func (p *Position) SetupInitialPosition() {
	p.pieces = p.pieces[:0]
	p.nextID = 0

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for _, colour := range []Colour{White, Black} {
		for col := 0; col < BoardSize; col++ {
			p.Add(Pawn, colour, Sq(col, PawnStartRow(colour)))
		}
		for col, kind := range backRank {
			p.Add(kind, colour, Sq(col, BackRow(colour)))
		}
	}
}

// Add places a new piece on the given square and returns it. Any piece
// already on that square is removed first.
func (p *Position) Add(kind Kind, colour Colour, sq Square) Piece {
	if occupant, ok := p.At(sq); ok {
		p.Remove(occupant.ID)
	}
	p.nextID++
	pc := Piece{
		ID:     p.nextID,
		Kind:   kind,
		Colour: colour,
		Square: sq,
		Prev:   sq,
	}
	p.pieces = append(p.pieces, pc)
	return pc
}

// Get returns the piece with the given ID.
func (p *Position) Get(id int) (Piece, bool) {
	if i := p.index(id); i >= 0 {
		return p.pieces[i], true
	}
	return Piece{}, false
}

// At returns the piece standing on the given square.
func (p *Position) At(sq Square) (Piece, bool) {
	if !sq.OnBoard() {
		return Piece{}, false
	}
	for _, pc := range p.pieces {
		if pc.Square == sq {
			return pc, true
		}
	}
	return Piece{}, false
}

// Occupied reports whether any piece stands on the square.
func (p *Position) Occupied(sq Square) bool {
	_, ok := p.At(sq)
	return ok
}

// Update replaces the stored piece that has the same ID as pc.
// It returns false if no such piece exists.
func (p *Position) Update(pc Piece) bool {
	i := p.index(pc.ID)
	if i < 0 {
		return false
	}
	p.pieces[i] = pc
	return true
}

// Remove takes the piece with the given ID off the board.
func (p *Position) Remove(id int) bool {
	i := p.index(id)
	if i < 0 {
		return false
	}
	p.pieces = append(p.pieces[:i], p.pieces[i+1:]...)
	return true
}

// Pieces returns a copy of all pieces in the position.
func (p *Position) Pieces() []Piece {
	out := make([]Piece, len(p.pieces))
	copy(out, p.pieces)
	return out
}

// Count returns the number of pieces of the given colour.
func (p *Position) Count(colour Colour) int {
	n := 0
	for _, pc := range p.pieces {
		if pc.Colour == colour {
			n++
		}
	}
	return n
}

// King returns the king of the given colour.
func (p *Position) King(colour Colour) (Piece, bool) {
	for _, pc := range p.pieces {
		if pc.Kind == King && pc.Colour == colour {
			return pc, true
		}
	}
	return Piece{}, false
}

// ClearTwoStepped resets the two-square-advance flag on every piece of the
// given colour.
func (p *Position) ClearTwoStepped(colour Colour) {
	for i := range p.pieces {
		if p.pieces[i].Colour == colour {
			p.pieces[i].TwoStepped = false
		}
	}
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	return &Position{
		pieces: p.Pieces(),
		nextID: p.nextID,
	}
}

// Layout returns the 8x8 grid of piece codes for the position.
func (p *Position) Layout() Layout {
	var l Layout
	for _, pc := range p.pieces {
		if pc.Square.OnBoard() {
			l[pc.Square.Row][pc.Square.Col] = pc.Code()
		}
	}
	return l
}

func (p *Position) index(id int) int {
	for i, pc := range p.pieces {
		if pc.ID == id {
			return i
		}
	}
	return -1
}
