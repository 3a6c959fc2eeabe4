package model

// Move is an immutable record of one executed relocation. The piece
// references are non-owning: the Board's ownership list keeps every piece
// alive, including captured ones, so undo can restore them without
// re-allocation.
type Move struct {
	from      Square
	to        Square
	moved     *Piece
	captured  *Piece
	firstMove bool
}

func newMove(from, to Square, moved, captured *Piece) *Move {
	return &Move{
		from:      from,
		to:        to,
		moved:     moved,
		captured:  captured,
		firstMove: !moved.hasMoved,
	}
}

// OriginalPosition returns the square the piece moved from.
func (m *Move) OriginalPosition() Square { return m.from }

// TargetPosition returns the square the piece moved to.
func (m *Move) TargetPosition() Square { return m.to }

// MovedPiece returns the piece that moved.
func (m *Move) MovedPiece() *Piece { return m.moved }

// CapturedPiece returns the piece captured by the move, or nil.
func (m *Move) CapturedPiece() *Piece { return m.captured }
