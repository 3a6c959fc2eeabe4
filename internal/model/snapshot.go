package model

// PieceState is a serializable view of a single piece.
type PieceState struct {
	Type     PieceType `json:"type"`
	Symbol   string    `json:"symbol"`
	Color    string    `json:"color"`
	Row      int       `json:"row"`
	Col      int       `json:"col"`
	MovingUp bool      `json:"movingUp"`
	Size     int       `json:"size"`
	HasMoved bool      `json:"hasMoved"`
}

// MoveRecord is a serializable view of one executed move.
type MoveRecord struct {
	From     Square    `json:"from"`
	To       Square    `json:"to"`
	Piece    PieceType `json:"piece"`
	Captured PieceType `json:"captured,omitempty"`
}

// BoardSnapshot is a serializable view of the full board state, consumed by
// the JSON output surface and the websocket broadcast.
type BoardSnapshot struct {
	Board          [BoardLength][BoardLength]*PieceState `json:"board"`
	PlayerOneTurn  bool                                  `json:"playerOneTurn"`
	ToMove         string                                `json:"toMove"`
	PlayerOneColor string                                `json:"playerOneColor"`
	PlayerTwoColor string                                `json:"playerTwoColor"`
	Moves          []MoveRecord                          `json:"moves"`
}

func newPieceState(p *Piece) *PieceState {
	return &PieceState{
		Type:     p.pieceType,
		Symbol:   p.pieceType.Symbol(),
		Color:    p.color,
		Row:      p.row,
		Col:      p.col,
		MovingUp: p.movingUp,
		Size:     p.size,
		HasMoved: p.hasMoved,
	}
}

func newMoveRecord(m *Move) MoveRecord {
	rec := MoveRecord{
		From:  m.from,
		To:    m.to,
		Piece: m.moved.pieceType,
	}
	if m.captured != nil {
		rec.Captured = m.captured.pieceType
	}
	return rec
}

// Snapshot copies the board into a serializable form. The copy shares no
// state with the board, so it can be marshalled after the board moves on.
func (b *Board) Snapshot() BoardSnapshot {
	snap := BoardSnapshot{
		PlayerOneTurn:  b.playerOneTurn,
		ToMove:         b.ColorInPlay(),
		PlayerOneColor: b.p1Color,
		PlayerTwoColor: b.p2Color,
		Moves:          make([]MoveRecord, 0, len(b.history)),
	}
	for row := 0; row < BoardLength; row++ {
		for col := 0; col < BoardLength; col++ {
			if piece := b.grid[row][col]; piece != nil {
				snap.Board[row][col] = newPieceState(piece)
			}
		}
	}
	for _, m := range b.history {
		snap.Moves = append(snap.Moves, newMoveRecord(m))
	}
	return snap
}
