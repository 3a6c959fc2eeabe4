package model

import "testing"

// cellID summarizes a grid layout by occupant type and color so layouts can
// be compared across moves and undos.
type cellID struct {
	typ   PieceType
	color string
}

func layoutOf(b *Board) [BoardLength][BoardLength]cellID {
	var layout [BoardLength][BoardLength]cellID
	grid := b.GetBoardState()
	for row := 0; row < BoardLength; row++ {
		for col := 0; col < BoardLength; col++ {
			if p := grid[row][col]; p != nil {
				layout[row][col] = cellID{typ: p.Type(), color: p.Color()}
			}
		}
	}
	return layout
}

func TestStandardSetup(t *testing.T) {
	b := NewBoard("BLACK", "WHITE")

	backRank := [BoardLength]PieceType{Rook, Knight, Bishop, King, Queen, Bishop, Knight, Rook}
	for col := 0; col < BoardLength; col++ {
		for _, row := range []int{0, 7} {
			p := b.GetCell(row, col)
			if p == nil || p.Type() != backRank[col] {
				t.Fatalf("cell (%d, %d): want %s, got %v", row, col, backRank[col], p)
			}
		}
		for _, row := range []int{1, 6} {
			p := b.GetCell(row, col)
			if p == nil || p.Type() != Pawn {
				t.Fatalf("cell (%d, %d): want PAWN, got %v", row, col, p)
			}
		}
		if !b.GetCell(1, col).IsMovingUp() {
			t.Errorf("row 1 pawn at col %d should be moving up", col)
		}
		if b.GetCell(6, col).IsMovingUp() {
			t.Errorf("row 6 pawn at col %d should be moving down", col)
		}
	}

	for row := 2; row <= 5; row++ {
		for col := 0; col < BoardLength; col++ {
			if b.GetCell(row, col) != nil {
				t.Fatalf("cell (%d, %d) should be empty", row, col)
			}
		}
	}

	for _, row := range []int{0, 1} {
		if got := b.GetCell(row, 0).Color(); got != "BLACK" {
			t.Errorf("row %d belongs to player one (BLACK), got %q", row, got)
		}
	}
	for _, row := range []int{6, 7} {
		if got := b.GetCell(row, 0).Color(); got != "WHITE" {
			t.Errorf("row %d belongs to player two (WHITE), got %q", row, got)
		}
	}

	if !b.PlayerOneTurn() {
		t.Error("player one moves first")
	}
	if len(b.Pieces()) != 32 {
		t.Errorf("ownership list has %d pieces, want 32", len(b.Pieces()))
	}
}

func TestBoardColorValidation(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 string
		want1  string
		want2  string
	}{
		{name: "ValidPair", p1: "RED", p2: "BLUE", want1: "RED", want2: "BLUE"},
		{name: "UnknownColor", p1: "PURPLE", p2: "BLUE", want1: "BLACK", want2: "WHITE"},
		{name: "DuplicatePair", p1: "GREEN", p2: "GREEN", want1: "BLACK", want2: "WHITE"},
		{name: "EmptyStrings", p1: "", p2: "", want1: "BLACK", want2: "WHITE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(tt.p1, tt.p2)
			if b.PlayerOneColor() != tt.want1 || b.PlayerTwoColor() != tt.want2 {
				t.Fatalf("colors = %q/%q, want %q/%q",
					b.PlayerOneColor(), b.PlayerTwoColor(), tt.want1, tt.want2)
			}
		})
	}
}

func TestMoveRejections(t *testing.T) {
	tests := []struct {
		name string
		move [4]int
	}{
		{name: "SourceOutOfRange", move: [4]int{-1, 0, 2, 0}},
		{name: "SourceColumnOutOfRange", move: [4]int{0, 8, 2, 0}},
		{name: "EmptySource", move: [4]int{3, 3, 4, 3}},
		{name: "OpponentPiece", move: [4]int{6, 0, 5, 0}},
		{name: "IllegalGeometry", move: [4]int{1, 0, 1, 1}},
		{name: "BlockedPath", move: [4]int{0, 0, 3, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard("BLACK", "WHITE")
			before := layoutOf(b)

			if b.Move(tt.move[0], tt.move[1], tt.move[2], tt.move[3]) {
				t.Fatal("move should have been rejected")
			}
			if layoutOf(b) != before {
				t.Fatal("rejected move must not change the grid")
			}
			if !b.PlayerOneTurn() {
				t.Fatal("rejected move must not flip the turn")
			}
			if b.HistoryLen() != 0 {
				t.Fatal("rejected move must not be recorded")
			}
		})
	}
}

func TestKingIsNeverCapturable(t *testing.T) {
	var grid Grid
	place(&grid, NewRook("BLACK", 4, 0, false))
	place(&grid, NewKing("WHITE", 4, 7, false))
	b := NewBoardFromGrid(grid, true)
	before := layoutOf(b)

	if b.Move(4, 0, 4, 7) {
		t.Fatal("capturing a king must be rejected")
	}
	if layoutOf(b) != before {
		t.Fatal("rejected king capture must not change the grid")
	}
	if !b.PlayerOneTurn() {
		t.Fatal("rejected king capture must not flip the turn")
	}
}

func TestSuccessfulMove(t *testing.T) {
	b := NewBoard("BLACK", "WHITE")
	pawn := b.GetCell(1, 0)

	if !b.Move(1, 0, 2, 0) {
		t.Fatal("pawn advance should succeed")
	}
	if b.GetCell(1, 0) != nil {
		t.Error("source cell should be empty")
	}
	if b.GetCell(2, 0) != pawn {
		t.Error("destination cell should hold the moved piece")
	}
	if pawn.Position() != (Square{Row: 2, Col: 0}) {
		t.Errorf("piece position = %v, want (2, 0)", pawn.Position())
	}
	if !pawn.HasMoved() {
		t.Error("moved piece must be flagged")
	}
	if pawn.CanDoubleJump() {
		t.Error("double jump must lapse after the first move")
	}
	if b.PlayerOneTurn() {
		t.Error("successful move must flip the turn")
	}
	if b.HistoryLen() != 1 {
		t.Errorf("history length = %d, want 1", b.HistoryLen())
	}
}

func TestMoveRecord(t *testing.T) {
	var grid Grid
	rook := place(&grid, NewRook("BLACK", 4, 0, false))
	victim := place(&grid, NewPawn("WHITE", 4, 5, false))
	b := NewBoardFromGrid(grid, true)

	if !b.Move(4, 0, 4, 5) {
		t.Fatal("capture should succeed")
	}
	m := b.LastMove()
	if m == nil {
		t.Fatal("no move recorded")
	}
	if m.OriginalPosition() != (Square{Row: 4, Col: 0}) {
		t.Errorf("from = %v, want (4, 0)", m.OriginalPosition())
	}
	if m.TargetPosition() != (Square{Row: 4, Col: 5}) {
		t.Errorf("to = %v, want (4, 5)", m.TargetPosition())
	}
	if m.MovedPiece() != rook {
		t.Error("moved piece mismatch")
	}
	if m.CapturedPiece() != victim {
		t.Error("captured piece mismatch")
	}
}

func TestUndoIsAPerfectInverse(t *testing.T) {
	t.Run("PlainMove", func(t *testing.T) {
		b := NewBoard("BLACK", "WHITE")
		before := layoutOf(b)

		if !b.Move(1, 0, 2, 0) {
			t.Fatal("move should succeed")
		}
		if !b.Undo() {
			t.Fatal("undo should succeed")
		}
		if layoutOf(b) != before {
			t.Fatal("undo must restore the pre-move grid")
		}
		if !b.PlayerOneTurn() {
			t.Fatal("undo must restore the pre-move turn")
		}
		pawn := b.GetCell(1, 0)
		if pawn.HasMoved() {
			t.Fatal("undo must restore the has-moved flag of a first move")
		}
		if !pawn.CanDoubleJump() {
			t.Fatal("undone pawn regains its double jump")
		}
	})

	t.Run("Capture", func(t *testing.T) {
		var grid Grid
		place(&grid, NewRook("BLACK", 4, 0, false))
		victim := place(&grid, NewPawn("WHITE", 4, 5, false))
		b := NewBoardFromGrid(grid, true)
		before := layoutOf(b)

		if !b.Move(4, 0, 4, 5) {
			t.Fatal("capture should succeed")
		}
		if !b.Undo() {
			t.Fatal("undo should succeed")
		}
		if layoutOf(b) != before {
			t.Fatal("undo must restore the captured piece to its square")
		}
		if b.GetCell(4, 5) != victim {
			t.Fatal("restored cell must hold the original captured piece, not a copy")
		}
		if victim.Position() != (Square{Row: 4, Col: 5}) {
			t.Fatalf("captured piece position = %v, want (4, 5)", victim.Position())
		}
	})

	t.Run("EmptyHistory", func(t *testing.T) {
		b := NewBoard("BLACK", "WHITE")
		if b.Undo() {
			t.Fatal("undo with no history must fail")
		}
		if !b.PlayerOneTurn() {
			t.Fatal("failed undo must not flip the turn")
		}
	})
}

func TestTurnAlternation(t *testing.T) {
	b := NewBoard("BLACK", "WHITE")

	if !b.PlayerOneTurn() {
		t.Fatal("player one starts")
	}
	if !b.Move(1, 0, 2, 0) {
		t.Fatal("move should succeed")
	}
	if b.PlayerOneTurn() {
		t.Fatal("successful move flips the turn")
	}
	if b.Move(1, 1, 2, 1) {
		t.Fatal("player one cannot move twice in a row")
	}
	if b.PlayerOneTurn() {
		t.Fatal("rejected move leaves the turn alone")
	}
	if !b.Undo() {
		t.Fatal("undo should succeed")
	}
	if !b.PlayerOneTurn() {
		t.Fatal("successful undo flips the turn back")
	}
	if b.Undo() {
		t.Fatal("second undo has nothing to revert")
	}
	if !b.PlayerOneTurn() {
		t.Fatal("failed undo leaves the turn alone")
	}
}

func TestOpeningScenario(t *testing.T) {
	b := NewBoard("BLACK", "WHITE")

	if !b.Move(1, 0, 2, 0) {
		t.Fatal("pawn single step should succeed")
	}
	if !b.Move(6, 0, 4, 0) {
		t.Fatal("opposing pawn double jump should succeed")
	}
	if b.Move(0, 0, 0, 1) {
		t.Fatal("rook blocked by its own knight must be rejected")
	}
	if b.PlayerOneTurn() != true {
		t.Fatal("rejected move leaves the turn with player one")
	}
}

func TestRoundTrip(t *testing.T) {
	b := NewBoard("BLACK", "WHITE")
	before := layoutOf(b)

	moves := [][4]int{
		{1, 0, 3, 0}, // player one pawn double jump
		{6, 1, 4, 1}, // player two pawn double jump
		{3, 0, 4, 1}, // player one pawn captures diagonally
		{7, 1, 5, 2}, // player two knight develops
		{4, 1, 5, 2}, // player one pawn captures the knight
	}
	for i, mv := range moves {
		if !b.Move(mv[0], mv[1], mv[2], mv[3]) {
			t.Fatalf("move %d %v should succeed", i, mv)
		}
	}
	if b.HistoryLen() != len(moves) {
		t.Fatalf("history length = %d, want %d", b.HistoryLen(), len(moves))
	}

	for i := 0; i < len(moves); i++ {
		if !b.Undo() {
			t.Fatalf("undo %d should succeed", i)
		}
	}
	if layoutOf(b) != before {
		t.Fatal("N moves followed by N undos must restore the original layout")
	}
	if !b.PlayerOneTurn() {
		t.Fatal("round trip must restore the original turn")
	}
	if b.HistoryLen() != 0 {
		t.Fatal("round trip must drain the history")
	}
}

func TestGetCellOutOfRange(t *testing.T) {
	b := NewBoard("BLACK", "WHITE")
	for _, sq := range []Square{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		if b.GetCell(sq.Row, sq.Col) != nil {
			t.Fatalf("GetCell(%v) should be empty", sq)
		}
	}
}
