package model

// allowedColors is the fixed set of display colors a board will accept for
// its players. Anything else falls back to the default pair.
var allowedColors = map[string]struct{}{
	"BLACK":   {},
	"RED":     {},
	"GREEN":   {},
	"YELLOW":  {},
	"BLUE":    {},
	"MAGENTA": {},
	"CYAN":    {},
	"WHITE":   {},
}

const (
	defaultPlayerOneColor = "BLACK"
	defaultPlayerTwoColor = "WHITE"
)

// IsAllowedColor reports whether name is a display color boards accept.
func IsAllowedColor(name string) bool {
	_, ok := allowedColors[name]
	return ok
}

// Board owns the 8x8 grid, every piece ever placed on it, the turn flag, and
// the history stack. Captured pieces are unlinked from the grid but stay in
// the ownership list so undo can restore them.
type Board struct {
	playerOneTurn bool
	p1Color       string
	p2Color       string
	grid          Grid
	pieces        []*Piece
	history       []*Move
}

// NewBoard builds a board with the standard initial layout:
//
//	7 | R N B K Q B N R
//	6 | P P P P P P P P
//	5 | * * * * * * * *
//	4 | * * * * * * * *
//	3 | * * * * * * * *
//	2 | * * * * * * * *
//	1 | P P P P P P P P
//	0 | R N B K Q B N R
//	    ---------------
//	    0 1 2 3 4 5 6 7
//
// Player one holds rows 0-1 and moves first; its pawns move up the board.
// If either display color is not allowed, or the two are
// equal, the default BLACK/WHITE pair is used instead.
func NewBoard(p1Color, p2Color string) *Board {
	b := &Board{
		playerOneTurn: true,
		p1Color:       p1Color,
		p2Color:       p2Color,
	}
	if !IsAllowedColor(b.p1Color) || !IsAllowedColor(b.p2Color) || b.p1Color == b.p2Color {
		b.p1Color = defaultPlayerOneColor
		b.p2Color = defaultPlayerTwoColor
	}

	backRank := [BoardLength]PieceType{Rook, Knight, Bishop, King, Queen, Bishop, Knight, Rook}
	for col := 0; col < BoardLength; col++ {
		b.grid[1][col] = NewPawn(b.p1Color, 1, col, true)
		b.grid[6][col] = NewPawn(b.p2Color, 6, col, false)

		switch backRank[col] {
		case Rook:
			b.grid[0][col] = NewRook(b.p1Color, 0, col, false)
			b.grid[7][col] = NewRook(b.p2Color, 7, col, false)
		case Knight:
			b.grid[0][col] = NewKnight(b.p1Color, 0, col, false)
			b.grid[7][col] = NewKnight(b.p2Color, 7, col, false)
		case Bishop:
			b.grid[0][col] = NewBishop(b.p1Color, 0, col, false)
			b.grid[7][col] = NewBishop(b.p2Color, 7, col, false)
		case King:
			b.grid[0][col] = NewKing(b.p1Color, 0, col, false)
			b.grid[7][col] = NewKing(b.p2Color, 7, col, false)
		case Queen:
			b.grid[0][col] = NewQueen(b.p1Color, 0, col, false)
			b.grid[7][col] = NewQueen(b.p2Color, 7, col, false)
		}
	}
	b.trackGridPieces()
	return b
}

// NewBoardFromGrid builds a board around a pre-built grid and an explicit
// turn flag. This is how arbitrary positions are set up, mostly in tests.
// Display colors are the default pair.
func NewBoardFromGrid(grid Grid, playerOneTurn bool) *Board {
	b := &Board{
		playerOneTurn: playerOneTurn,
		p1Color:       defaultPlayerOneColor,
		p2Color:       defaultPlayerTwoColor,
		grid:          grid,
	}
	b.trackGridPieces()
	return b
}

func (b *Board) trackGridPieces() {
	for row := 0; row < BoardLength; row++ {
		for col := 0; col < BoardLength; col++ {
			if b.grid[row][col] != nil {
				b.pieces = append(b.pieces, b.grid[row][col])
			}
		}
	}
}

// GetCell returns the piece at (row, col), or nil if the cell is empty or
// out of range.
func (b *Board) GetCell(row, col int) *Piece {
	if !inBounds(row, col) {
		return nil
	}
	return b.grid[row][col]
}

// GetBoardState returns a snapshot of the grid. The cells alias the board's
// pieces, which is sufficient for read-only rendering.
func (b *Board) GetBoardState() Grid {
	return b.grid
}

// Pieces returns every piece the board has ever owned, including captured
// ones no longer reachable from the grid.
func (b *Board) Pieces() []*Piece {
	return b.pieces
}

func (b *Board) PlayerOneTurn() bool    { return b.playerOneTurn }
func (b *Board) PlayerOneColor() string { return b.p1Color }
func (b *Board) PlayerTwoColor() string { return b.p2Color }

// ColorInPlay returns the display color of the player whose turn it is.
func (b *Board) ColorInPlay() string {
	if b.playerOneTurn {
		return b.p1Color
	}
	return b.p2Color
}

// HistoryLen returns the number of moves that can currently be undone.
func (b *Board) HistoryLen() int { return len(b.history) }

// LastMove returns the most recent executed move, or nil.
func (b *Board) LastMove() *Move {
	if len(b.history) == 0 {
		return nil
	}
	return b.history[len(b.history)-1]
}

// Move relocates the piece at (row, col) to (newRow, newCol) if possible.
// The move is rejected, leaving all state untouched, when the source is out
// of range or empty, the piece does not belong to the player in turn, the
// piece's movement rule refuses the destination, or the destination holds a
// king (kings are never capturable). A successful move updates the grid and
// the piece, records a Move on the history stack, and flips the turn.
func (b *Board) Move(row, col, newRow, newCol int) bool {
	if !inBounds(row, col) {
		return false
	}
	moving := b.grid[row][col]
	if moving == nil {
		return false
	}
	if moving.color != b.ColorInPlay() {
		return false
	}
	if !moving.CanMove(newRow, newCol, &b.grid) {
		return false
	}

	captured := b.grid[newRow][newCol]
	if captured != nil && captured.pieceType == King {
		return false
	}

	record := newMove(Square{Row: row, Col: col}, Square{Row: newRow, Col: newCol}, moving, captured)

	b.grid[newRow][newCol] = moving
	b.grid[row][col] = nil
	moving.SetRow(newRow)
	moving.SetColumn(newCol)
	moving.hasMoved = true

	b.history = append(b.history, record)
	b.playerOneTurn = !b.playerOneTurn
	return true
}

// Undo reverses the most recent move: the moved piece returns to its origin,
// the captured piece (if any) is restored to the destination, positions and
// the first-move flag are reconciled, and the turn flips back. Returns false
// with no effect when there is nothing to undo.
func (b *Board) Undo() bool {
	if len(b.history) == 0 {
		return false
	}
	record := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	b.grid[record.from.Row][record.from.Col] = record.moved
	b.grid[record.to.Row][record.to.Col] = record.captured
	record.moved.SetRow(record.from.Row)
	record.moved.SetColumn(record.from.Col)
	if record.captured != nil {
		record.captured.SetRow(record.to.Row)
		record.captured.SetColumn(record.to.Col)
	}
	if record.firstMove {
		record.moved.hasMoved = false
	}

	b.playerOneTurn = !b.playerOneTurn
	return true
}
