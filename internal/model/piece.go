package model

import "fmt"

// BoardLength is the number of rows and columns on the board.
const BoardLength = 8

type PieceType string

const (
	Pawn   PieceType = "PAWN"
	Rook   PieceType = "ROOK"
	Knight PieceType = "KNIGHT"
	Bishop PieceType = "BISHOP"
	Queen  PieceType = "QUEEN"
	King   PieceType = "KING"
)

// Symbol returns the one-letter display symbol for the piece type.
// Knights use N so they don't collide with kings.
func (p PieceType) Symbol() string {
	if p == Knight {
		return "N"
	}
	return string(p[0])
}

// Square is a (row, column) coordinate pair on the grid. A piece that is not
// on the board holds the sentinel (-1, -1); row is -1 if and only if col is -1.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// OffBoard is the sentinel position of a piece that is not on the board.
var OffBoard = Square{Row: -1, Col: -1}

func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardLength && s.Col >= 0 && s.Col < BoardLength
}

func (s Square) String() string {
	return fmt.Sprintf("(%d, %d)", s.Row, s.Col)
}

// Grid maps each square to at most one piece. Cells alias pieces owned by the
// Board; a nil cell is empty.
type Grid [BoardLength][BoardLength]*Piece

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardLength && col >= 0 && col < BoardLength
}

// mover is the movement capability implemented once per piece variant. The
// shared guards (piece on board, target in range, no same-color capture) are
// applied by Piece.CanMove before dispatch, so implementations only check
// their own geometry and obstruction rules.
type mover interface {
	canMove(p *Piece, targetRow, targetCol int, grid *Grid) bool
}

// Piece is a single chess piece. Its zero value is not usable; construct
// pieces with the per-variant constructors (NewPawn, NewRook, ...).
type Piece struct {
	pieceType PieceType
	color     string
	row       int
	col       int
	movingUp  bool
	size      int
	hasMoved  bool
	rule      mover
}

func newPiece(rule mover, pieceType PieceType, size int, color string, row, col int, movingUp bool) *Piece {
	p := &Piece{
		pieceType: pieceType,
		color:     "BLACK",
		row:       -1,
		col:       -1,
		movingUp:  movingUp,
		size:      size,
		rule:      rule,
	}
	p.SetColor(color)
	p.SetRow(row)
	if p.row != -1 {
		p.SetColumn(col)
	}
	return p
}

func (p *Piece) Color() string { return p.color }

// SetColor assigns the piece's color, normalized to upper case. The input
// must be non-empty and purely alphabetic; otherwise the previous value is
// kept and false is returned.
func (p *Piece) SetColor(color string) bool {
	if color == "" {
		return false
	}
	upper := make([]byte, 0, len(color))
	for i := 0; i < len(color); i++ {
		c := color[i]
		switch {
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		case c >= 'A' && c <= 'Z':
		default:
			return false
		}
		upper = append(upper, c)
	}
	p.color = string(upper)
	return true
}

func (p *Piece) Row() int    { return p.row }
func (p *Piece) Column() int { return p.col }

func (p *Piece) Position() Square {
	return Square{Row: p.row, Col: p.col}
}

// SetRow places the piece on the given row. A row outside [0, BoardLength)
// takes the piece off the board entirely: both coordinates become -1.
func (p *Piece) SetRow(row int) {
	if row < 0 || row >= BoardLength {
		p.row = -1
		p.col = -1
		return
	}
	p.row = row
}

// SetColumn places the piece on the given column. A column outside
// [0, BoardLength) takes the piece off the board entirely.
func (p *Piece) SetColumn(col int) {
	if col < 0 || col >= BoardLength {
		p.row = -1
		p.col = -1
		return
	}
	p.col = col
}

func (p *Piece) IsMovingUp() bool      { return p.movingUp }
func (p *Piece) SetMovingUp(flag bool) { p.movingUp = flag }
func (p *Piece) Size() int             { return p.size }
func (p *Piece) Type() PieceType       { return p.pieceType }
func (p *Piece) HasMoved() bool        { return p.hasMoved }

// CanMove reports whether the piece can legally relocate to the target square
// given the current grid. It is a pure predicate: nothing is mutated. The
// guards common to every variant live here; the variant's movement rule only
// sees targets that pass them.
func (p *Piece) CanMove(targetRow, targetCol int, grid *Grid) bool {
	if p.row == -1 || p.col == -1 {
		return false
	}
	if !inBounds(targetRow, targetCol) {
		return false
	}
	if target := grid[targetRow][targetCol]; target != nil && target.color == p.color {
		return false
	}
	return p.rule.canMove(p, targetRow, targetCol, grid)
}

// pathClear walks one square at a time from (fromRow, fromCol) toward
// (toRow, toCol) and reports whether every intermediate square is empty. The
// destination itself is not examined; its occupancy is the caller's concern.
// The two squares must share a row, a column, or a diagonal.
func pathClear(grid *Grid, fromRow, fromCol, toRow, toCol int) bool {
	stepRow := sign(toRow - fromRow)
	stepCol := sign(toCol - fromCol)
	row, col := fromRow+stepRow, fromCol+stepCol
	for row != toRow || col != toCol {
		if grid[row][col] != nil {
			return false
		}
		row += stepRow
		col += stepCol
	}
	return true
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
