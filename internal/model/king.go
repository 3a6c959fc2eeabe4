package model

// NewKing constructs a king.
func NewKing(color string, row, col int, movingUp bool) *Piece {
	return newPiece(kingRule{}, King, 4, color, row, col, movingUp)
}

type kingRule struct{}

// One step in any direction, including diagonals. Staying put is not a move.
func (kingRule) canMove(p *Piece, targetRow, targetCol int, grid *Grid) bool {
	if targetRow == p.row && targetCol == p.col {
		return false
	}
	return abs(targetRow-p.row) <= 1 && abs(targetCol-p.col) <= 1
}
