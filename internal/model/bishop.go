package model

// NewBishop constructs a bishop.
func NewBishop(color string, row, col int, movingUp bool) *Piece {
	return newPiece(bishopRule{}, Bishop, 3, color, row, col, movingUp)
}

type bishopRule struct{}

func (bishopRule) canMove(p *Piece, targetRow, targetCol int, grid *Grid) bool {
	rowDiff := targetRow - p.row
	colDiff := targetCol - p.col
	if rowDiff == 0 && colDiff == 0 {
		return false
	}
	if abs(rowDiff) != abs(colDiff) {
		return false
	}
	return pathClear(grid, p.row, p.col, targetRow, targetCol)
}
