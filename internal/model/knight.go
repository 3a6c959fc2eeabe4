package model

// NewKnight constructs a knight.
func NewKnight(color string, row, col int, movingUp bool) *Piece {
	return newPiece(knightRule{}, Knight, 3, color, row, col, movingUp)
}

type knightRule struct{}

// Knights jump, so there is no obstruction scan; only the L-shape matters.
func (knightRule) canMove(p *Piece, targetRow, targetCol int, grid *Grid) bool {
	rowDiff := abs(p.row - targetRow)
	colDiff := abs(p.col - targetCol)
	return (rowDiff == 1 && colDiff == 2) || (rowDiff == 2 && colDiff == 1)
}
