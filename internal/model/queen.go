package model

// NewQueen constructs a queen.
func NewQueen(color string, row, col int, movingUp bool) *Piece {
	return newPiece(queenRule{}, Queen, 4, color, row, col, movingUp)
}

type queenRule struct{}

// The queen's reach is the union of the rook's and the bishop's, with the
// same ray scan along whichever line applies.
func (queenRule) canMove(p *Piece, targetRow, targetCol int, grid *Grid) bool {
	rowDiff := targetRow - p.row
	colDiff := targetCol - p.col
	if rowDiff == 0 && colDiff == 0 {
		return false
	}
	straight := rowDiff == 0 || colDiff == 0
	diagonal := abs(rowDiff) == abs(colDiff)
	if !straight && !diagonal {
		return false
	}
	return pathClear(grid, p.row, p.col, targetRow, targetCol)
}
