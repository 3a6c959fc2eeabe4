package model

// NewPawn constructs a pawn. movingUp fixes the direction it advances in:
// toward increasing row indexes when true.
func NewPawn(color string, row, col int, movingUp bool) *Piece {
	return newPiece(pawnRule{}, Pawn, 1, color, row, col, movingUp)
}

type pawnRule struct{}

func (pawnRule) canMove(p *Piece, targetRow, targetCol int, grid *Grid) bool {
	direction := -1
	if p.movingUp {
		direction = 1
	}
	target := grid[targetRow][targetCol]

	// Straight: one row forward onto an empty square, or two if the pawn has
	// never moved. The double jump does not scan the intermediate square.
	straight := target == nil && p.col == targetCol &&
		(p.row+direction == targetRow ||
			(p.CanDoubleJump() && p.row+2*direction == targetRow))

	// Diagonal: capture one square forward-left or forward-right.
	diagonal := target != nil && abs(p.col-targetCol) == 1 &&
		p.row+direction == targetRow

	return straight || diagonal
}

// CanDoubleJump reports whether the pawn may still advance two squares; the
// option lapses permanently the first time the pawn moves. Always false for
// non-pawns.
func (p *Piece) CanDoubleJump() bool {
	return p.pieceType == Pawn && !p.hasMoved
}

// CanPromote reports whether the pawn has reached the farthest row in its
// direction of travel. Promotion itself is not executed by the engine; this
// only exposes eligibility. Always false for non-pawns.
func (p *Piece) CanPromote() bool {
	if p.pieceType != Pawn {
		return false
	}
	if p.movingUp {
		return p.row == BoardLength-1
	}
	return p.row == 0
}
