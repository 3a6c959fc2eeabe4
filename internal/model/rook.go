package model

const defaultCastleMoves = 3

// NewRook constructs a rook with the default castle-move capacity.
func NewRook(color string, row, col int, movingUp bool) *Piece {
	return NewRookWithCastleMoves(color, row, col, movingUp, defaultCastleMoves)
}

// NewRookWithCastleMoves constructs a rook with an explicit castle-move
// capacity. Negative capacities are clamped to zero.
func NewRookWithCastleMoves(color string, row, col int, movingUp bool, castleMoves int) *Piece {
	if castleMoves < 0 {
		castleMoves = 0
	}
	return newPiece(&rookRule{castleMovesLeft: castleMoves}, Rook, 2, color, row, col, movingUp)
}

type rookRule struct {
	castleMovesLeft int
}

func (*rookRule) canMove(p *Piece, targetRow, targetCol int, grid *Grid) bool {
	rowDiff := targetRow - p.row
	colDiff := targetCol - p.col
	if rowDiff == 0 && colDiff == 0 {
		return false
	}
	if rowDiff != 0 && colDiff != 0 {
		return false
	}
	return pathClear(grid, p.row, p.col, targetRow, targetCol)
}

// CastleMovesLeft returns the rook's remaining castle-move capacity, or zero
// for non-rooks.
func (p *Piece) CastleMovesLeft() int {
	if rule, ok := p.rule.(*rookRule); ok {
		return rule.castleMovesLeft
	}
	return 0
}

// CanCastle reports whether this rook could castle with the target piece:
// it must have castle moves remaining, share the target's color, both pieces
// must be on the board, and they must sit on the same row with columns
// differing by at most 1. Move execution never consults this predicate.
func (p *Piece) CanCastle(target *Piece) bool {
	rule, ok := p.rule.(*rookRule)
	if !ok || target == nil {
		return false
	}
	if rule.castleMovesLeft == 0 || p.color != target.color {
		return false
	}
	if p.row < 0 || p.col < 0 || target.row < 0 || target.col < 0 {
		return false
	}
	return p.row == target.row && abs(p.col-target.col) <= 1
}
