// Package console renders a board as colored text and drives rounds of play
// from an interactive prompt. It consumes only the engine's public surface:
// GetBoardState, GetCell, Move and Undo.
package console

import "github.com/bry862/ChessProject/internal/model"

// colorCodes maps the allowed display colors to their ANSI escape codes.
var colorCodes = map[string]string{
	"BLACK":   "\033[1;90m",
	"RED":     "\033[1;31m",
	"GREEN":   "\033[1;32m",
	"YELLOW":  "\033[1;33m",
	"BLUE":    "\033[1;34m",
	"MAGENTA": "\033[1;35m",
	"CYAN":    "\033[1;36m",
	"WHITE":   "\033[1;37m",
}

const colorReset = "\033[0m"

// ColorText wraps text in the ANSI escape sequence for the named color, or
// returns it unchanged when the color is unknown.
func ColorText(text, color string) string {
	code, ok := colorCodes[color]
	if !ok {
		return text
	}
	return code + text + colorReset
}

// pieceSymbol returns the colored one-letter symbol for a cell, or "*" for
// an empty one.
func pieceSymbol(piece *model.Piece) string {
	if piece == nil {
		return "*"
	}
	return ColorText(piece.Type().Symbol(), piece.Color())
}
