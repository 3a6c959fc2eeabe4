package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bry862/ChessProject/internal/model"
)

// Controller runs rounds of play against one board: it prompts for a source
// and a destination square, and treats any input that does not parse as two
// integers as a request to undo the previous action instead.
type Controller struct {
	board *model.Board
	in    *bufio.Scanner
	out   io.Writer
}

func NewController(board *model.Board, in io.Reader, out io.Writer) *Controller {
	return &Controller{
		board: board,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Render writes the board: row headers top-down, one-letter piece symbols in
// the owning player's color, and column labels underneath.
func (c *Controller) Render() {
	grid := c.board.GetBoardState()
	for row := model.BoardLength - 1; row >= 0; row-- {
		fmt.Fprintf(c.out, "%d | ", row)
		for col := 0; col < model.BoardLength; col++ {
			fmt.Fprintf(c.out, "%s ", pieceSymbol(grid[row][col]))
		}
		fmt.Fprintln(c.out)
	}
	fmt.Fprintln(c.out, strings.Repeat(" ", 4)+strings.Repeat("-", 15))
	fmt.Fprint(c.out, strings.Repeat(" ", 4))
	for col := 0; col < model.BoardLength; col++ {
		fmt.Fprintf(c.out, "%d ", col)
	}
	fmt.Fprintln(c.out)
}

// AttemptRound plays one round: collect a source square, collect a
// destination square, then execute the move. Unparsable input at either
// prompt undoes the previous action instead. The board itself flips the
// turn on a successful move or undo. The second return value is false once
// the input is exhausted.
func (c *Controller) AttemptRound() (bool, bool) {
	fmt.Fprint(c.out, "Enter the row & column of the piece to move, or anything else to undo: ")
	from, ok, alive := c.readSquare()
	if !alive {
		return false, false
	}
	if !ok {
		return c.board.Undo(), true
	}

	fmt.Fprint(c.out, "Enter the row & column of the target square, or anything else to undo: ")
	to, ok, alive := c.readSquare()
	if !alive {
		return false, false
	}
	if !ok {
		return c.board.Undo(), true
	}

	return c.board.Move(from.Row, from.Col, to.Row, to.Col), true
}

// readSquare reads one line and parses it as two space-separated integers.
// ok is false when the line does not parse; alive is false at end of input.
func (c *Controller) readSquare() (sq model.Square, ok bool, alive bool) {
	if !c.in.Scan() {
		return model.Square{}, false, false
	}
	line := strings.TrimSpace(c.in.Text())
	var row, col int
	if _, err := fmt.Sscanf(line, "%d %d", &row, &col); err != nil {
		return model.Square{}, false, true
	}
	return model.Square{Row: row, Col: col}, true, true
}

// Run renders and plays rounds until the input ends.
func (c *Controller) Run() {
	for {
		c.Render()
		fmt.Fprintf(c.out, "%s to play\n", c.board.ColorInPlay())
		done, alive := c.AttemptRound()
		if !alive {
			return
		}
		if !done {
			fmt.Fprintln(c.out, "Nothing happened: the move or undo was rejected")
		}
	}
}
