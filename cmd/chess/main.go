// Command chess plays a local two-player game in the terminal. Each round
// prompts for a source and destination square; any other input undoes the
// previous action and hands the turn back.
package main

import (
	"flag"
	"os"

	"github.com/bry862/ChessProject/internal/console"
	"github.com/bry862/ChessProject/internal/model"
)

func main() {
	p1Color := flag.String("p1-color", os.Getenv("CHESS_P1_COLOR"), "player one display color")
	p2Color := flag.String("p2-color", os.Getenv("CHESS_P2_COLOR"), "player two display color")
	flag.Parse()

	board := model.NewBoard(*p1Color, *p2Color)
	console.NewController(board, os.Stdin, os.Stdout).Run()
}
