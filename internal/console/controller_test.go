package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bry862/ChessProject/internal/model"
)

func TestAttemptRoundExecutesMove(t *testing.T) {
	board := model.NewBoard("BLACK", "WHITE")
	var out bytes.Buffer
	c := NewController(board, strings.NewReader("1 0\n2 0\n"), &out)

	done, alive := c.AttemptRound()
	if !alive {
		t.Fatal("input should not be exhausted")
	}
	if !done {
		t.Fatal("round should have executed the move")
	}
	if board.GetCell(2, 0) == nil {
		t.Fatal("pawn should have advanced to (2, 0)")
	}
	if board.PlayerOneTurn() {
		t.Fatal("turn should have flipped")
	}
}

func TestAttemptRoundUndoesOnBadInput(t *testing.T) {
	t.Run("AtSourcePrompt", func(t *testing.T) {
		board := model.NewBoard("BLACK", "WHITE")
		if !board.Move(1, 0, 2, 0) {
			t.Fatal("setup move failed")
		}

		var out bytes.Buffer
		c := NewController(board, strings.NewReader("undo please\n"), &out)
		done, alive := c.AttemptRound()
		if !alive || !done {
			t.Fatalf("undo round: done=%v alive=%v", done, alive)
		}
		if board.GetCell(1, 0) == nil {
			t.Fatal("undo should have restored the pawn")
		}
	})

	t.Run("AtTargetPrompt", func(t *testing.T) {
		board := model.NewBoard("BLACK", "WHITE")
		if !board.Move(1, 0, 2, 0) {
			t.Fatal("setup move failed")
		}

		var out bytes.Buffer
		c := NewController(board, strings.NewReader("2 0\nnope\n"), &out)
		done, alive := c.AttemptRound()
		if !alive || !done {
			t.Fatalf("undo round: done=%v alive=%v", done, alive)
		}
		if board.GetCell(1, 0) == nil {
			t.Fatal("undo should have restored the pawn")
		}
	})

	t.Run("NothingToUndo", func(t *testing.T) {
		board := model.NewBoard("BLACK", "WHITE")
		var out bytes.Buffer
		c := NewController(board, strings.NewReader("garbage\n"), &out)
		done, alive := c.AttemptRound()
		if !alive {
			t.Fatal("input should not be exhausted")
		}
		if done {
			t.Fatal("undo with empty history must report failure")
		}
	})
}

func TestAttemptRoundEndOfInput(t *testing.T) {
	board := model.NewBoard("BLACK", "WHITE")
	var out bytes.Buffer
	c := NewController(board, strings.NewReader(""), &out)
	if _, alive := c.AttemptRound(); alive {
		t.Fatal("exhausted input should end the session")
	}
}

func TestRenderLayout(t *testing.T) {
	board := model.NewBoard("BLACK", "WHITE")
	var out bytes.Buffer
	NewController(board, strings.NewReader(""), &out).Render()

	text := out.String()
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != model.BoardLength+2 {
		t.Fatalf("rendered %d lines, want %d", len(lines), model.BoardLength+2)
	}
	if !strings.HasPrefix(lines[0], "7 | ") {
		t.Errorf("top line should be row 7, got %q", lines[0])
	}
	if !strings.Contains(lines[len(lines)-1], "0 1 2 3 4 5 6 7") {
		t.Errorf("last line should label the columns, got %q", lines[len(lines)-1])
	}
	// Row 5 is empty and uncolored.
	if !strings.HasPrefix(lines[2], "5 | * * * * * * * *") {
		t.Errorf("empty row rendered as %q", lines[2])
	}
}

func TestColorText(t *testing.T) {
	colored := ColorText("R", "RED")
	if !strings.HasPrefix(colored, "\033[1;31m") || !strings.HasSuffix(colored, "\033[0m") {
		t.Errorf("colored text = %q", colored)
	}
	if got := ColorText("R", "MAUVE"); got != "R" {
		t.Errorf("unknown color should pass text through, got %q", got)
	}
}
