package store

import (
	"testing"

	"github.com/bry862/ChessProject/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndListMoves(t *testing.T) {
	s := openTestStore(t)

	first := model.MoveRecord{
		From:  model.Square{Row: 1, Col: 0},
		To:    model.Square{Row: 2, Col: 0},
		Piece: model.Pawn,
	}
	second := model.MoveRecord{
		From:     model.Square{Row: 6, Col: 1},
		To:       model.Square{Row: 2, Col: 0},
		Piece:    model.Queen,
		Captured: model.Pawn,
	}
	if err := s.AppendMove("g1", 1, first); err != nil {
		t.Fatalf("append first: %v", err)
	}
	if err := s.AppendMove("g1", 2, second); err != nil {
		t.Fatalf("append second: %v", err)
	}
	if err := s.AppendMove("g2", 1, first); err != nil {
		t.Fatalf("append to other game: %v", err)
	}

	moves, err := s.Moves("g1")
	if err != nil {
		t.Fatalf("list moves: %v", err)
	}
	if len(moves) != 2 {
		t.Fatalf("got %d moves, want 2", len(moves))
	}
	if moves[0] != first || moves[1] != second {
		t.Fatalf("moves = %+v, want [%+v %+v]", moves, first, second)
	}
}

func TestTrimLastMove(t *testing.T) {
	s := openTestStore(t)

	rec := model.MoveRecord{From: model.Square{Row: 1, Col: 0}, To: model.Square{Row: 2, Col: 0}, Piece: model.Pawn}
	for seq := 1; seq <= 3; seq++ {
		if err := s.AppendMove("g1", seq, rec); err != nil {
			t.Fatalf("append %d: %v", seq, err)
		}
	}

	if err := s.TrimLastMove("g1"); err != nil {
		t.Fatalf("trim: %v", err)
	}
	moves, err := s.Moves("g1")
	if err != nil {
		t.Fatalf("list moves: %v", err)
	}
	if len(moves) != 2 {
		t.Fatalf("got %d moves after trim, want 2", len(moves))
	}

	// Trimming an empty game is not an error.
	if err := s.TrimLastMove("empty"); err != nil {
		t.Fatalf("trim empty game: %v", err)
	}
}

func TestMovesUnknownGame(t *testing.T) {
	s := openTestStore(t)
	moves, err := s.Moves("missing")
	if err != nil {
		t.Fatalf("list moves: %v", err)
	}
	if len(moves) != 0 {
		t.Fatalf("got %d moves, want none", len(moves))
	}
}
