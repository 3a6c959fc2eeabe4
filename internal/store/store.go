// Package store archives executed moves in sqlite so a finished session can
// be replayed later. The archive mirrors the board's history stack: one row
// is appended per executed move and the newest row is trimmed on undo.
package store

import (
	"database/sql"
	"fmt"

	"github.com/bry862/ChessProject/internal/model"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS moves (
	game_id  TEXT    NOT NULL,
	seq      INTEGER NOT NULL,
	from_row INTEGER NOT NULL,
	from_col INTEGER NOT NULL,
	to_row   INTEGER NOT NULL,
	to_col   INTEGER NOT NULL,
	piece    TEXT    NOT NULL,
	captured TEXT    NOT NULL DEFAULT '',
	PRIMARY KEY (game_id, seq)
);`

// Store is a sqlite-backed move archive.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the archive at path. Use ":memory:"
// for a throwaway archive.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// AppendMove records one executed move. seq is the move's position in the
// game's history, starting at 1.
func (s *Store) AppendMove(gameID string, seq int, rec model.MoveRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO moves (game_id, seq, from_row, from_col, to_row, to_col, piece, captured)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		gameID, seq, rec.From.Row, rec.From.Col, rec.To.Row, rec.To.Col,
		string(rec.Piece), string(rec.Captured),
	)
	if err != nil {
		return fmt.Errorf("append move: %w", err)
	}
	return nil
}

// TrimLastMove deletes the newest archived move of the game; it is the
// archive-side mirror of Board.Undo.
func (s *Store) TrimLastMove(gameID string) error {
	_, err := s.db.Exec(
		`DELETE FROM moves
		 WHERE game_id = ? AND seq = (SELECT MAX(seq) FROM moves WHERE game_id = ?)`,
		gameID, gameID,
	)
	if err != nil {
		return fmt.Errorf("trim move: %w", err)
	}
	return nil
}

// Moves returns the archived moves of a game in execution order.
func (s *Store) Moves(gameID string) ([]model.MoveRecord, error) {
	rows, err := s.db.Query(
		`SELECT from_row, from_col, to_row, to_col, piece, captured
		 FROM moves WHERE game_id = ? ORDER BY seq`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("query moves: %w", err)
	}
	defer rows.Close()

	var records []model.MoveRecord
	for rows.Next() {
		var rec model.MoveRecord
		var piece, captured string
		err := rows.Scan(&rec.From.Row, &rec.From.Col, &rec.To.Row, &rec.To.Col, &piece, &captured)
		if err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		rec.Piece = model.PieceType(piece)
		rec.Captured = model.PieceType(captured)
		records = append(records, rec)
	}
	return records, rows.Err()
}
