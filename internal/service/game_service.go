package service

import (
	"fmt"
	"log"

	"github.com/bry862/ChessProject/internal/model"
	"github.com/bry862/ChessProject/internal/store"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// GameService is the facade the controllers talk to. It delegates session
// bookkeeping to the GameManager and mirrors executed moves into the archive
// when one is configured.
type GameService struct {
	gameManager *GameManager
	archive     *store.Store // nil when archiving is disabled
}

func NewGameService(gameManager *GameManager, archive *store.Store) *GameService {
	return &GameService{
		gameManager: gameManager,
		archive:     archive,
	}
}

// CreateGame creates a session with the requested player display colors and
// returns its ID. Unknown or duplicate colors fall back to the default pair.
func (gs *GameService) CreateGame(p1Color, p2Color string) (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID, p1Color, p2Color); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.Seat, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) JoinMatchmaking(playerID string) error {
	return gs.gameManager.JoinMatchmaking(playerID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

// HandleMove executes a move and, on success, appends it to the archive.
func (gs *GameService) HandleMove(gameID string, playerID string, from, to model.Square) error {
	record, seq, err := gs.gameManager.MakeMove(gameID, playerID, from, to)
	if err != nil {
		return err
	}
	if gs.archive != nil {
		if err := gs.archive.AppendMove(gameID, seq, record); err != nil {
			log.Printf("archive move for game %s: %v", gameID, err)
		}
	}
	return nil
}

// HandleUndo reverts the most recent move and trims it from the archive.
func (gs *GameService) HandleUndo(gameID string, playerID string) error {
	if err := gs.gameManager.UndoMove(gameID, playerID); err != nil {
		return err
	}
	if gs.archive != nil {
		if err := gs.archive.TrimLastMove(gameID); err != nil {
			log.Printf("trim archive for game %s: %v", gameID, err)
		}
	}
	return nil
}

// ArchivedMoves lists the archived moves of a game in execution order.
func (gs *GameService) ArchivedMoves(gameID string) ([]model.MoveRecord, error) {
	if gs.archive == nil {
		return nil, nil
	}
	return gs.archive.Moves(gameID)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string) {
	gs.gameManager.UnregisterConnection(gameID, playerID)
}

func (gs *GameService) RegisterMatchmakingChannel(playerID string, ch chan string) error {
	return gs.gameManager.RegisterMatchmakingChannel(playerID, ch)
}

func (gs *GameService) UnregisterMatchmakingChannel(playerID string) {
	gs.gameManager.UnregisterMatchmakingChannel(playerID)
}
