package service

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/bry862/ChessProject/internal/model"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

var ErrGameNotFound = errors.New("game not found")

// GameManager owns every live session, keyed by game ID, plus the
// matchmaking queue and the channels waiting players listen on.
type GameManager struct {
	mu               sync.RWMutex
	games            map[string]*model.Game
	queue            *model.Queue
	matchingChannels map[string]chan string
}

func NewGameManager() *GameManager {
	gm := &GameManager{
		games:            make(map[string]*model.Game),
		queue:            model.NewQueue(),
		matchingChannels: make(map[string]chan string),
	}

	go gm.processMatchmaking()

	return gm
}

func (gm *GameManager) CreateGame(gameID, p1Color, p2Color string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return errors.New("game already exists")
	}
	gm.games[gameID] = model.NewGame(gameID, p1Color, p2Color)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return game, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.Seat, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.AddPlayer(playerID)
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	return gm.queue.AddPlayer(model.Player{ID: playerID})
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

// MakeMove executes a move and returns its record together with its
// one-based position in the game's history, for archiving.
func (gm *GameManager) MakeMove(gameID string, playerID string, from, to model.Square) (model.MoveRecord, int, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.MoveRecord{}, 0, err
	}
	record, err := game.MakeMove(playerID, from, to)
	if err != nil {
		return model.MoveRecord{}, 0, err
	}
	return record, len(game.GetState().Board.Moves), nil
}

func (gm *GameManager) UndoMove(gameID string, playerID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.UndoMove(playerID)
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID)
}

// RegisterMatchmakingChannel registers the channel a queued player listens
// on for its match-found event. A stale channel for the same player is
// closed and replaced.
func (gm *GameManager) RegisterMatchmakingChannel(playerID string, ch chan string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if existing, exists := gm.matchingChannels[playerID]; exists {
		delete(gm.matchingChannels, playerID)
		close(existing)
	}
	gm.matchingChannels[playerID] = ch
	return nil
}

func (gm *GameManager) UnregisterMatchmakingChannel(playerID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	// The channel itself belongs to whoever registered it; just drop the
	// reference so no further events are sent.
	delete(gm.matchingChannels, playerID)
}

// processMatchmaking pairs queued players into fresh games once a second.
func (gm *GameManager) processMatchmaking() {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		gm.mu.Lock()
		for gm.queue.Size() >= 2 {
			player1, player2 := gm.queue.GetNextPair()

			gameID := uuid.New().String()
			game := model.NewGame(gameID, "", "")

			seat1, err := game.AddPlayer(player1.ID)
			if err != nil {
				log.Printf("seat player %s: %v", player1.ID, err)
				continue
			}
			seat2, err := game.AddPlayer(player2.ID)
			if err != nil {
				log.Printf("seat player %s: %v", player2.ID, err)
				continue
			}
			gm.games[gameID] = game

			gm.notifyMatch(player1.ID, model.MatchFoundEvent{GameID: gameID, Seat: seat1})
			gm.notifyMatch(player2.ID, model.MatchFoundEvent{GameID: gameID, Seat: seat2})
		}
		gm.mu.Unlock()
	}
}

// notifyMatch sends the event to the player's matchmaking channel, if one is
// registered and able to receive, then retires the channel. Callers hold
// gm.mu.
func (gm *GameManager) notifyMatch(playerID string, event model.MatchFoundEvent) {
	ch, ok := gm.matchingChannels[playerID]
	if !ok {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("marshal match event: %v", err)
		return
	}
	select {
	case ch <- string(payload):
		delete(gm.matchingChannels, playerID)
		close(ch)
	default:
		log.Printf("matchmaking channel for %s not ready", playerID)
	}
}
