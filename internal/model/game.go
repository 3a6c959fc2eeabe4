package model

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/bry862/ChessProject/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// Sentinel errors for the session layer. The board itself only reports
// boolean success; these give callers of the service surface something to
// branch on.
var (
	ErrGameFull      = errors.New("game is full")
	ErrNotSeated     = errors.New("player not in game")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrInvalidMove   = errors.New("invalid move")
	ErrNothingToUndo = errors.New("nothing to undo")
)

// GameConnections holds the websocket connections observing one game.
type GameConnections struct {
	mu          sync.RWMutex
	connections map[string]*websocket.Conn // playerID -> connection
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game wraps one Board in a session: two seats, a mutex, and the websocket
// observers to push state to. All board access goes through the mutex; the
// board itself is single-threaded by design.
type Game struct {
	ID          string
	mu          sync.Mutex
	board       *Board
	playerOne   ClientPlayer
	playerTwo   ClientPlayer
	connections *GameConnections
}

// GameState is the serializable view of a session.
type GameState struct {
	ID       string        `json:"id"`
	Board    BoardSnapshot `json:"boardState"`
	ToMove   string        `json:"toMove"`
	LastMove *MoveRecord   `json:"lastMove"`
	Players  struct {
		One ClientPlayer `json:"playerOne"`
		Two ClientPlayer `json:"playerTwo"`
	} `json:"players"`
}

// NewGame creates a session around a freshly set up board. The display
// colors go through the board's own validation, so an unknown or duplicate
// pair silently becomes the default one.
func NewGame(id, p1Color, p2Color string) *Game {
	return &Game{
		ID:          id,
		board:       NewBoard(p1Color, p2Color),
		connections: NewGameConnections(),
	}
}

// AddPlayer seats a player. Player one's seat is filled first.
func (g *Game) AddPlayer(playerID string) (Seat, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.playerOne.ID == "" {
		g.playerOne = ClientPlayer{ID: playerID, Seat: SeatPlayerOne, Color: g.board.PlayerOneColor()}
		return SeatPlayerOne, nil
	}
	if g.playerTwo.ID == "" {
		g.playerTwo = ClientPlayer{ID: playerID, Seat: SeatPlayerTwo, Color: g.board.PlayerTwoColor()}
		return SeatPlayerTwo, nil
	}
	return "", ErrGameFull
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotState()
}

func (g *Game) snapshotState() GameState {
	state := GameState{
		ID:     g.ID,
		Board:  g.board.Snapshot(),
		ToMove: g.board.ColorInPlay(),
	}
	if last := g.board.LastMove(); last != nil {
		rec := newMoveRecord(last)
		state.LastMove = &rec
	}
	state.Players.One = g.playerOne
	state.Players.Two = g.playerTwo
	return state
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seatOf(playerID) != ""
}

func (g *Game) seatOf(playerID string) Seat {
	if playerID != "" && g.playerOne.ID == playerID {
		return SeatPlayerOne
	}
	if playerID != "" && g.playerTwo.ID == playerID {
		return SeatPlayerTwo
	}
	return ""
}

// CanSpectate reports whether the game still has an open seat; anyone may
// observe an underfilled game.
func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.canSpectate()
}

func (g *Game) canSpectate() bool {
	return g.playerOne.ID == "" || g.playerTwo.ID == ""
}

// MakeMove executes a move on behalf of a seated player and returns the
// record of the executed move. The board enforces the movement rules; the
// session only checks that the requester occupies the seat whose turn it is.
func (g *Game) MakeMove(playerID string, from, to Square) (MoveRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	seat := g.seatOf(playerID)
	if seat == "" {
		return MoveRecord{}, ErrNotSeated
	}
	if (seat == SeatPlayerOne) != g.board.PlayerOneTurn() {
		return MoveRecord{}, ErrNotYourTurn
	}
	if !g.board.Move(from.Row, from.Col, to.Row, to.Col) {
		return MoveRecord{}, ErrInvalidMove
	}

	record := newMoveRecord(g.board.LastMove())
	go g.broadcastState(g.snapshotState())
	return record, nil
}

// UndoMove reverts the most recent action. Either seated player may request
// it; a successful undo hands the turn back, exactly like a successful move.
func (g *Game) UndoMove(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.seatOf(playerID) == "" {
		return ErrNotSeated
	}
	if !g.board.Undo() {
		return ErrNothingToUndo
	}

	go g.broadcastState(g.snapshotState())
	return nil
}

// RegisterConnection attaches a websocket observer and pushes the current
// state to it. Seated players and spectators of underfilled games are
// allowed; a duplicate connection for the same player is rejected in favor
// of the existing one.
func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	authorized := g.seatOf(playerID) != "" || g.canSpectate()
	state := g.snapshotState()
	g.mu.Unlock()

	if !authorized {
		return errors.New("not authorized to join this game")
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	go g.broadcastState(state)
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	delete(g.connections.connections, playerID)
}

// broadcastState pushes a state snapshot to every observer. It takes the
// snapshot by value so it never touches the board after the caller's lock is
// released.
func (g *Game) broadcastState(state GameState) {
	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("marshal game state: %v", err)
		return
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for playerID, conn := range g.connections.connections {
		err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		})
		if err != nil {
			log.Printf("send state to %s: %v", playerID, err)
			delete(g.connections.connections, playerID)
		}
	}
}
