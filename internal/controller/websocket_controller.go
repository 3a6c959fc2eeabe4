package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/bry862/ChessProject/internal/model"
	"github.com/bry862/ChessProject/internal/service"
	"github.com/bry862/ChessProject/internal/ws"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

type wsMovePayload struct {
	From model.Square `json:"from"`
	To   model.Square `json:"to"`
}

// HandleConnection runs the message loop for one websocket connection. The
// connection observes a single game; move and undo requests are dispatched
// to the service and state pushes come back through the game's broadcast.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Printf("register connection: %v", err)
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse message: %v", err)
			continue
		}

		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			wsc.sendError(c, err.Error())
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID)
}

func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move wsMovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		return wsc.gameService.HandleMove(gameID, playerID, move.From, move.To)

	case ws.MessageTypeUndo:
		return wsc.gameService.HandleUndo(gameID, playerID)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(c *websocket.Conn, errorMsg string) {
	payload, err := json.Marshal(fiberErrorBody{Error: errorMsg})
	if err != nil {
		return
	}
	c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeError,
		Payload: json.RawMessage(payload),
	})
}

type fiberErrorBody struct {
	Error string `json:"error"`
}
