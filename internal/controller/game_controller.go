package controller

import (
	"errors"

	"github.com/bry862/ChessProject/internal/model"
	"github.com/bry862/ChessProject/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	PlayerOneColor string `json:"playerOneColor"`
	PlayerTwoColor string `json:"playerTwoColor"`
}

type moveRequest struct {
	From model.Square `json:"from"`
	To   model.Square `json:"to"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	gameID, err := gc.gameService.CreateGame(req.PlayerOneColor, req.PlayerTwoColor)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	seat, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return statusForError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"seat":    seat,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return statusForError(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) Move(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := gc.gameService.HandleMove(gameID, playerID, req.From, req.To); err != nil {
		return statusForError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Move executed",
	})
}

func (gc *GameController) Undo(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.HandleUndo(gameID, playerID); err != nil {
		return statusForError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Move undone",
	})
}

func (gc *GameController) GetArchive(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	moves, err := gc.gameService.ArchivedMoves(gameID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read archive",
		})
	}
	if moves == nil {
		moves = []model.MoveRecord{}
	}
	return c.JSON(fiber.Map{
		"moves": moves,
	})
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.JoinMatchmaking(playerID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to join matchmaking",
		})
	}
	return c.JSON(fiber.Map{
		"status": "queued",
	})
}

func statusForError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, model.ErrInvalidMove),
		errors.Is(err, model.ErrNothingToUndo),
		errors.Is(err, model.ErrGameFull):
		status = fiber.StatusConflict
	case errors.Is(err, model.ErrNotYourTurn), errors.Is(err, model.ErrNotSeated):
		status = fiber.StatusForbidden
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
