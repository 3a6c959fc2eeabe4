package main

import (
	"flag"
	"log"
	"os"

	"github.com/bry862/ChessProject/internal/controller"
	"github.com/bry862/ChessProject/internal/middleware"
	"github.com/bry862/ChessProject/internal/service"
	"github.com/bry862/ChessProject/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
)

func main() {
	addr := flag.String("addr", getenv("CHESS_ADDR", ":3000"), "listen address")
	origins := flag.String("origins", getenv("CHESS_ORIGINS", "http://localhost:5173"), "allowed CORS origins")
	archivePath := flag.String("archive", getenv("CHESS_ARCHIVE", ""), "sqlite move archive path (empty disables archiving)")
	flag.Parse()

	var archive *store.Store
	if *archivePath != "" {
		var err error
		archive, err = store.Open(*archivePath)
		if err != nil {
			log.Fatalf("open move archive: %v", err)
		}
		defer archive.Close()
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     *origins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager, archive)

	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	app.Use("/ws/*", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(func(c *websocket.Conn) {
		wsController.HandleConnection(c)
	}, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/matchmaking/join", gameController.JoinMatchmaking)
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/join/:gameId", gameController.JoinGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Get("/:gameId/archive", gameController.GetArchive)
	gameRoutes.Post("/:gameId/move", gameController.Move)
	gameRoutes.Post("/:gameId/undo", gameController.Undo)

	log.Fatal(app.Listen(*addr))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
