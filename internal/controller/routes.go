package controller

import (
	"github.com/benbeisheim/chess-move-validator/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the REST API under /api.
func RegisterRoutes(app fiber.Router, bc *BoardController) {
	api := app.Group("/api", middleware.EnsureClientID())

	boards := api.Group("/board")
	boards.Post("/", bc.CreateBoard)
	boards.Get("/", bc.ListBoards)
	boards.Get("/:boardId", bc.GetBoardState)
	boards.Delete("/:boardId", bc.DeleteBoard)
	boards.Post("/:boardId/moves", bc.AddMoves)
	boards.Get("/:boardId/squares/:square", bc.ValidSquaresAt)
	boards.Get("/:boardId/pieces/:color/:piece", bc.ValidSquaresFor)
	boards.Get("/:boardId/occupant/:square", bc.Occupant)
	boards.Get("/:boardId/positions/:ply", bc.Snapshot)
}
