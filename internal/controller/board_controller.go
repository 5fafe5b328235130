package controller

import (
	"errors"

	"github.com/benbeisheim/chess-move-validator/internal/model"
	"github.com/benbeisheim/chess-move-validator/internal/notation"
	"github.com/benbeisheim/chess-move-validator/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type BoardController struct {
	boardService *service.SessionService
}

func NewBoardController(boardService *service.SessionService) *BoardController {
	return &BoardController{boardService: boardService}
}

type addMovesRequest struct {
	Moves string `json:"moves"`
}

func (bc *BoardController) CreateBoard(c *fiber.Ctx) error {
	boardID, err := bc.boardService.CreateBoard()
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Board created",
		"board_id": boardID,
	})
}

func (bc *BoardController) ListBoards(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"boards": bc.boardService.ListBoards(),
	})
}

func (bc *BoardController) DeleteBoard(c *fiber.Ctx) error {
	if err := bc.boardService.DeleteBoard(c.Params("boardId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (bc *BoardController) GetBoardState(c *fiber.Ctx) error {
	state, err := bc.boardService.GetBoardState(c.Params("boardId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(state)
}

// AddMoves applies the movetext in the request body. On an illegal move the
// moves before it stay applied and the response says how many plies the
// board now has.
func (bc *BoardController) AddMoves(c *fiber.Ctx) error {
	var req addMovesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	state, err := bc.boardService.AddMoves(c.Params("boardId"), req.Moves)
	var moveErr *model.MoveError
	if errors.As(err, &moveErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": moveErr.Error(),
			"kind":  "illegal",
			"index": moveErr.Index,
			"move":  moveErr.Move.String(),
			"plies": state.Plies,
		})
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(state)
}

func (bc *BoardController) ValidSquaresAt(c *fiber.Ctx) error {
	squares, err := bc.boardService.ValidSquaresAt(c.Params("boardId"), c.Params("square"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(squares)
}

func (bc *BoardController) ValidSquaresFor(c *fiber.Ctx) error {
	squares, err := bc.boardService.ValidSquaresFor(c.Params("boardId"), c.Params("color"), c.Params("piece"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(squares)
}

func (bc *BoardController) Occupant(c *fiber.Ctx) error {
	piece, err := bc.boardService.Occupant(c.Params("boardId"), c.Params("square"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(piece)
}

func (bc *BoardController) Snapshot(c *fiber.Ctx) error {
	ply, err := c.ParamsInt("ply")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ply must be an integer",
		})
	}
	snap, err := bc.boardService.Snapshot(c.Params("boardId"), ply)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(snap)
}

func writeError(c *fiber.Ctx, err error) error {
	var parseErr *notation.ParseError
	switch {
	case errors.As(err, &parseErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  parseErr.Error(),
			"kind":   "parse",
			"offset": parseErr.Offset,
		})
	case errors.Is(err, service.ErrBoardNotFound),
		errors.Is(err, service.ErrNoOccupant),
		errors.Is(err, service.ErrPlyOutOfRange):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, service.ErrInvalidArgument):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
