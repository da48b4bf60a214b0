// FILE: internal/transport/http/game_handler.go
package http

import (
	"errors"

	"gridchess/internal/rules"
	"gridchess/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateGame starts a new game, optionally resuming from a state string
func (h *HTTPHandler) CreateGame(c *fiber.Ctx) error {
	req := validatedBody[*CreateGameRequest](c)
	if req == nil {
		req = &CreateGameRequest{}
	}

	gameID, err := h.svc.CreateGame(req.State)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "failed to create game",
			Code:    ErrCodeInvalidRequest,
			Details: err.Error(),
		})
	}

	view, err := h.svc.GetView(gameID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to load created game",
			Code:  ErrCodeInternalError,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// GetGame retrieves current game state
func (h *HTTPHandler) GetGame(c *fiber.Ctx) error {
	view, err := h.svc.GetView(c.Params("gameId"))
	if err != nil {
		return gameNotFound(c)
	}
	return c.JSON(view)
}

// DeleteGame removes a game
func (h *HTTPHandler) DeleteGame(c *fiber.Ctx) error {
	if err := h.svc.DeleteGame(c.Params("gameId")); err != nil {
		return gameNotFound(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MakeMove submits a move in coordinate text
func (h *HTTPHandler) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	req := validatedBody[*MoveRequest](c)
	if req == nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request body",
			Code:  ErrCodeInvalidRequest,
		})
	}

	result, err := h.svc.MakeMove(gameID, req.Move)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return gameNotFound(c)
		}
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "move rejected",
			Code:    ruleErrorCode(err),
			Details: err.Error(),
		})
	}
	return c.JSON(result)
}

// LegalMoves lists every legal move for the side on turn
func (h *HTTPHandler) LegalMoves(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	moves, err := h.svc.LegalMoves(gameID)
	if err != nil {
		return gameNotFound(c)
	}
	return c.JSON(MovesResponse{GameID: gameID, Moves: moves})
}

// UndoMove rolls back one or more moves
func (h *HTTPHandler) UndoMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	req := validatedBody[*UndoRequest](c)
	count := 1
	if req != nil && req.Count > 0 {
		count = req.Count
	}

	if err := h.svc.UndoMoves(gameID, count); err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return gameNotFound(c)
		}
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "undo rejected",
			Code:    ErrCodeInvalidRequest,
			Details: err.Error(),
		})
	}

	view, err := h.svc.GetView(gameID)
	if err != nil {
		return gameNotFound(c)
	}
	return c.JSON(view)
}

// GetBoard returns an ASCII rendering of the current position
func (h *HTTPHandler) GetBoard(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	art, err := h.svc.BoardASCII(gameID)
	if err != nil {
		return gameNotFound(c)
	}
	view, err := h.svc.GetView(gameID)
	if err != nil {
		return gameNotFound(c)
	}
	return c.JSON(BoardResponse{State: view.State, Board: art})
}

func gameNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
		Error: "game not found",
		Code:  ErrCodeGameNotFound,
	})
}

// ruleErrorCode maps rule violations to stable API error codes
func ruleErrorCode(err error) string {
	switch {
	case errors.Is(err, rules.ErrNoPiece):
		return ErrCodeNoPiece
	case errors.Is(err, rules.ErrCausesCheck):
		return ErrCodeCausesCheck
	case errors.Is(err, rules.ErrInvalidPromotion):
		return ErrCodeInvalidPromotion
	case errors.Is(err, rules.ErrWrongTurn):
		return ErrCodeWrongTurn
	case errors.Is(err, rules.ErrInvalidMove):
		return ErrCodeInvalidMove
	default:
		return ErrCodeInvalidRequest
	}
}
