package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/niramoy/niramoy_backend/internal/service/display"
)

type DisplayHandler struct {
	svc display.Service
}

func NewDisplayHandler(svc display.Service) *DisplayHandler {
	return &DisplayHandler{svc: svc}
}

// GET /display/board
func (h *DisplayHandler) Board(c fiber.Ctx) error {
	board, err := h.svc.Board(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, board)
}
