package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/niramoy/niramoy_backend/internal/api/http/handler"
	"github.com/niramoy/niramoy_backend/pkg/authorize"
)

func (r *Router) registerDisplayRoutes(
	api fiber.Router,
	dh *handler.DisplayHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/display", authRequired)
	group.Get("/board", requirePerm(authorize.ResourceDisplay, authorize.ActionRead), dh.Board)
}
