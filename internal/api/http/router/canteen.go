package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/niramoy/niramoy_backend/internal/api/http/handler"
	"github.com/niramoy/niramoy_backend/pkg/authorize"
)

func (r *Router) registerCanteenRoutes(
	api fiber.Router,
	ch *handler.CanteenHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/canteen", authRequired)

	items := group.Group("/items")
	items.Get("/", requirePerm(authorize.ResourceCanteenItem, authorize.ActionList), ch.ListItems)
	items.Post("/", requirePerm(authorize.ResourceCanteenItem, authorize.ActionCreate), ch.CreateItem)
	items.Patch("/:id/availability", requirePerm(authorize.ResourceCanteenItem, authorize.ActionUpdate), ch.SetAvailability)

	sales := group.Group("/sales")
	sales.Get("/", requirePerm(authorize.ResourceCanteenSale, authorize.ActionList), ch.ListSales)
	sales.Post("/", requirePerm(authorize.ResourceCanteenSale, authorize.ActionCreate), ch.Sell)
}
