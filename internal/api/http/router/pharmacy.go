package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/niramoy/niramoy_backend/internal/api/http/handler"
	"github.com/niramoy/niramoy_backend/pkg/authorize"
)

func (r *Router) registerPharmacyRoutes(
	api fiber.Router,
	ph *handler.PharmacyHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/pharmacy", authRequired)

	drugs := group.Group("/drugs")
	drugs.Get("/", requirePerm(authorize.ResourceDrug, authorize.ActionList), ph.ListDrugs)
	drugs.Post("/", requirePerm(authorize.ResourceDrug, authorize.ActionCreate), ph.CreateDrug)
	drugs.Get("/low-stock", requirePerm(authorize.ResourceDrug, authorize.ActionList), ph.LowStock)
	drugs.Get("/expiring", requirePerm(authorize.ResourceDrug, authorize.ActionList), ph.ExpiringSoon)
	drugs.Get("/:id", requirePerm(authorize.ResourceDrug, authorize.ActionRead), ph.GetDrug)
	drugs.Post("/:id/adjust-stock", requirePerm(authorize.ResourceDrug, authorize.ActionUpdate), ph.AdjustStock)

	sales := group.Group("/sales")
	sales.Get("/", requirePerm(authorize.ResourcePharmacySale, authorize.ActionList), ph.ListSales)
	sales.Post("/", requirePerm(authorize.ResourcePharmacySale, authorize.ActionCreate), ph.Sell)
	sales.Get("/:id", requirePerm(authorize.ResourcePharmacySale, authorize.ActionRead), ph.GetSale)
	sales.Post("/:id/payments", requirePerm(authorize.ResourceIncome, authorize.ActionCreate), ph.RecordPayment)
}
