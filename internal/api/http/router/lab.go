package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/niramoy/niramoy_backend/internal/api/http/handler"
	"github.com/niramoy/niramoy_backend/pkg/authorize"
)

func (r *Router) registerLabRoutes(
	api fiber.Router,
	lh *handler.LabHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/lab", authRequired)

	tests := group.Group("/tests")
	tests.Get("/", requirePerm(authorize.ResourceLabTest, authorize.ActionList), lh.ListTests)
	tests.Post("/", requirePerm(authorize.ResourceLabTest, authorize.ActionCreate), lh.CreateTest)

	orders := group.Group("/orders")
	orders.Get("/", requirePerm(authorize.ResourceLabOrder, authorize.ActionList), lh.ListOrders)
	orders.Post("/", requirePerm(authorize.ResourceLabOrder, authorize.ActionCreate), lh.CreateOrder)

	o := orders.Group("/:id")
	o.Get("/", requirePerm(authorize.ResourceLabOrder, authorize.ActionRead), lh.GetOrder)
	o.Patch("/collect-sample", requirePerm(authorize.ResourceLabOrder, authorize.ActionExecute), lh.CollectSample)
	o.Patch("/cancel", requirePerm(authorize.ResourceLabOrder, authorize.ActionUpdate), lh.CancelOrder)
	o.Post("/payments", requirePerm(authorize.ResourceIncome, authorize.ActionCreate), lh.RecordPayment)

	results := group.Group("/results/:id")
	results.Put("/", requirePerm(authorize.ResourceLabResult, authorize.ActionUpdate), lh.EnterResult)
	results.Patch("/verify", requirePerm(authorize.ResourceLabResult, authorize.ActionExecute), lh.VerifyResult)
}
