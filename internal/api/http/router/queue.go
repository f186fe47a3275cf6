package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/niramoy/niramoy_backend/internal/api/http/handler"
	"github.com/niramoy/niramoy_backend/pkg/authorize"
)

func (r *Router) registerQueueRoutes(
	api fiber.Router,
	qh *handler.QueueHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired)

	appts.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionList), qh.List)
	appts.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionCreate), qh.Book)

	a := appts.Group("/:id")
	a.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), qh.GetByID)
	a.Patch("/start", requirePerm(authorize.ResourceQueue, authorize.ActionExecute), qh.Start)
	a.Patch("/complete", requirePerm(authorize.ResourceQueue, authorize.ActionExecute), qh.Complete)
	a.Patch("/cancel", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), qh.Cancel)
	a.Patch("/no-show", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), qh.MarkNoShow)
	a.Post("/payments", requirePerm(authorize.ResourceIncome, authorize.ActionCreate), qh.RecordPayment)

	q := api.Group("/queue", authRequired)
	q.Get("/:doctorId", requirePerm(authorize.ResourceQueue, authorize.ActionRead), qh.DayQueue)
	q.Post("/:doctorId/call-next", requirePerm(authorize.ResourceQueue, authorize.ActionExecute), qh.CallNext)
}
