package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/niramoy/niramoy_backend/internal/api/http/handler"
	"github.com/niramoy/niramoy_backend/pkg/authorize"
)

func (r *Router) registerScheduleRoutes(
	api fiber.Router,
	sh *handler.ScheduleHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	doctors := api.Group("/doctors/:doctorId", authRequired)

	doctors.Get("/schedule", requirePerm(authorize.ResourceSchedule, authorize.ActionRead), sh.ListWindows)
	doctors.Post("/schedule", requirePerm(authorize.ResourceSchedule, authorize.ActionManage), sh.CreateWindow)
	doctors.Put("/availability", requirePerm(authorize.ResourceSchedule, authorize.ActionManage), sh.SetAvailability)
	doctors.Get("/available-dates", requirePerm(authorize.ResourceSchedule, authorize.ActionRead), sh.AvailableDates)
	doctors.Get("/time-slots", requirePerm(authorize.ResourceSchedule, authorize.ActionRead), sh.TimeSlots)

	api.Delete("/schedule-windows/:id", authRequired,
		requirePerm(authorize.ResourceSchedule, authorize.ActionManage), sh.DeleteWindow)
}
