package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/niramoy/niramoy_backend/internal/api/http/handler"
	"github.com/niramoy/niramoy_backend/pkg/authorize"
)

func (r *Router) registerStaffRoutes(
	api fiber.Router,
	sh *handler.StaffHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/staff", authRequired)

	group.Get("/", requirePerm(authorize.ResourceStaff, authorize.ActionList), sh.List)
	group.Post("/", requirePerm(authorize.ResourceStaff, authorize.ActionCreate), sh.Create)
	group.Get("/doctors", requirePerm(authorize.ResourceStaff, authorize.ActionList), sh.ListDoctors)

	s := group.Group("/:id")
	s.Get("/", requirePerm(authorize.ResourceStaff, authorize.ActionRead), sh.GetByID)
	s.Put("/", requirePerm(authorize.ResourceStaff, authorize.ActionUpdate), sh.Update)
	s.Patch("/role", requirePerm(authorize.ResourceStaff, authorize.ActionManage), sh.ChangeRole)
	s.Patch("/status", requirePerm(authorize.ResourceStaff, authorize.ActionManage), sh.SetStatus)
	s.Post("/reset-password", requirePerm(authorize.ResourceStaff, authorize.ActionManage), sh.ResetPassword)
	s.Delete("/", requirePerm(authorize.ResourceStaff, authorize.ActionDelete), sh.Delete)
}
