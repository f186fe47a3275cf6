package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/niramoy/niramoy_backend/internal/api/http/handler"
	"github.com/niramoy/niramoy_backend/pkg/authorize"
)

func (r *Router) registerPrescriptionRoutes(
	api fiber.Router,
	rxh *handler.PrescriptionHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/prescriptions", authRequired)

	group.Post("/", requirePerm(authorize.ResourcePrescription, authorize.ActionCreate), rxh.Create)
	group.Get("/mine", requirePerm(authorize.ResourcePrescription, authorize.ActionList), rxh.ListMine)
	group.Get("/by-number/:number", requirePerm(authorize.ResourcePrescription, authorize.ActionRead), rxh.GetByNumber)
	group.Get("/:id", requirePerm(authorize.ResourcePrescription, authorize.ActionRead), rxh.GetByID)
	group.Patch("/:id/print", requirePerm(authorize.ResourcePrescription, authorize.ActionUpdate), rxh.MarkPrinted)
}
